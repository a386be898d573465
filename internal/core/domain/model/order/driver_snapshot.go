package order

import (
	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/pkg/errs"
)

// DriverSnapshot is the display copy of driver details stamped on the order
// at assignment time. It is intentionally denormalized: later edits to the
// driver profile do not rewrite history on already assigned orders.
type DriverSnapshot struct {
	name   string
	phone  kernel.Phone
	rating float64
}

// NewDriverSnapshot validates and creates a driver snapshot.
func NewDriverSnapshot(name string, phone kernel.Phone, rating float64) (DriverSnapshot, error) {
	if name == "" {
		return DriverSnapshot{}, errs.NewValueIsRequiredError("driverName")
	}
	if err := phone.Validate(); err != nil {
		return DriverSnapshot{}, err
	}
	if rating < 0 || rating > 5 {
		return DriverSnapshot{}, errs.NewValueIsOutOfRangeError("driverRating", rating, 0, 5)
	}
	return DriverSnapshot{name: name, phone: phone, rating: rating}, nil
}

// Name returns the driver's display name.
func (s DriverSnapshot) Name() string {
	return s.name
}

// Phone returns the driver's phone number.
func (s DriverSnapshot) Phone() kernel.Phone {
	return s.phone
}

// Rating returns the driver's average rating at assignment time.
func (s DriverSnapshot) Rating() float64 {
	return s.rating
}

// Validate checks if the DriverSnapshot is properly constructed.
func (s DriverSnapshot) Validate() error {
	if s.name == "" {
		return errs.NewValueIsRequiredError("driverName")
	}
	return s.phone.Validate()
}
