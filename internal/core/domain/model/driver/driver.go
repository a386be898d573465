package driver

import (
	"errors"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/order"
	"parcel/internal/pkg/errs"
	"parcel/internal/pkg/guard"
)

const (
	minRating = 1
	maxRating = 5
)

// Domain errors for driver operations.
var (
	// ErrNameIsRequired is returned when attempting to create a driver without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrDriverIsNotConstructed is returned when using an improperly initialized Driver.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")
)

// Driver represents a delivery driver in the system.
// It is an aggregate root that manages driver identity, availability for
// dispatch, and the running rating built from customer feedback.
//
// Business rules:
//   - Driver must have a valid UUID, non-empty name, and valid phone number
//   - A driver is dispatchable only while available; taking an order makes
//     the driver busy until the delivery reaches a terminal status
//   - The rating is the running average of recorded feedback ratings,
//     each within [1, 5]; a driver with no feedback has rating 0
type Driver struct {
	// id uniquely identifies the driver
	id kernel.UUID
	// name is the human-readable name of the driver
	name string
	// phone is the driver's contact number
	phone kernel.Phone
	// rating is the running average of recorded feedback ratings
	rating float64
	// ratingCount is how many ratings the average is built from
	ratingCount int
	// available reports whether the driver can take a new order
	available bool
	// guard ensures the driver was properly constructed
	guard guard.ConstructorGuard
}

// NewDriver creates a new Driver with the specified parameters.
// This is the only way to create a valid fresh Driver instance.
// New drivers start available with no recorded ratings.
func NewDriver(id kernel.UUID, name string, phone kernel.Phone) (*Driver, error) {
	driver := &Driver{
		available: true,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		driver.setID(id),
		driver.setName(name),
		driver.setPhone(phone),
	); err != nil {
		return nil, err
	}

	return driver, nil
}

// RestoreDriver reconstructs a Driver aggregate from persistent storage,
// including its availability and accumulated rating state.
func RestoreDriver(
	id kernel.UUID,
	name string,
	phone kernel.Phone,
	rating float64,
	ratingCount int,
	available bool,
) (*Driver, error) {
	driver := &Driver{
		available: available,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		driver.setID(id),
		driver.setName(name),
		driver.setPhone(phone),
		driver.setRating(rating, ratingCount),
	); err != nil {
		return nil, err
	}

	return driver, nil
}

// IsEqual compares two drivers for equality based on their unique identifiers.
func (d *Driver) IsEqual(other *Driver) bool {
	if other == nil {
		return false
	}
	return d.id.IsEqual(other.id)
}

// Validate checks if the Driver was properly constructed using a constructor.
// The zero value of Driver is invalid and will fail this validation.
func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

// ID returns the unique identifier of the driver.
func (d *Driver) ID() kernel.UUID {
	return d.id
}

// Name returns the human-readable name of the driver.
func (d *Driver) Name() string {
	return d.name
}

// Phone returns the driver's contact number.
func (d *Driver) Phone() kernel.Phone {
	return d.phone
}

// Rating returns the running average of recorded feedback ratings,
// 0 when no feedback has been recorded yet.
func (d *Driver) Rating() float64 {
	return d.rating
}

// RatingCount returns how many ratings the average is built from.
func (d *Driver) RatingCount() int {
	return d.ratingCount
}

// IsAvailable reports whether the driver can take a new order.
func (d *Driver) IsAvailable() bool {
	return d.available
}

// MarkBusy marks the driver as carrying an order.
// Returns an error if the driver is already busy.
func (d *Driver) MarkBusy() error {
	if !d.available {
		return errs.NewValueIsInvalidErrorWithCause("driver",
			errors.New("driver is already busy"))
	}

	d.available = false
	return nil
}

// MarkAvailable returns the driver to the dispatch pool.
// Marking an already available driver is a no-op.
func (d *Driver) MarkAvailable() {
	d.available = true
}

// RecordRating folds a new feedback rating into the running average.
// Ratings outside [1, 5] are rejected.
func (d *Driver) RecordRating(rating int) error {
	if rating < minRating || rating > maxRating {
		return errs.NewValueIsOutOfRangeError("rating", rating, minRating, maxRating)
	}

	total := d.rating*float64(d.ratingCount) + float64(rating)
	d.ratingCount++
	d.rating = total / float64(d.ratingCount)
	return nil
}

// Snapshot captures the driver's display details for stamping onto an order
// at assignment time.
func (d *Driver) Snapshot() (order.DriverSnapshot, error) {
	return order.NewDriverSnapshot(d.name, d.phone, d.rating)
}

// setID sets the driver's unique identifier with validation.
func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	d.id = id
	return nil
}

// setName sets the driver's name with validation.
func (d *Driver) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	d.name = name
	return nil
}

// setPhone sets the driver's contact number with validation.
func (d *Driver) setPhone(phone kernel.Phone) error {
	if err := phone.Validate(); err != nil {
		return err
	}

	d.phone = phone
	return nil
}

// setRating restores the accumulated rating state with validation.
func (d *Driver) setRating(rating float64, ratingCount int) error {
	if ratingCount < 0 {
		return errs.NewValueIsInvalidErrorWithCause("ratingCount",
			errors.New("rating count is negative"))
	}
	if rating < 0 || rating > maxRating {
		return errs.NewValueIsOutOfRangeError("rating", int(rating), 0, maxRating)
	}
	if ratingCount == 0 && rating != 0 {
		return errs.NewValueIsInvalidErrorWithCause("rating",
			errors.New("rating without any recorded feedback"))
	}

	d.rating = rating
	d.ratingCount = ratingCount
	return nil
}
