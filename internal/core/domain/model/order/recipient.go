package order

import (
	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/pkg/errs"
)

// Recipient is the contact the package is delivered to.
type Recipient struct {
	name  string
	phone kernel.Phone
}

// NewRecipient validates and creates a recipient contact.
func NewRecipient(name string, phone kernel.Phone) (Recipient, error) {
	if name == "" {
		return Recipient{}, errs.NewValueIsRequiredError("recipientName")
	}
	if err := phone.Validate(); err != nil {
		return Recipient{}, err
	}
	return Recipient{name: name, phone: phone}, nil
}

// Name returns the recipient's display name.
func (r Recipient) Name() string {
	return r.name
}

// Phone returns the recipient's phone number.
func (r Recipient) Phone() kernel.Phone {
	return r.phone
}

// Validate checks if the Recipient is properly constructed.
func (r Recipient) Validate() error {
	if r.name == "" {
		return errs.NewValueIsRequiredError("recipientName")
	}
	return r.phone.Validate()
}

// Route is the pickup and delivery address pair of an order.
type Route struct {
	pickup   kernel.Address
	delivery kernel.Address
}

// NewRoute validates and creates a route.
func NewRoute(pickup, delivery kernel.Address) (Route, error) {
	if err := pickup.Validate(); err != nil {
		return Route{}, errs.NewValueIsRequiredErrorWithCause("pickupAddress", err)
	}
	if err := delivery.Validate(); err != nil {
		return Route{}, errs.NewValueIsRequiredErrorWithCause("deliveryAddress", err)
	}
	return Route{pickup: pickup, delivery: delivery}, nil
}

// Pickup returns the pickup address.
func (r Route) Pickup() kernel.Address {
	return r.pickup
}

// Delivery returns the delivery address.
func (r Route) Delivery() kernel.Address {
	return r.delivery
}

// Validate checks if the Route is properly constructed.
func (r Route) Validate() error {
	if err := r.pickup.Validate(); err != nil {
		return err
	}
	return r.delivery.Validate()
}
