package commands

import (
	"errors"
	"fmt"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/order"
	"parcel/internal/pkg/errs"
	"parcel/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to place a new delivery order.
// Encapsulates the route, package, recipient and payment details along with
// the route distance the price is quoted from.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID          kernel.UUID
	route               order.Route
	pkg                 order.Package
	recipient           order.Recipient
	distanceKm          float64
	specialInstructions string
	paymentMethod       order.PaymentMethod
	paymentTerm         order.PaymentTerm

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new delivery order.
// Validates the customer ID, route, package, recipient, payment details and
// that the distance is positive. Returns an aggregated error if any
// validation fails.
func NewCreateOrderCommand(
	customerID kernel.UUID,
	route order.Route,
	pkg order.Package,
	recipient order.Recipient,
	distanceKm float64,
	specialInstructions string,
	paymentMethod order.PaymentMethod,
	paymentTerm order.PaymentTerm,
) (CreateOrderCommand, error) {
	command := CreateOrderCommand{
		specialInstructions: specialInstructions,
		guard:               guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCustomerID(customerID),
		command.setRoute(route),
		command.setPackage(pkg),
		command.setRecipient(recipient),
		command.setDistanceKm(distanceKm),
		command.setPaymentMethod(paymentMethod),
		command.setPaymentTerm(paymentTerm),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerID returns the identifier of the customer placing the order.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Route returns the pickup/delivery address pair.
func (c CreateOrderCommand) Route() order.Route {
	return c.route
}

// Package returns the package descriptor.
func (c CreateOrderCommand) Package() order.Package {
	return c.pkg
}

// Recipient returns the recipient contact.
func (c CreateOrderCommand) Recipient() order.Recipient {
	return c.recipient
}

// DistanceKm returns the route distance in kilometers.
func (c CreateOrderCommand) DistanceKm() float64 {
	return c.distanceKm
}

// SpecialInstructions returns the driver instructions, possibly empty.
func (c CreateOrderCommand) SpecialInstructions() string {
	return c.specialInstructions
}

// PaymentMethod returns how the order is paid.
func (c CreateOrderCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}

// PaymentTerm returns when the order is paid.
func (c CreateOrderCommand) PaymentTerm() order.PaymentTerm {
	return c.paymentTerm
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setRoute(route order.Route) error {
	if err := route.Validate(); err != nil {
		return err
	}

	c.route = route
	return nil
}

func (c *CreateOrderCommand) setPackage(pkg order.Package) error {
	if err := pkg.Validate(); err != nil {
		return err
	}

	c.pkg = pkg
	return nil
}

func (c *CreateOrderCommand) setRecipient(recipient order.Recipient) error {
	if err := recipient.Validate(); err != nil {
		return err
	}

	c.recipient = recipient
	return nil
}

func (c *CreateOrderCommand) setDistanceKm(distanceKm float64) error {
	if distanceKm <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("distanceKm",
			fmt.Errorf("%v is not greater than 0", distanceKm))
	}

	c.distanceKm = distanceKm
	return nil
}

func (c *CreateOrderCommand) setPaymentMethod(paymentMethod order.PaymentMethod) error {
	if err := paymentMethod.Validate(); err != nil {
		return err
	}

	c.paymentMethod = paymentMethod
	return nil
}

func (c *CreateOrderCommand) setPaymentTerm(paymentTerm order.PaymentTerm) error {
	if err := paymentTerm.Validate(); err != nil {
		return err
	}

	c.paymentTerm = paymentTerm
	return nil
}
