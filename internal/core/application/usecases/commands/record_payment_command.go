package commands

import (
	"errors"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/order"
	"parcel/internal/pkg/errs"
	"parcel/internal/pkg/guard"
)

var ErrRecordPaymentCommandIsNotConstructed = errors.New(
	"RecordPaymentCommand must be created via NewRecordPaymentCommand constructor",
)

// RecordPaymentCommand represents a payment settlement report for an order,
// typically relayed from the payment provider callback.
type RecordPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	target  order.PaymentStatus

	guard guard.ConstructorGuard
}

// NewRecordPaymentCommand creates a command to record a payment settlement.
func NewRecordPaymentCommand(orderID kernel.UUID, target order.PaymentStatus) (RecordPaymentCommand, error) {
	command := RecordPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setTarget(target),
	); err != nil {
		return RecordPaymentCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRecordPaymentCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being settled.
func (c RecordPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Target returns the payment status to record.
func (c RecordPaymentCommand) Target() order.PaymentStatus {
	return c.target
}

func (c *RecordPaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}

	c.orderID = orderID
	return nil
}

func (c *RecordPaymentCommand) setTarget(target order.PaymentStatus) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}
