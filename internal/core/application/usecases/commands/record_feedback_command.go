package commands

import (
	"errors"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/order"
	"parcel/internal/pkg/errs"
	"parcel/internal/pkg/guard"
)

var ErrRecordFeedbackCommandIsNotConstructed = errors.New(
	"RecordFeedbackCommand must be created via NewRecordFeedbackCommand constructor",
)

// RecordFeedbackCommand represents a post-delivery rating with an optional
// comment, submitted by either the customer or the driver.
type RecordFeedbackCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	role    order.Role
	rating  int
	comment string

	guard guard.ConstructorGuard
}

// NewRecordFeedbackCommand creates a command to record delivery feedback.
// The rating bounds are enforced by the aggregate when the feedback is
// recorded; the command only checks the role and order ID.
func NewRecordFeedbackCommand(
	orderID kernel.UUID,
	role order.Role,
	rating int,
	comment string,
) (RecordFeedbackCommand, error) {
	command := RecordFeedbackCommand{
		rating:  rating,
		comment: comment,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setRole(role),
	); err != nil {
		return RecordFeedbackCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordFeedbackCommand) Validate() error {
	return c.guard.Validate(ErrRecordFeedbackCommandIsNotConstructed)
}

// OrderID returns the identifier of the delivered order.
func (c RecordFeedbackCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Role returns who is leaving the feedback.
func (c RecordFeedbackCommand) Role() order.Role {
	return c.role
}

// Rating returns the submitted rating.
func (c RecordFeedbackCommand) Rating() int {
	return c.rating
}

// Comment returns the optional comment, possibly empty.
func (c RecordFeedbackCommand) Comment() string {
	return c.comment
}

func (c *RecordFeedbackCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}

	c.orderID = orderID
	return nil
}

func (c *RecordFeedbackCommand) setRole(role order.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}
