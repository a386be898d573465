package commands

import (
	"errors"

	"parcel/internal/pkg/guard"
)

var ErrAssignPendingOrderCommandIsNotConstructed = errors.New(
	"AssignPendingOrderCommand must be created via NewAssignPendingOrderCommand constructor",
)

// AssignPendingOrderCommand represents a request to dispatch the oldest
// pending order to the best available driver. The command carries no data;
// the handler selects both sides itself.
type AssignPendingOrderCommand struct {
	guard guard.ConstructorGuard
}

// NewAssignPendingOrderCommand creates a command to run one dispatch round.
func NewAssignPendingOrderCommand() AssignPendingOrderCommand {
	return AssignPendingOrderCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c AssignPendingOrderCommand) Validate() error {
	return c.guard.Validate(ErrAssignPendingOrderCommandIsNotConstructed)
}
