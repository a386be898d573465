package commands

import (
	"context"

	"parcel/internal/core/domain/model/kernel"
)

// AssignDriverCommandHandler handles manual driver assignment.
// Loads both aggregates, executes the assignment on each side and persists
// them within a single transaction.
type AssignDriverCommandHandler struct {
	uowFactory UoWFactory
	clock      kernel.Clock
}

// NewAssignDriverCommandHandler creates a handler for manual driver
// assignment. Requires a UoWFactory for coordinating transactional updates
// across repositories.
func NewAssignDriverCommandHandler(uowFactory UoWFactory, clock kernel.Clock) AssignDriverCommandHandler {
	return AssignDriverCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the assignment command.
// Fails if the order is not pending or the driver is already busy; both
// checks are enforced by the aggregates themselves.
func (h AssignDriverCommandHandler) Handle(ctx context.Context, command AssignDriverCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	driverRepo := uow.DriverRepository()

	assignedOrder, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	assignedDriver, err := driverRepo.Get(ctx, command.DriverID())
	if err != nil {
		return err
	}

	snapshot, err := assignedDriver.Snapshot()
	if err != nil {
		return err
	}

	if err = assignedOrder.Assign(assignedDriver.ID(), snapshot, h.clock.Now()); err != nil {
		return err
	}

	if err = assignedDriver.MarkBusy(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, assignedOrder); err != nil {
		return err
	}

	if err = driverRepo.Update(ctx, assignedDriver); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
