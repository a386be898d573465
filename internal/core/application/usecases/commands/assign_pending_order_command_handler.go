package commands

import (
	"context"
	"errors"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/services"
	"parcel/internal/pkg/errs"
)

var (
	ErrNoAvailableDriversFound = errors.New("no available drivers found")
	ErrNoPendingOrderFound     = errors.New("no pending order found")
)

// AssignPendingOrderCommandHandler orchestrates the automatic dispatch round.
// Finds the oldest pending order and matches it with the best available
// driver using the DriverDispatcher domain service. Ensures transactional
// consistency when updating both order and driver states.
//
// Example:
//
//	handler := NewAssignPendingOrderCommandHandler(uowFactory, clock)
//	cmd := NewAssignPendingOrderCommand()
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrNoPendingOrderFound):
//	    log.Println("No pending orders")
//	case errors.Is(err, ErrNoAvailableDriversFound):
//	    log.Println("All drivers are busy")
//	case err != nil:
//	    log.Printf("Dispatch failed: %v", err)
//	default:
//	    log.Println("Driver assigned successfully")
//	}
type AssignPendingOrderCommandHandler struct {
	uowFactory UoWFactory
	clock      kernel.Clock
}

// NewAssignPendingOrderCommandHandler creates a handler for automatic
// dispatch rounds. Requires a UoWFactory for coordinating transactional
// updates across repositories.
func NewAssignPendingOrderCommandHandler(uowFactory UoWFactory, clock kernel.Clock) AssignPendingOrderCommandHandler {
	return AssignPendingOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes one dispatch round.
// Retrieves the oldest pending order, loads the available drivers and uses
// DriverDispatcher to select the best match. Updates both entities within a
// single transaction. Returns specific errors for no orders
// (ErrNoPendingOrderFound) or no drivers (ErrNoAvailableDriversFound).
func (h AssignPendingOrderCommandHandler) Handle(ctx context.Context, command AssignPendingOrderCommand) error {
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

	pendingOrder, err := orderRepo.GetFirstInPendingStatus(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoPendingOrderFound
	}
	if err != nil {
		return err
	}

	drivers, err := driverRepo.GetAllAvailable(ctx)
	if err != nil {
		return err
	}
	if len(drivers) == 0 {
		return ErrNoAvailableDriversFound
	}

	assignedDriver, err := services.NewDriverDispatcher().Dispatch(pendingOrder, drivers, h.clock.Now())
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, pendingOrder); err != nil {
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
