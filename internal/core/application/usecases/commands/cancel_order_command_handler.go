package commands

import (
	"context"

	"parcel/internal/core/domain/model/kernel"
)

// CancelOrderCommandHandler handles order cancellation.
// Cancels the order and, if a driver was already assigned, returns the
// driver to the dispatch pool within the same transaction.
type CancelOrderCommandHandler struct {
	uowFactory UoWFactory
	clock      kernel.Clock
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory UoWFactory, clock kernel.Clock) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the cancellation command.
// Cancelling a terminal order is rejected by the aggregate with an
// InvalidTransitionError.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, command CancelOrderCommand) error {
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

	cancelledOrder, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	if err = cancelledOrder.Cancel(command.Reason(), h.clock.Now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, cancelledOrder); err != nil {
		return err
	}

	if driverID := cancelledOrder.Driver(); driverID != nil {
		driverRepo := uow.DriverRepository()

		assignedDriver, err := driverRepo.Get(ctx, *driverID)
		if err != nil {
			return err
		}

		assignedDriver.MarkAvailable()
		if err = driverRepo.Update(ctx, assignedDriver); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
