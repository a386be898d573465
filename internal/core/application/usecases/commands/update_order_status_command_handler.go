package commands

import (
	"context"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/order"
)

// UpdateOrderStatusCommandHandler handles delivery progress reports.
// Advances the order along the chain and, when the delivery completes,
// returns the driver to the dispatch pool within the same transaction.
type UpdateOrderStatusCommandHandler struct {
	uowFactory UoWFactory
	clock      kernel.Clock
}

// NewUpdateOrderStatusCommandHandler creates a handler for delivery progress
// reports.
func NewUpdateOrderStatusCommandHandler(uowFactory UoWFactory, clock kernel.Clock) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the status update command.
// Illegal steps are rejected by the aggregate with an InvalidTransitionError
// and leave the order untouched.
func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, command UpdateOrderStatusCommand) error {
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

	trackedOrder, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	if err = trackedOrder.Advance(command.Target(), h.clock.Now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, trackedOrder); err != nil {
		return err
	}

	if trackedOrder.Status() == order.StatusDelivered && trackedOrder.Driver() != nil {
		if err = h.releaseDriver(ctx, uow, *trackedOrder.Driver()); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

func (h UpdateOrderStatusCommandHandler) releaseDriver(ctx context.Context, uow UoW, driverID kernel.UUID) error {
	driverRepo := uow.DriverRepository()

	assignedDriver, err := driverRepo.Get(ctx, driverID)
	if err != nil {
		return err
	}

	assignedDriver.MarkAvailable()
	return driverRepo.Update(ctx, assignedDriver)
}
