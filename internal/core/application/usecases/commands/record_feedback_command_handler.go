package commands

import (
	"context"

	"parcel/internal/core/domain/model/order"
)

// RecordFeedbackCommandHandler handles post-delivery feedback.
// Stores the feedback on the order and, for customer feedback, folds the
// rating into the driver's running average within the same transaction.
type RecordFeedbackCommandHandler struct {
	uowFactory UoWFactory
}

// NewRecordFeedbackCommandHandler creates a handler for post-delivery
// feedback.
func NewRecordFeedbackCommandHandler(uowFactory UoWFactory) RecordFeedbackCommandHandler {
	return RecordFeedbackCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the feedback command.
// Feedback on an undelivered order is rejected by the aggregate.
func (h RecordFeedbackCommandHandler) Handle(ctx context.Context, command RecordFeedbackCommand) error {
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

	ratedOrder, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	if err = ratedOrder.RecordFeedback(command.Role(), command.Rating(), command.Comment()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, ratedOrder); err != nil {
		return err
	}

	if command.Role() == order.RoleCustomer && ratedOrder.Driver() != nil {
		if err = h.rateDriver(ctx, uow, ratedOrder, command.Rating()); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

func (h RecordFeedbackCommandHandler) rateDriver(ctx context.Context, uow UoW, ratedOrder *order.Order, rating int) error {
	driverRepo := uow.DriverRepository()

	ratedDriver, err := driverRepo.Get(ctx, *ratedOrder.Driver())
	if err != nil {
		return err
	}

	if err = ratedDriver.RecordRating(rating); err != nil {
		return err
	}

	return driverRepo.Update(ctx, ratedDriver)
}
