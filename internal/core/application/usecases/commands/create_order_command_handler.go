package commands

import (
	"context"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/order"
	"parcel/internal/core/domain/model/pricing"
)

// CreateOrderResult carries the identifiers and the quoted price of a newly
// placed order back to the caller.
type CreateOrderResult struct {
	OrderID      kernel.UUID
	TrackingCode kernel.TrackingCode
	Breakdown    pricing.PriceBreakdown
}

// CreateOrderCommandHandler handles the business logic for order placement.
// Quotes the price from the tariff, creates the order in pending status and
// persists it within a transaction.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	tariff     pricing.Tariff
	clock      kernel.Clock
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// Requires an OrderUoWFactory for transactional persistence, the tariff the
// price is quoted from, and a clock for creation timestamps.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	tariff pricing.Tariff,
	clock kernel.Clock,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		tariff:     tariff,
		clock:      clock,
	}
}

// Handle processes the order placement command.
// The price is quoted once, from the submitted attributes and the placement
// time, and stamped onto the order. Returns the new order's identifiers and
// the full price breakdown.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (CreateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResult{}, err
	}

	now := h.clock.Now()
	conditions := pricing.ConditionsFor(
		cmd.DistanceKm(),
		cmd.Package().IsFragile(),
		cmd.Package().HasInsurance(),
		now,
	)
	breakdown, err := h.tariff.Calculate(conditions)
	if err != nil {
		return CreateOrderResult{}, err
	}

	newOrder, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewTrackingCode(),
		cmd.CustomerID(),
		cmd.Route(),
		cmd.Package(),
		cmd.Recipient(),
		cmd.SpecialInstructions(),
		cmd.PaymentMethod(),
		cmd.PaymentTerm(),
		breakdown.Total(),
		now,
	)
	if err != nil {
		return CreateOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return CreateOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	return CreateOrderResult{
		OrderID:      newOrder.ID(),
		TrackingCode: newOrder.TrackingCode(),
		Breakdown:    breakdown,
	}, nil
}
