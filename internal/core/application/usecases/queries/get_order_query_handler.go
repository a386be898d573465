package queries

import (
	"context"

	"parcel/internal/core/domain/model/timeline"
	"parcel/internal/core/ports"
)

// GetOrderQueryHandler serves single-order lookups by id.
// Shares the tracking response shape: current state plus projected timeline.
type GetOrderQueryHandler struct {
	orderRepo ports.OrderRepository
}

// NewGetOrderQueryHandler creates a handler for order lookups.
// The repository is used read-only; no transaction is opened.
func NewGetOrderQueryHandler(orderRepo ports.OrderRepository) GetOrderQueryHandler {
	return GetOrderQueryHandler{orderRepo: orderRepo}
}

// Handle executes the lookup.
// Returns an ObjectNotFoundError when the order does not exist.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetTrackedOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetTrackedOrderQueryResponse{}, err
	}

	foundOrder, err := h.orderRepo.Get(ctx, query.OrderID())
	if err != nil {
		return GetTrackedOrderQueryResponse{}, err
	}

	entries, err := timeline.Project(foundOrder)
	if err != nil {
		return GetTrackedOrderQueryResponse{}, err
	}

	return GetTrackedOrderQueryResponse{
		OrderID:       foundOrder.ID(),
		TrackingCode:  foundOrder.TrackingCode(),
		Status:        foundOrder.Status(),
		PaymentStatus: foundOrder.PaymentStatus(),
		Price:         foundOrder.Price(),
		Driver:        foundOrder.DriverSnapshot(),
		Timeline:      entries,
	}, nil
}
