package queries

import (
	"context"

	"parcel/internal/core/domain/model/timeline"
	"parcel/internal/core/ports"
)

// GetTrackedOrderQueryHandler serves the customer tracking page.
// Loads the order aggregate by its tracking code and projects the stage
// timeline from its recorded history.
type GetTrackedOrderQueryHandler struct {
	orderRepo ports.OrderRepository
}

// NewGetTrackedOrderQueryHandler creates a handler for tracking lookups.
// The repository is used read-only; no transaction is opened.
func NewGetTrackedOrderQueryHandler(orderRepo ports.OrderRepository) GetTrackedOrderQueryHandler {
	return GetTrackedOrderQueryHandler{orderRepo: orderRepo}
}

// Handle executes the tracking lookup.
// Returns an ObjectNotFoundError when no order carries the given code.
func (h GetTrackedOrderQueryHandler) Handle(
	ctx context.Context,
	query GetTrackedOrderQuery,
) (GetTrackedOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetTrackedOrderQueryResponse{}, err
	}

	trackedOrder, err := h.orderRepo.GetByTrackingCode(ctx, query.TrackingCode())
	if err != nil {
		return GetTrackedOrderQueryResponse{}, err
	}

	entries, err := timeline.Project(trackedOrder)
	if err != nil {
		return GetTrackedOrderQueryResponse{}, err
	}

	return GetTrackedOrderQueryResponse{
		OrderID:       trackedOrder.ID(),
		TrackingCode:  trackedOrder.TrackingCode(),
		Status:        trackedOrder.Status(),
		PaymentStatus: trackedOrder.PaymentStatus(),
		Price:         trackedOrder.Price(),
		Driver:        trackedOrder.DriverSnapshot(),
		Timeline:      entries,
	}, nil
}
