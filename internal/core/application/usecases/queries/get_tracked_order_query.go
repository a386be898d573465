// Package queries contains read operations in the CQRS architecture.
// Queries never modify state; they read persisted data and shape it for
// presentation.
package queries

import (
	"errors"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/order"
	"parcel/internal/core/domain/model/timeline"
	"parcel/internal/pkg/guard"
)

var ErrGetTrackedOrderQueryIsNotConstructed = errors.New(
	"GetTrackedOrderQuery must be created via NewGetTrackedOrderQuery constructor",
)

// GetTrackedOrderQuery retrieves the public tracking view of an order by its
// tracking code. This is the query behind the customer tracking page; it
// exposes no customer or payment identifiers beyond the order's own state.
type GetTrackedOrderQuery struct { //nolint:recvcheck //using for validation
	trackingCode kernel.TrackingCode

	guard guard.ConstructorGuard
}

// NewGetTrackedOrderQuery creates a tracking query for the given code.
func NewGetTrackedOrderQuery(trackingCode kernel.TrackingCode) (GetTrackedOrderQuery, error) {
	query := GetTrackedOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := trackingCode.Validate(); err != nil {
		return GetTrackedOrderQuery{}, err
	}
	query.trackingCode = trackingCode

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTrackedOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetTrackedOrderQueryIsNotConstructed)
}

// TrackingCode returns the code being looked up.
func (q GetTrackedOrderQuery) TrackingCode() kernel.TrackingCode {
	return q.trackingCode
}

// GetTrackedOrderQueryResponse is the public tracking view of an order:
// its current state plus the projected stage timeline.
type GetTrackedOrderQueryResponse struct {
	OrderID       kernel.UUID
	TrackingCode  kernel.TrackingCode
	Status        order.Status
	PaymentStatus order.PaymentStatus
	Price         int
	Driver        *order.DriverSnapshot
	Timeline      []timeline.Entry
}
