package ports

import (
	"context"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// based on their status and assignment state.
//
// Update enforces optimistic concurrency: the write is conditioned on the
// version the aggregate was loaded with and fails with a
// ConcurrencyConflictError when another writer got there first.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, conditioned
	// on the version the caller observed.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByTrackingCode retrieves an order by its customer-facing tracking code.
	GetByTrackingCode(ctx context.Context, code kernel.TrackingCode) (*order.Order, error)

	// GetFirstInPendingStatus retrieves the oldest order still awaiting a
	// driver. Used by the auto-assignment workflow.
	GetFirstInPendingStatus(ctx context.Context) (*order.Order, error)

	// GetAllActive retrieves all orders that have not reached a terminal
	// status, oldest first.
	GetAllActive(ctx context.Context) ([]*order.Order, error)
}
