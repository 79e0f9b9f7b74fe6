package ports

import (
	"context"
	"time"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Implementations persist the whole aggregate cluster (order row, items,
// extras) atomically.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, replacing its
	// items and extras wholesale so insertion order is preserved.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll retrieves orders of any status, newest first.
	// A non-positive limit means no limit.
	GetAll(ctx context.Context, limit int) ([]*order.Order, error)

	// GetAllOpen retrieves open orders, newest first.
	// A non-positive limit means no limit.
	GetAllOpen(ctx context.Context, limit int) ([]*order.Order, error)

	// GetAllPaidBefore retrieves paid orders whose last update is older than
	// the cutoff. Used by the retention purge job.
	GetAllPaidBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error)

	// Delete removes an order together with its items and extras.
	Delete(ctx context.Context, id kernel.UUID) error
}
