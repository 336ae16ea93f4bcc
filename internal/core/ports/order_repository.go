// Package ports defines repository interfaces for the rescue domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"rescue/internal/core/domain/model/kernel"
	"rescue/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order and acquires a row-level write lock
	// on it for the duration of the surrounding transaction. Concurrent
	// commands targeting the same order serialize on this lock, so each
	// one observes the state left by the previous one.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
