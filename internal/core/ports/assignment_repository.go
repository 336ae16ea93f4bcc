package ports

import (
	"context"

	"rescue/internal/core/domain/model/dispatch"
	"rescue/internal/core/domain/model/kernel"
)

// AssignmentRepository defines the persistence contract for the dispatch
// ledger. An order has at most one active assignment at a time; historical
// (completed or cancelled) assignments are kept for the audit trail.
type AssignmentRepository interface {
	// Add persists a new dispatch assignment to storage.
	Add(ctx context.Context, aggregate *dispatch.Assignment) error

	// Update persists changes to an existing dispatch assignment.
	Update(ctx context.Context, aggregate *dispatch.Assignment) error

	// GetActiveByOrder retrieves the single active assignment for an order.
	// Returns ObjectNotFoundError when the order has no active assignment.
	GetActiveByOrder(ctx context.Context, orderID kernel.UUID) (*dispatch.Assignment, error)

	// GetAllActiveByOrder retrieves every active assignment for an order.
	// Used when cancelling an order to release all vehicles still in the field.
	GetAllActiveByOrder(ctx context.Context, orderID kernel.UUID) ([]*dispatch.Assignment, error)
}
