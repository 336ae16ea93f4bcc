package ports

import (
	"context"
	"errors"
	"time"

	"rescue/internal/core/domain/model/invoice"
	"rescue/internal/core/domain/model/kernel"
)

// ErrInvoiceNumberConflict is returned by Add when the generated invoice
// number is already taken. Two completions racing on the same calendar day
// can compute the same daily sequence; the caller retries once with the
// next value.
var ErrInvoiceNumberConflict = errors.New("invoice number already taken")

// InvoiceRepository defines the persistence contract for invoice aggregates.
// The storage layer enforces the one-invoice-per-order rule with a unique
// constraint on the order reference.
type InvoiceRepository interface {
	// Add persists a new invoice aggregate to storage.
	// Returns InvariantViolationError when the order already has an invoice.
	Add(ctx context.Context, aggregate *invoice.Invoice) error

	// Update persists changes to an existing invoice aggregate.
	Update(ctx context.Context, aggregate *invoice.Invoice) error

	// Get retrieves an invoice aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*invoice.Invoice, error)

	// GetByOrder retrieves the invoice issued for an order.
	GetByOrder(ctx context.Context, orderID kernel.UUID) (*invoice.Invoice, error)

	// CountIssuedOn returns the number of invoices issued on the given
	// calendar day (UTC). The next daily sequence value is this count plus one.
	CountIssuedOn(ctx context.Context, day time.Time) (int, error)

	// GetAllPendingDueBefore retrieves pending invoices whose due date
	// passed before the given moment. Used by the overdue sweep job.
	GetAllPendingDueBefore(ctx context.Context, moment time.Time) ([]*invoice.Invoice, error)
}
