package queries

import (
	"context"
	"database/sql"
	"errors"

	"rescue/internal/core/domain/model/kernel"
	"rescue/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderInvoiceQueryHandler retrieves an order's invoice from the database.
type GetOrderInvoiceQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderInvoiceQueryHandler creates a handler for invoice queries.
// Requires a GORM database connection for query execution.
func NewGetOrderInvoiceQueryHandler(db *gorm.DB) GetOrderInvoiceQueryHandler {
	return GetOrderInvoiceQueryHandler{db: db}
}

// Handle executes the query. Returns ObjectNotFoundError when the order has
// no invoice yet.
func (h GetOrderInvoiceQueryHandler) Handle(
	ctx context.Context,
	query GetOrderInvoiceQuery,
) (GetOrderInvoiceQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderInvoiceQueryResponse{}, err
	}

	var response GetOrderInvoiceQueryResponse
	var id uuid.UUID

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			amount,
			issued_at,
			due_date,
			status
		FROM invoices
		WHERE order_id = ?
	`, query.OrderID().String()).Row()

	err := row.Scan(
		&id,
		&response.Number,
		&response.Amount,
		&response.IssuedAt,
		&response.DueDate,
		&response.Status,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderInvoiceQueryResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
	}
	if err != nil {
		return GetOrderInvoiceQueryResponse{}, err
	}

	if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetOrderInvoiceQueryResponse{}, err
	}

	return response, nil
}
