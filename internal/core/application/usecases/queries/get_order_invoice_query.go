package queries

import (
	"errors"
	"time"

	"rescue/internal/core/domain/model/kernel"
	"rescue/internal/pkg/guard"
)

var ErrGetOrderInvoiceQueryIsNotConstructed = errors.New(
	"GetOrderInvoiceQuery must be created via NewGetOrderInvoiceQuery constructor",
)

// GetOrderInvoiceQuery retrieves the invoice issued for an order.
type GetOrderInvoiceQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderInvoiceQuery creates a query to retrieve an order's invoice.
func NewGetOrderInvoiceQuery(orderID kernel.UUID) (GetOrderInvoiceQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderInvoiceQuery{}, err
	}
	return GetOrderInvoiceQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderInvoiceQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderInvoiceQueryIsNotConstructed)
}

// OrderID returns the identifier of the invoiced order.
func (q GetOrderInvoiceQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderInvoiceQueryResponse represents an invoice in the read model.
type GetOrderInvoiceQueryResponse struct {
	ID       kernel.UUID
	Number   string
	Amount   string
	IssuedAt time.Time
	DueDate  time.Time
	Status   string
}
