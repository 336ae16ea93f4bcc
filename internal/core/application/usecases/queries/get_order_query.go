// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models and never mutate aggregates.
package queries

import (
	"errors"
	"time"

	"rescue/internal/core/domain/model/kernel"
	"rescue/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order with its pricing and, when one
// exists, the active dispatch assignment.
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to retrieve an order by its identifier.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderAssignmentResponse describes the active dispatch assignment of an
// order in the read model.
type GetOrderAssignmentResponse struct {
	ID           kernel.UUID
	VehicleID    kernel.UUID
	VehiclePlate string
	Status       string
	DispatchedAt time.Time
	ArrivedAt    *time.Time
}

// GetOrderQueryResponse represents an order in the read model.
type GetOrderQueryResponse struct {
	ID             kernel.UUID
	RequesterID    kernel.UUID
	ServiceID      kernel.UUID
	CompanyID      kernel.UUID
	Status         string
	EstimatedPrice *string
	FinalPrice     *string
	Notes          string
	CreatedAt      time.Time
	Assignment     *GetOrderAssignmentResponse
}
