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

// GetOrderQueryHandler retrieves a single order from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
//
// Example:
//
//	handler := NewGetOrderQueryHandler(db)
//	query, _ := NewGetOrderQuery(orderID)
//
//	view, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get order: %v", err)
//	    return err
//	}
//	fmt.Printf("Order %s is %s\n", view.ID, view.Status)
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Returns the order view with its active
// assignment attached when one exists.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var response GetOrderQueryResponse
	var id, requesterID, serviceID, companyID uuid.UUID
	var estimatedPrice, finalPrice sql.NullString

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			requester_id,
			service_id,
			company_id,
			status,
			estimated_price,
			final_price,
			notes,
			created_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().String()).Row()

	err := row.Scan(
		&id,
		&requesterID,
		&serviceID,
		&companyID,
		&response.Status,
		&estimatedPrice,
		&finalPrice,
		&response.Notes,
		&response.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if response.RequesterID, err = kernel.UUIDFromBytes(requesterID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if response.ServiceID, err = kernel.UUIDFromBytes(serviceID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if response.CompanyID, err = kernel.UUIDFromBytes(companyID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if estimatedPrice.Valid {
		response.EstimatedPrice = &estimatedPrice.String
	}
	if finalPrice.Valid {
		response.FinalPrice = &finalPrice.String
	}

	assignment, err := h.activeAssignment(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	response.Assignment = assignment

	return response, nil
}

// activeAssignment loads the order's active assignment, or nil when the
// order has none.
func (h GetOrderQueryHandler) activeAssignment(
	ctx context.Context,
	orderID kernel.UUID,
) (*GetOrderAssignmentResponse, error) {
	var assignment GetOrderAssignmentResponse
	var id, vehicleID uuid.UUID
	var arrivedAt sql.NullTime

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			a.id,
			a.vehicle_id,
			v.plate,
			a.status,
			a.dispatched_at,
			a.arrived_at
		FROM assignments a
		JOIN vehicles v ON v.id = a.vehicle_id
		WHERE a.order_id = ? AND a.status NOT IN (?, ?)
	`, orderID.String(), "COMPLETED", "CANCELLED").Row()

	err := row.Scan(
		&id,
		&vehicleID,
		&assignment.VehiclePlate,
		&assignment.Status,
		&assignment.DispatchedAt,
		&arrivedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if assignment.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return nil, err
	}
	if assignment.VehicleID, err = kernel.UUIDFromBytes(vehicleID[:]); err != nil {
		return nil, err
	}
	if arrivedAt.Valid {
		t := arrivedAt.Time.UTC()
		assignment.ArrivedAt = &t
	}

	return &assignment, nil
}
