// Package dispatchrepo provides GORM-based persistence for the dispatch
// ledger. Completed and cancelled assignments are kept as the audit trail of
// which vehicle served which order.
package dispatchrepo

import (
	"time"

	"rescue/internal/core/domain/model/dispatch"
	"rescue/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AssignmentDTO represents the database structure for persisting dispatch
// assignments. The unique index on (order_id, vehicle_id) rules out a
// double dispatch of the same vehicle to the same order at the database
// level, independent of the row locks the handlers take.
type AssignmentDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID      uuid.UUID `gorm:"type:uuid;index;uniqueIndex:idx_assignments_order_vehicle"`
	VehicleID    uuid.UUID `gorm:"type:uuid;index;uniqueIndex:idx_assignments_order_vehicle"`
	Status       string    `gorm:"type:varchar(16);index"`
	DispatchedAt time.Time
	ArrivedAt    *time.Time
	CompletedAt  *time.Time
}

// TableName specifies the database table name for assignment entities.
func (AssignmentDTO) TableName() string {
	return "assignments"
}

// terminalStatuses returns the canonical names of the statuses that close
// an assignment. Everything else counts as active.
func terminalStatuses() []string {
	return []string{dispatch.Completed.String(), dispatch.Cancelled.String()}
}

// fromDomain converts a dispatch assignment to its database representation.
func fromDomain(aggregate *dispatch.Assignment) AssignmentDTO {
	return AssignmentDTO{
		ID:           aggregate.ID().Bytes(),
		OrderID:      aggregate.OrderID().Bytes(),
		VehicleID:    aggregate.VehicleID().Bytes(),
		Status:       aggregate.Status().String(),
		DispatchedAt: aggregate.DispatchedAt(),
		ArrivedAt:    aggregate.ArrivedAt(),
		CompletedAt:  aggregate.CompletedAt(),
	}
}

// toDomain converts a database DTO to a dispatch assignment.
func toDomain(dto AssignmentDTO) (*dispatch.Assignment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	vehicleID, err := kernel.UUIDFromBytes(dto.VehicleID[:])
	if err != nil {
		return nil, err
	}

	status, err := dispatch.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return dispatch.RestoreAssignment(
		id,
		orderID,
		vehicleID,
		status,
		dto.DispatchedAt,
		dto.ArrivedAt,
		dto.CompletedAt,
	)
}
