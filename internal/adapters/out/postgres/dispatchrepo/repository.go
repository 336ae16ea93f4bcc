package dispatchrepo

import (
	"context"
	"errors"
	"strings"

	"rescue/internal/core/domain/model/dispatch"
	"rescue/internal/core/domain/model/kernel"
	"rescue/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

const uniqueViolationCode = "23505"

// GormAssignmentRepository implements AssignmentRepository using GORM.
type GormAssignmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormAssignmentRepository creates a new GORM assignment repository.
func NewGormAssignmentRepository(db *gorm.DB, tracker aggregateTracker) *GormAssignmentRepository {
	return &GormAssignmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new assignment to the database. Dispatching the same vehicle
// to the same order twice surfaces as InvariantViolationError.
func (r *GormAssignmentRepository) Add(ctx context.Context, aggregate *dispatch.Assignment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return translateUniqueViolation(err, aggregate.OrderID(), aggregate.VehicleID())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing assignment to the database.
func (r *GormAssignmentRepository) Update(ctx context.Context, aggregate *dispatch.Assignment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&AssignmentDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetActiveByOrder retrieves the single active assignment for an order.
func (r *GormAssignmentRepository) GetActiveByOrder(
	ctx context.Context, orderID kernel.UUID,
) (*dispatch.Assignment, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto AssignmentDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ? AND status NOT IN ?", orderID.Bytes(), terminalStatuses()).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("active assignment for order", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllActiveByOrder retrieves every active assignment for an order.
// An empty slice is not an error; cancelling an undispatched order has
// nothing to release.
func (r *GormAssignmentRepository) GetAllActiveByOrder(
	ctx context.Context, orderID kernel.UUID,
) ([]*dispatch.Assignment, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []AssignmentDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ? AND status NOT IN ?", orderID.Bytes(), terminalStatuses()).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	assignments := make([]*dispatch.Assignment, 0, len(dtos))
	for _, dto := range dtos {
		a, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}

	return assignments, nil
}

// translateUniqueViolation maps a violation of the (order_id, vehicle_id)
// unique index onto the double-dispatch invariant.
func translateUniqueViolation(err error, orderID, vehicleID kernel.UUID) error {
	if !isUniqueViolation(err) {
		return err
	}
	return errs.NewInvariantViolationErrorWithCause(
		"vehicle "+vehicleID.String()+" is already assigned to order "+orderID.String(), err)
}

// isUniqueViolation detects a postgres unique violation. The lib/pq driver
// reports the code in a typed error; other drivers only expose it in the
// message text.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == uniqueViolationCode
	}

	msg := err.Error()
	return strings.Contains(msg, "SQLSTATE "+uniqueViolationCode) ||
		strings.Contains(msg, "duplicate key value violates unique constraint")
}
