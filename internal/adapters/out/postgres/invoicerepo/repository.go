package invoicerepo

import (
	"context"
	"errors"
	"strings"
	"time"

	"rescue/internal/core/domain/model/invoice"
	"rescue/internal/core/domain/model/kernel"
	"rescue/internal/core/ports"
	"rescue/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

const uniqueViolationCode = "23505"

// GormInvoiceRepository implements InvoiceRepository using GORM.
type GormInvoiceRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormInvoiceRepository creates a new GORM invoice repository.
func NewGormInvoiceRepository(db *gorm.DB, tracker aggregateTracker) *GormInvoiceRepository {
	return &GormInvoiceRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new invoice to the database. A duplicate invoice for the same
// order surfaces as InvariantViolationError; a taken invoice number surfaces
// as ErrInvoiceNumberConflict so the issuer can retry with the next sequence
// value.
func (r *GormInvoiceRepository) Add(ctx context.Context, aggregate *invoice.Invoice) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return translateUniqueViolation(err, aggregate.OrderID())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing invoice to the database.
func (r *GormInvoiceRepository) Update(ctx context.Context, aggregate *invoice.Invoice) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&InvoiceDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an invoice by ID.
func (r *GormInvoiceRepository) Get(ctx context.Context, id kernel.UUID) (*invoice.Invoice, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto InvoiceDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("invoice", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOrder retrieves the invoice issued for an order.
func (r *GormInvoiceRepository) GetByOrder(
	ctx context.Context, orderID kernel.UUID,
) (*invoice.Invoice, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto InvoiceDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("invoice for order", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// CountIssuedOn returns the number of invoices issued on the given calendar
// day (UTC).
func (r *GormInvoiceRepository) CountIssuedOn(ctx context.Context, day time.Time) (int, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.Add(24 * time.Hour)

	var count int64
	err := r.db.WithContext(ctx).
		Model(&InvoiceDTO{}).
		Where("issued_at >= ? AND issued_at < ?", dayStart, dayEnd).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return int(count), nil
}

// GetAllPendingDueBefore retrieves pending invoices whose due date passed
// before the given moment.
func (r *GormInvoiceRepository) GetAllPendingDueBefore(
	ctx context.Context, moment time.Time,
) ([]*invoice.Invoice, error) {
	var dtos []InvoiceDTO
	err := r.db.WithContext(ctx).
		Where("status = ? AND due_date < ?", invoice.Pending.String(), moment).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	invoices := make([]*invoice.Invoice, 0, len(dtos))
	for _, dto := range dtos {
		inv, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, inv)
	}

	return invoices, nil
}

// translateUniqueViolation maps postgres unique violations onto the domain
// level meaning of the violated index.
func translateUniqueViolation(err error, orderID kernel.UUID) error {
	constraint, ok := violatedConstraint(err)
	if !ok {
		return err
	}

	switch {
	case strings.Contains(constraint, "order_id"):
		return errs.NewInvariantViolationErrorWithCause(
			"order "+orderID.String()+" already has an invoice", err)
	case strings.Contains(constraint, "number"):
		return ports.ErrInvoiceNumberConflict
	default:
		return err
	}
}

// violatedConstraint extracts the constraint name from a unique violation.
// The lib/pq driver reports it in a typed error; other drivers only expose
// it in the message text.
func violatedConstraint(err error) (string, bool) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		if string(pqErr.Code) != uniqueViolationCode {
			return "", false
		}
		return pqErr.Constraint, true
	}

	msg := err.Error()
	if !strings.Contains(msg, "SQLSTATE "+uniqueViolationCode) &&
		!strings.Contains(msg, "duplicate key value violates unique constraint") {
		return "", false
	}
	return msg, true
}
