// Package postgres provides the GORM-based Unit of Work implementation.
// A unit of work spans one business transaction: the command handler begins
// it, performs repository operations against the rescue aggregates, and
// either commits or rolls back. Repositories obtained from an active unit
// of work share its transaction; without an active transaction they operate
// on the main connection and auto-commit.
package postgres

import (
	"context"

	"rescue/internal/adapters/out/postgres/dispatchrepo"
	"rescue/internal/adapters/out/postgres/invoicerepo"
	"rescue/internal/adapters/out/postgres/orderrepo"
	"rescue/internal/adapters/out/postgres/vehiclerepo"
	"rescue/internal/core/domain/model/kernel"
	"rescue/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
// Tracked aggregates survive the transaction, enabling post-commit processing
// such as domain event publishing.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate interface{}
}

// GormUnitOfWorkFactory creates UnitOfWork instances over a shared GORM
// connection. Each business operation gets a fresh instance with its own
// transaction state, isolated from concurrent operations.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances. The provided connection is shared by all created instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork ready for a business transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates a database transaction across the order,
// vehicle, assignment and invoice repositories and tracks the aggregates
// modified within it.
//
// Example:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	if err := uow.OrderRepository().Update(ctx, order); err != nil {
//	    return err
//	}
//	if err := uow.VehicleRepository().Update(ctx, vehicle); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction for the unit of work.
// Calling Begin with a transaction already active is a no-op, so handlers
// can begin defensively without creating nested transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// Returns gorm.ErrInvalidTransaction when no transaction is active.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// Returns gorm.ErrInvalidTransaction when no transaction is active.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// OrderRepository provides order persistence within the unit of work.
// Operations run inside the active transaction when one exists.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return orderrepo.NewGormOrderRepository(db, uow)
}

// VehicleRepository provides vehicle persistence within the unit of work.
func (uow *GormUnitOfWork) VehicleRepository() ports.VehicleRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return vehiclerepo.NewGormVehicleRepository(db, uow)
}

// AssignmentRepository provides dispatch assignment persistence within the
// unit of work.
func (uow *GormUnitOfWork) AssignmentRepository() ports.AssignmentRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return dispatchrepo.NewGormAssignmentRepository(db, uow)
}

// InvoiceRepository provides invoice persistence within the unit of work.
func (uow *GormUnitOfWork) InvoiceRepository() ports.InvoiceRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return invoicerepo.NewGormInvoiceRepository(db, uow)
}

// TrackAggregate registers a domain aggregate as modified within this unit
// of work. Repositories call it on every Add and Update.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}
