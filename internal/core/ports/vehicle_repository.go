package ports

import (
	"context"

	"rescue/internal/core/domain/model/kernel"
	"rescue/internal/core/domain/model/vehicle"
)

// VehicleRepository defines the persistence contract for rescue vehicle
// aggregates.
type VehicleRepository interface {
	// Add persists a new vehicle aggregate to storage.
	Add(ctx context.Context, aggregate *vehicle.Vehicle) error

	// Update persists changes to an existing vehicle aggregate.
	Update(ctx context.Context, aggregate *vehicle.Vehicle) error

	// Get retrieves a vehicle aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error)

	// GetForUpdate retrieves a vehicle and acquires a row-level write lock
	// on it for the duration of the surrounding transaction. Two dispatch
	// commands racing for the same vehicle serialize here, so the second
	// one sees it already on duty.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error)

	// GetAllByCompany retrieves all vehicles belonging to a company.
	GetAllByCompany(ctx context.Context, companyID kernel.UUID) ([]*vehicle.Vehicle, error)
}
