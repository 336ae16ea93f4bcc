// Package vehiclerepo provides GORM-based persistence for the rescue
// vehicle aggregate.
package vehiclerepo

import (
	"rescue/internal/core/domain/model/kernel"
	"rescue/internal/core/domain/model/vehicle"

	"github.com/google/uuid"
)

// VehicleDTO represents the database structure for persisting vehicle aggregates.
type VehicleDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID uuid.UUID `gorm:"type:uuid;index"`
	Plate     string    `gorm:"type:varchar(16)"`
	Status    string    `gorm:"type:varchar(16)"`
}

// TableName specifies the database table name for vehicle entities.
func (VehicleDTO) TableName() string {
	return "vehicles"
}

// fromDomain converts a vehicle domain aggregate to its database representation.
func fromDomain(aggregate *vehicle.Vehicle) VehicleDTO {
	return VehicleDTO{
		ID:        aggregate.ID().Bytes(),
		CompanyID: aggregate.CompanyID().Bytes(),
		Plate:     aggregate.Plate(),
		Status:    aggregate.Status().String(),
	}
}

// toDomain converts a database DTO to a vehicle domain aggregate.
func toDomain(dto VehicleDTO) (*vehicle.Vehicle, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	companyID, err := kernel.UUIDFromBytes(dto.CompanyID[:])
	if err != nil {
		return nil, err
	}

	status, err := vehicle.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return vehicle.RestoreVehicle(id, companyID, dto.Plate, status)
}
