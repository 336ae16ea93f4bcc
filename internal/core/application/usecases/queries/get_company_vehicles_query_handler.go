package queries

import (
	"context"

	"rescue/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCompanyVehiclesQueryHandler retrieves a company's vehicle fleet from
// the database. Uses direct SQL queries for optimal read performance in the
// CQRS pattern.
type GetCompanyVehiclesQueryHandler struct {
	db *gorm.DB
}

// NewGetCompanyVehiclesQueryHandler creates a handler for fleet queries.
// Requires a GORM database connection for query execution.
func NewGetCompanyVehiclesQueryHandler(db *gorm.DB) GetCompanyVehiclesQueryHandler {
	return GetCompanyVehiclesQueryHandler{db: db}
}

// Handle executes the query to retrieve all vehicles of a company.
// Returns vehicle read models sorted by plate.
func (h GetCompanyVehiclesQueryHandler) Handle(
	ctx context.Context,
	query GetCompanyVehiclesQuery,
) ([]GetCompanyVehiclesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	vehicles := make([]GetCompanyVehiclesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			plate,
			status
		FROM vehicles
		WHERE company_id = ?
		ORDER BY plate
	`, query.CompanyID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var veh GetCompanyVehiclesQueryResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &veh.Plate, &veh.Status); err != nil {
			return nil, err
		}

		vehicleID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		veh.ID = vehicleID
		vehicles = append(vehicles, veh)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return vehicles, nil
}
