package queries

import (
	"errors"

	"rescue/internal/core/domain/model/kernel"
	"rescue/internal/pkg/guard"
)

var ErrGetCompanyVehiclesQueryIsNotConstructed = errors.New(
	"GetCompanyVehiclesQuery must be created via NewGetCompanyVehiclesQuery constructor",
)

// GetCompanyVehiclesQuery retrieves the rescue vehicles of a provider
// organization with their availability, for the dispatch screen.
type GetCompanyVehiclesQuery struct { //nolint:recvcheck //using for validation
	companyID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCompanyVehiclesQuery creates a query to list a company's vehicles.
func NewGetCompanyVehiclesQuery(companyID kernel.UUID) (GetCompanyVehiclesQuery, error) {
	if err := companyID.Validate(); err != nil {
		return GetCompanyVehiclesQuery{}, err
	}
	return GetCompanyVehiclesQuery{
		companyID: companyID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCompanyVehiclesQuery) Validate() error {
	return q.guard.Validate(ErrGetCompanyVehiclesQueryIsNotConstructed)
}

// CompanyID returns the identifier of the provider organization.
func (q GetCompanyVehiclesQuery) CompanyID() kernel.UUID {
	return q.companyID
}

// GetCompanyVehiclesQueryResponse represents a vehicle in the read model.
type GetCompanyVehiclesQueryResponse struct {
	ID     kernel.UUID
	Plate  string
	Status string
}
