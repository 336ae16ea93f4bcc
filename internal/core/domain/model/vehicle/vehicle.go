package vehicle

import (
	"errors"

	"rescue/internal/core/domain/model/kernel"
	"rescue/internal/pkg/errs"
	"rescue/internal/pkg/guard"
)

// Domain errors for vehicle operations.
var (
	// ErrPlateIsRequired is returned when attempting to create a vehicle without a plate number.
	ErrPlateIsRequired = errs.NewValueIsRequiredError("plate")
	// ErrVehicleIsNotConstructed is returned when using an improperly initialized Vehicle.
	ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewVehicle or RestoreVehicle constructor")
)

// Vehicle represents a rescue vehicle owned by a provider company.
// It is an aggregate root tracking availability: a vehicle is OnDuty exactly
// while it has an active dispatch assignment, and Available otherwise.
//
// Vehicle.status is mutated only inside an orchestrator transition; no read
// path may flip it, and a vehicle must never be dispatched to two orders at
// once (enforced by the dispatch ledger inside the same atomic unit).
type Vehicle struct {
	// id uniquely identifies the vehicle
	id kernel.UUID
	// companyID references the owning provider organization
	companyID kernel.UUID
	// plate is the registration plate number
	plate string
	// status is the availability state
	status Status

	guard guard.ConstructorGuard
}

// NewVehicle creates a new Vehicle in Available status.
func NewVehicle(id kernel.UUID, companyID kernel.UUID, plate string) (*Vehicle, error) {
	v := &Vehicle{
		status: Available,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		v.setID(id),
		v.setCompanyID(companyID),
		v.setPlate(plate),
	); err != nil {
		return nil, err
	}

	return v, nil
}

// RestoreVehicle reconstructs a Vehicle aggregate from persistent storage.
func RestoreVehicle(id kernel.UUID, companyID kernel.UUID, plate string, status Status) (*Vehicle, error) {
	v := &Vehicle{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		v.setID(id),
		v.setCompanyID(companyID),
		v.setPlate(plate),
		v.setStatus(status),
	); err != nil {
		return nil, err
	}

	return v, nil
}

// Validate checks if the Vehicle was properly constructed.
func (v *Vehicle) Validate() error {
	if v == nil {
		return ErrVehicleIsNotConstructed
	}
	return v.guard.Validate(ErrVehicleIsNotConstructed)
}

// IsEqual compares two vehicles by their unique identifiers.
func (v *Vehicle) IsEqual(other *Vehicle) bool {
	return other != nil && v.id.IsEqual(other.id)
}

// ID returns the vehicle's unique identifier.
func (v *Vehicle) ID() kernel.UUID {
	return v.id
}

// CompanyID returns the identifier of the owning provider organization.
func (v *Vehicle) CompanyID() kernel.UUID {
	return v.companyID
}

// Plate returns the registration plate number.
func (v *Vehicle) Plate() string {
	return v.plate
}

// Status returns the current availability status.
func (v *Vehicle) Status() Status {
	return v.status
}

// IsAvailable reports whether the vehicle can be dispatched.
func (v *Vehicle) IsAvailable() bool {
	return v.status == Available
}

// MarkOnDuty puts the vehicle on duty for a dispatch.
// Only an available vehicle can be put on duty.
func (v *Vehicle) MarkOnDuty() error {
	newStatus, err := v.status.MarkOnDuty()
	if err != nil {
		return err
	}
	v.status = newStatus
	return nil
}

// Release returns the vehicle to the available pool after its assignment
// completed or was cancelled.
func (v *Vehicle) Release() error {
	newStatus, err := v.status.Release()
	if err != nil {
		return err
	}
	v.status = newStatus
	return nil
}

func (v *Vehicle) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	v.id = id
	return nil
}

func (v *Vehicle) setCompanyID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("companyID", err)
	}
	v.companyID = id
	return nil
}

func (v *Vehicle) setPlate(plate string) error {
	if plate == "" {
		return ErrPlateIsRequired
	}
	v.plate = plate
	return nil
}

func (v *Vehicle) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	v.status = status
	return nil
}
