package dispatch

import (
	"errors"
	"time"

	"rescue/internal/core/domain/model/kernel"
	"rescue/internal/pkg/errs"
	"rescue/internal/pkg/guard"
)

// ErrAssignmentIsNotConstructed is returned when using an improperly
// initialized Assignment.
var ErrAssignmentIsNotConstructed = errors.New(
	"Assignment must be created via NewAssignment or RestoreAssignment constructor")

// Assignment is the dispatch-ledger record binding one vehicle to one order
// for the duration of a rescue. At most one active (non-terminal) assignment
// exists per order and per vehicle at any time; the uniqueness of the
// (order, vehicle) pair prevents double-dispatch.
type Assignment struct {
	// id uniquely identifies the assignment
	id kernel.UUID
	// orderID references the order being serviced
	orderID kernel.UUID
	// vehicleID references the dispatched vehicle; the vehicle is owned by
	// its provider company and only referenced here, never owned
	vehicleID kernel.UUID
	// status is the dispatch sub-state
	status Status

	// dispatchedAt is stamped at creation
	dispatchedAt time.Time
	// arrivedAt is stamped when the vehicle reaches the scene (nil before)
	arrivedAt *time.Time
	// completedAt is stamped at completion or cancellation (nil before)
	completedAt *time.Time

	guard guard.ConstructorGuard
}

// NewAssignment creates an Assignment in Dispatched status with the dispatch
// timestamp set to now.
func NewAssignment(id kernel.UUID, orderID kernel.UUID, vehicleID kernel.UUID) (*Assignment, error) {
	a := &Assignment{
		status:       Dispatched,
		dispatchedAt: time.Now().UTC(),
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setOrderID(orderID),
		a.setVehicleID(vehicleID),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAssignment reconstructs an Assignment from persistent storage.
func RestoreAssignment(
	id kernel.UUID,
	orderID kernel.UUID,
	vehicleID kernel.UUID,
	status Status,
	dispatchedAt time.Time,
	arrivedAt *time.Time,
	completedAt *time.Time,
) (*Assignment, error) {
	a := &Assignment{
		dispatchedAt: dispatchedAt,
		arrivedAt:    arrivedAt,
		completedAt:  completedAt,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setOrderID(orderID),
		a.setVehicleID(vehicleID),
		a.setStatus(status),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// Validate checks if the Assignment was properly constructed.
func (a *Assignment) Validate() error {
	if a == nil {
		return ErrAssignmentIsNotConstructed
	}
	return a.guard.Validate(ErrAssignmentIsNotConstructed)
}

// ID returns the assignment's unique identifier.
func (a *Assignment) ID() kernel.UUID {
	return a.id
}

// OrderID returns the identifier of the serviced order.
func (a *Assignment) OrderID() kernel.UUID {
	return a.orderID
}

// VehicleID returns the identifier of the dispatched vehicle.
func (a *Assignment) VehicleID() kernel.UUID {
	return a.vehicleID
}

// Status returns the dispatch sub-state.
func (a *Assignment) Status() Status {
	return a.status
}

// DispatchedAt returns the dispatch timestamp.
func (a *Assignment) DispatchedAt() time.Time {
	return a.dispatchedAt
}

// ArrivedAt returns the arrival timestamp, or nil if the vehicle has not arrived.
func (a *Assignment) ArrivedAt() *time.Time {
	return a.arrivedAt
}

// CompletedAt returns the completion/cancellation timestamp, or nil while active.
func (a *Assignment) CompletedAt() *time.Time {
	return a.completedAt
}

// IsActive reports whether the assignment is in a non-terminal sub-state.
func (a *Assignment) IsActive() bool {
	return a.status.IsActive()
}

// MarkArrived stamps the arrival time and moves the assignment to Arrived.
func (a *Assignment) MarkArrived() error {
	newStatus, err := a.status.Arrive()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	a.status = newStatus
	a.arrivedAt = &now
	return nil
}

// Start moves the assignment to InProgress when the repair work begins.
func (a *Assignment) Start() error {
	newStatus, err := a.status.Start()
	if err != nil {
		return err
	}
	a.status = newStatus
	return nil
}

// Complete finishes the assignment and stamps the completion time.
// Allowed from any active sub-state.
func (a *Assignment) Complete() error {
	newStatus, err := a.status.Complete()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	a.status = newStatus
	a.completedAt = &now
	return nil
}

// Cancel aborts the assignment and stamps the completion time.
// Allowed from any active sub-state.
func (a *Assignment) Cancel() error {
	newStatus, err := a.status.Cancel()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	a.status = newStatus
	a.completedAt = &now
	return nil
}

func (a *Assignment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Assignment) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}
	a.orderID = id
	return nil
}

func (a *Assignment) setVehicleID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("vehicleID", err)
	}
	a.vehicleID = id
	return nil
}

func (a *Assignment) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	a.status = status
	return nil
}
