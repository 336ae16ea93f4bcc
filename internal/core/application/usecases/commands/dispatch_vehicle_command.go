package commands

import (
	"errors"

	"rescue/internal/core/domain/model/kernel"
	"rescue/internal/pkg/errs"
	"rescue/internal/pkg/guard"
)

var ErrDispatchVehicleCommandIsNotConstructed = errors.New(
	"DispatchVehicleCommand must be created via NewDispatchVehicleCommand constructor",
)

// DispatchVehicleCommand represents sending a rescue vehicle to the scene
// of an accepted order.
type DispatchVehicleCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	vehicleID kernel.UUID
	actor     Actor

	guard guard.ConstructorGuard
}

// NewDispatchVehicleCommand creates a command to dispatch a vehicle to an order.
func NewDispatchVehicleCommand(orderID, vehicleID kernel.UUID, actor Actor) (DispatchVehicleCommand, error) {
	cmd := DispatchVehicleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setVehicleID(vehicleID),
		cmd.setActor(actor),
	); err != nil {
		return DispatchVehicleCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DispatchVehicleCommand) Validate() error {
	return c.guard.Validate(ErrDispatchVehicleCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being served.
func (c DispatchVehicleCommand) OrderID() kernel.UUID {
	return c.orderID
}

// VehicleID returns the identifier of the vehicle to dispatch.
func (c DispatchVehicleCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

// Actor returns the principal executing the command.
func (c DispatchVehicleCommand) Actor() Actor {
	return c.actor
}

func (c *DispatchVehicleCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *DispatchVehicleCommand) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("vehicleID", err)
	}
	c.vehicleID = vehicleID
	return nil
}

func (c *DispatchVehicleCommand) setActor(actor Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}
