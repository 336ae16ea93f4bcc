package commands

import (
	"errors"

	"rescue/internal/core/domain/model/kernel"
	"rescue/internal/pkg/guard"
)

var ErrMarkVehicleArrivedCommandIsNotConstructed = errors.New(
	"MarkVehicleArrivedCommand must be created via NewMarkVehicleArrivedCommand constructor",
)

// MarkVehicleArrivedCommand represents the dispatched vehicle reaching the
// scene.
type MarkVehicleArrivedCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   Actor

	guard guard.ConstructorGuard
}

// NewMarkVehicleArrivedCommand creates a command to record vehicle arrival.
func NewMarkVehicleArrivedCommand(orderID kernel.UUID, actor Actor) (MarkVehicleArrivedCommand, error) {
	cmd := MarkVehicleArrivedCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
	); err != nil {
		return MarkVehicleArrivedCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkVehicleArrivedCommand) Validate() error {
	return c.guard.Validate(ErrMarkVehicleArrivedCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being served.
func (c MarkVehicleArrivedCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the principal executing the command.
func (c MarkVehicleArrivedCommand) Actor() Actor {
	return c.actor
}

func (c *MarkVehicleArrivedCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *MarkVehicleArrivedCommand) setActor(actor Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}
