package commands

import (
	"errors"

	"rescue/internal/core/domain/model/kernel"
	"rescue/internal/pkg/guard"
)

var ErrStartRepairCommandIsNotConstructed = errors.New(
	"StartRepairCommand must be created via NewStartRepairCommand constructor",
)

// StartRepairCommand represents the crew beginning the repair after the
// price was confirmed.
type StartRepairCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   Actor

	guard guard.ConstructorGuard
}

// NewStartRepairCommand creates a command to start the repair work.
func NewStartRepairCommand(orderID kernel.UUID, actor Actor) (StartRepairCommand, error) {
	cmd := StartRepairCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
	); err != nil {
		return StartRepairCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StartRepairCommand) Validate() error {
	return c.guard.Validate(ErrStartRepairCommandIsNotConstructed)
}

// OrderID returns the identifier of the order under repair.
func (c StartRepairCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the principal executing the command.
func (c StartRepairCommand) Actor() Actor {
	return c.actor
}

func (c *StartRepairCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *StartRepairCommand) setActor(actor Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}
