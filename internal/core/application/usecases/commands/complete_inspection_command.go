package commands

import (
	"errors"

	"rescue/internal/core/domain/model/kernel"
	"rescue/internal/pkg/guard"
)

var ErrCompleteInspectionCommandIsNotConstructed = errors.New(
	"CompleteInspectionCommand must be created via NewCompleteInspectionCommand constructor",
)

// CompleteInspectionCommand represents the on-site inspection finishing.
type CompleteInspectionCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   Actor

	guard guard.ConstructorGuard
}

// NewCompleteInspectionCommand creates a command to record a finished inspection.
func NewCompleteInspectionCommand(orderID kernel.UUID, actor Actor) (CompleteInspectionCommand, error) {
	cmd := CompleteInspectionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
	); err != nil {
		return CompleteInspectionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteInspectionCommand) Validate() error {
	return c.guard.Validate(ErrCompleteInspectionCommandIsNotConstructed)
}

// OrderID returns the identifier of the inspected order.
func (c CompleteInspectionCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the principal executing the command.
func (c CompleteInspectionCommand) Actor() Actor {
	return c.actor
}

func (c *CompleteInspectionCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CompleteInspectionCommand) setActor(actor Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}
