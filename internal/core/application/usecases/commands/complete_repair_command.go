package commands

import (
	"errors"

	"rescue/internal/core/domain/model/kernel"
	"rescue/internal/pkg/guard"
)

var ErrCompleteRepairCommandIsNotConstructed = errors.New(
	"CompleteRepairCommand must be created via NewCompleteRepairCommand constructor",
)

// CompleteRepairCommand represents the crew finishing the repair. Completion
// closes the assignment, frees the vehicle and issues the invoice in one
// atomic step; the order lands on Invoiced.
type CompleteRepairCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   Actor

	guard guard.ConstructorGuard
}

// NewCompleteRepairCommand creates a command to finish the repair work.
func NewCompleteRepairCommand(orderID kernel.UUID, actor Actor) (CompleteRepairCommand, error) {
	cmd := CompleteRepairCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
	); err != nil {
		return CompleteRepairCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteRepairCommand) Validate() error {
	return c.guard.Validate(ErrCompleteRepairCommandIsNotConstructed)
}

// OrderID returns the identifier of the repaired order.
func (c CompleteRepairCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the principal executing the command.
func (c CompleteRepairCommand) Actor() Actor {
	return c.actor
}

func (c *CompleteRepairCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CompleteRepairCommand) setActor(actor Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}
