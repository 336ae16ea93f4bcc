package commands

import (
	"errors"

	"rescue/internal/core/domain/model/kernel"
	"rescue/internal/pkg/guard"
)

var ErrAcceptOrderCommandIsNotConstructed = errors.New(
	"AcceptOrderCommand must be created via NewAcceptOrderCommand constructor",
)

// AcceptOrderCommand represents a provider organization accepting a newly
// created rescue order.
type AcceptOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   Actor

	guard guard.ConstructorGuard
}

// NewAcceptOrderCommand creates a command to accept an order.
func NewAcceptOrderCommand(orderID kernel.UUID, actor Actor) (AcceptOrderCommand, error) {
	cmd := AcceptOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
	); err != nil {
		return AcceptOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptOrderCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to accept.
func (c AcceptOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the principal executing the command.
func (c AcceptOrderCommand) Actor() Actor {
	return c.actor
}

func (c *AcceptOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *AcceptOrderCommand) setActor(actor Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}
