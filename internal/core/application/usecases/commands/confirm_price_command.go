package commands

import (
	"errors"

	"rescue/internal/core/domain/model/kernel"
	"rescue/internal/pkg/guard"
)

var ErrConfirmPriceCommandIsNotConstructed = errors.New(
	"ConfirmPriceCommand must be created via NewConfirmPriceCommand constructor",
)

// ConfirmPriceCommand represents the requester agreeing to the final price.
type ConfirmPriceCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   Actor

	guard guard.ConstructorGuard
}

// NewConfirmPriceCommand creates a command to confirm a price offer.
func NewConfirmPriceCommand(orderID kernel.UUID, actor Actor) (ConfirmPriceCommand, error) {
	cmd := ConfirmPriceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
	); err != nil {
		return ConfirmPriceCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmPriceCommand) Validate() error {
	return c.guard.Validate(ErrConfirmPriceCommandIsNotConstructed)
}

// OrderID returns the identifier of the order whose price is confirmed.
func (c ConfirmPriceCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the principal executing the command.
func (c ConfirmPriceCommand) Actor() Actor {
	return c.actor
}

func (c *ConfirmPriceCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *ConfirmPriceCommand) setActor(actor Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}
