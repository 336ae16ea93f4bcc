package commands

import (
	"errors"

	"rescue/internal/core/domain/model/kernel"
	"rescue/internal/pkg/guard"
)

var ErrUpdatePriceCommandIsNotConstructed = errors.New(
	"UpdatePriceCommand must be created via NewUpdatePriceCommand constructor",
)

// UpdatePriceCommand represents the provider naming the final price after
// inspection. The price must be strictly positive; the notes may carry the
// inspection findings.
type UpdatePriceCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	price   kernel.Price
	notes   string
	actor   Actor

	guard guard.ConstructorGuard
}

// NewUpdatePriceCommand creates a command to set an order's final price.
func NewUpdatePriceCommand(orderID kernel.UUID, price kernel.Price, notes string, actor Actor) (UpdatePriceCommand, error) {
	cmd := UpdatePriceCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setPrice(price),
		cmd.setActor(actor),
	); err != nil {
		return UpdatePriceCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdatePriceCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePriceCommandIsNotConstructed)
}

// OrderID returns the identifier of the priced order.
func (c UpdatePriceCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Price returns the final price offer.
func (c UpdatePriceCommand) Price() kernel.Price {
	return c.price
}

// Notes returns the inspection findings attached to the offer.
func (c UpdatePriceCommand) Notes() string {
	return c.notes
}

// Actor returns the principal executing the command.
func (c UpdatePriceCommand) Actor() Actor {
	return c.actor
}

func (c *UpdatePriceCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *UpdatePriceCommand) setPrice(price kernel.Price) error {
	if err := price.Validate(); err != nil {
		return err
	}
	c.price = price
	return nil
}

func (c *UpdatePriceCommand) setActor(actor Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}
