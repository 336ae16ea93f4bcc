package commands

import (
	"errors"

	"rescue/internal/core/domain/model/kernel"
	"rescue/internal/pkg/guard"
)

var ErrRejectPriceCommandIsNotConstructed = errors.New(
	"RejectPriceCommand must be created via NewRejectPriceCommand constructor",
)

// RejectPriceCommand represents the requester declining the final price.
// Rejection is terminal for the order as priced; there is no re-offer path.
type RejectPriceCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   Actor

	guard guard.ConstructorGuard
}

// NewRejectPriceCommand creates a command to reject a price offer.
func NewRejectPriceCommand(orderID kernel.UUID, actor Actor) (RejectPriceCommand, error) {
	cmd := RejectPriceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
	); err != nil {
		return RejectPriceCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectPriceCommand) Validate() error {
	return c.guard.Validate(ErrRejectPriceCommandIsNotConstructed)
}

// OrderID returns the identifier of the order whose price is rejected.
func (c RejectPriceCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the principal executing the command.
func (c RejectPriceCommand) Actor() Actor {
	return c.actor
}

func (c *RejectPriceCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *RejectPriceCommand) setActor(actor Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}
