package commands

import (
	"errors"

	"rescue/internal/core/domain/model/kernel"
	"rescue/internal/pkg/guard"
)

var ErrMarkInvoicePaidCommandIsNotConstructed = errors.New(
	"MarkInvoicePaidCommand must be created via NewMarkInvoicePaidCommand constructor",
)

// MarkInvoicePaidCommand represents the billing confirmation arriving from
// the payment flow. The order accepts the external Invoiced to Paid
// transition and the invoice settles in the same step.
type MarkInvoicePaidCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   Actor

	guard guard.ConstructorGuard
}

// NewMarkInvoicePaidCommand creates a command to settle an order's invoice.
func NewMarkInvoicePaidCommand(orderID kernel.UUID, actor Actor) (MarkInvoicePaidCommand, error) {
	cmd := MarkInvoicePaidCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
	); err != nil {
		return MarkInvoicePaidCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkInvoicePaidCommand) Validate() error {
	return c.guard.Validate(ErrMarkInvoicePaidCommandIsNotConstructed)
}

// OrderID returns the identifier of the paid order.
func (c MarkInvoicePaidCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the principal executing the command.
func (c MarkInvoicePaidCommand) Actor() Actor {
	return c.actor
}

func (c *MarkInvoicePaidCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *MarkInvoicePaidCommand) setActor(actor Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}
