package commands

import (
	"errors"

	"rescue/internal/core/domain/model/kernel"
	"rescue/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to register a new rescue order.
// The actor becomes the order's requester; the service and provider
// organization are chosen by the requester up front.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, serviceID, companyID, nil, "flat tire on A7", actor)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, notifier)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	serviceID      kernel.UUID
	companyID      kernel.UUID
	estimatedPrice *kernel.Price
	notes          string
	actor          Actor

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new rescue order.
// The estimated price is optional; when present it must be positive.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	serviceID kernel.UUID,
	companyID kernel.UUID,
	estimatedPrice *kernel.Price,
	notes string,
	actor Actor,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setServiceID(serviceID),
		orderCommand.setCompanyID(companyID),
		orderCommand.setEstimatedPrice(estimatedPrice),
		orderCommand.setActor(actor),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ServiceID returns the identifier of the offered service.
func (c CreateOrderCommand) ServiceID() kernel.UUID {
	return c.serviceID
}

// CompanyID returns the identifier of the provider organization.
func (c CreateOrderCommand) CompanyID() kernel.UUID {
	return c.companyID
}

// EstimatedPrice returns the optional up-front price estimate.
func (c CreateOrderCommand) EstimatedPrice() *kernel.Price {
	return c.estimatedPrice
}

// Notes returns the free-text description of the breakdown.
func (c CreateOrderCommand) Notes() string {
	return c.notes
}

// Actor returns the principal executing the command.
func (c CreateOrderCommand) Actor() Actor {
	return c.actor
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setServiceID(serviceID kernel.UUID) error {
	if err := serviceID.Validate(); err != nil {
		return err
	}
	c.serviceID = serviceID
	return nil
}

func (c *CreateOrderCommand) setCompanyID(companyID kernel.UUID) error {
	if err := companyID.Validate(); err != nil {
		return err
	}
	c.companyID = companyID
	return nil
}

func (c *CreateOrderCommand) setEstimatedPrice(price *kernel.Price) error {
	if price == nil {
		return nil
	}
	if err := price.Validate(); err != nil {
		return err
	}
	c.estimatedPrice = price
	return nil
}

func (c *CreateOrderCommand) setActor(actor Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}
