package commands

import (
	"context"

	"rescue/internal/core/domain/model/order"
	"rescue/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// New orders start in Created status and wait for the provider organization
// to accept them.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   Notifier
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, notifier Notifier) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the order creation command. Only requesters can create
// orders; the actor becomes the order's requester.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if cmd.Actor().Role() != RoleRequester {
		return errs.NewUnauthorizedError(cmd.Actor().ID().String(), "createOrder")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := order.NewOrder(
		cmd.OrderID(),
		cmd.Actor().ID(),
		cmd.ServiceID(),
		cmd.CompanyID(),
		cmd.EstimatedPrice(),
		cmd.Notes(),
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Notify(ctx, aggregate.CompanyID(), "ORDER_CREATED",
		"New rescue order",
		"A new rescue order is waiting for acceptance.",
		aggregate.ID())

	return nil
}
