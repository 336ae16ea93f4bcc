package commands

import (
	"context"
)

// AcceptOrderCommandHandler moves an order from Created to AcceptedByCompany.
// Only a manager of the order's provider organization may accept it.
// Acceptance opens the conversation channel between the requester and the
// provider, then notifies the requester; both run after commit.
type AcceptOrderCommandHandler struct {
	uowFactory    OrderUoWFactory
	notifier      Notifier
	conversations ConversationOpener
}

// NewAcceptOrderCommandHandler creates a handler for order acceptance.
func NewAcceptOrderCommandHandler(
	uowFactory OrderUoWFactory,
	notifier Notifier,
	conversations ConversationOpener,
) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory:    uowFactory,
		notifier:      notifier,
		conversations: conversations,
	}
}

// Handle processes the acceptance command. The order row is locked for the
// duration of the transaction so concurrent transitions on the same order
// serialize.
func (h AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = cmd.Actor().AuthorizeManager(aggregate, "acceptOrder"); err != nil {
		return err
	}

	if err = aggregate.Accept(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.conversations.Open(ctx, aggregate.ID(), aggregate.RequesterID(), aggregate.CompanyID())
	h.notifier.Notify(ctx, aggregate.RequesterID(), "ORDER_ACCEPTED",
		"Order accepted",
		"Your rescue order was accepted by the provider.",
		aggregate.ID())

	return nil
}
