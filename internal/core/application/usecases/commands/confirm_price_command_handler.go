package commands

import (
	"context"
)

// ConfirmPriceCommandHandler moves an order from PriceUpdated to
// PriceConfirmed. Only the order's requester may confirm.
type ConfirmPriceCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   Notifier
}

// NewConfirmPriceCommandHandler creates a handler for price confirmation.
func NewConfirmPriceCommandHandler(uowFactory OrderUoWFactory, notifier Notifier) ConfirmPriceCommandHandler {
	return ConfirmPriceCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the price confirmation command.
func (h ConfirmPriceCommandHandler) Handle(ctx context.Context, cmd ConfirmPriceCommand) error {
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

	if err = cmd.Actor().AuthorizeRequester(aggregate, "confirmPrice"); err != nil {
		return err
	}

	if err = aggregate.ConfirmPrice(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Notify(ctx, aggregate.CompanyID(), "PRICE_CONFIRMED",
		"Price confirmed",
		"The requester agreed to the offered price.",
		aggregate.ID())

	return nil
}
