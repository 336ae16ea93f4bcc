package commands

import (
	"context"
)

// UpdatePriceCommandHandler moves an order from InspectionDone to
// PriceUpdated, setting the final price in the same step.
type UpdatePriceCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   Notifier
}

// NewUpdatePriceCommandHandler creates a handler for price updates.
func NewUpdatePriceCommandHandler(uowFactory OrderUoWFactory, notifier Notifier) UpdatePriceCommandHandler {
	return UpdatePriceCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the price update command.
func (h UpdatePriceCommandHandler) Handle(ctx context.Context, cmd UpdatePriceCommand) error {
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

	if err = cmd.Actor().AuthorizeManager(aggregate, "updatePrice"); err != nil {
		return err
	}

	if err = aggregate.UpdatePrice(cmd.Price(), cmd.Notes()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Notify(ctx, aggregate.RequesterID(), "PRICE_UPDATED",
		"Price offer ready",
		"The provider named a final price for your rescue order.",
		aggregate.ID())

	return nil
}
