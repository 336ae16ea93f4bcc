package commands

import (
	"context"
)

// CompleteInspectionCommandHandler moves an order from RescueVehicleArrived
// to InspectionDone, after which the provider can name a final price.
type CompleteInspectionCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   Notifier
}

// NewCompleteInspectionCommandHandler creates a handler for inspection completion.
func NewCompleteInspectionCommandHandler(uowFactory OrderUoWFactory, notifier Notifier) CompleteInspectionCommandHandler {
	return CompleteInspectionCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the inspection completion command.
func (h CompleteInspectionCommandHandler) Handle(ctx context.Context, cmd CompleteInspectionCommand) error {
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

	if err = cmd.Actor().AuthorizeManager(aggregate, "completeInspection"); err != nil {
		return err
	}

	if err = aggregate.CompleteInspection(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Notify(ctx, aggregate.RequesterID(), "INSPECTION_DONE",
		"Inspection finished",
		"The inspection is finished; a price offer will follow.",
		aggregate.ID())

	return nil
}
