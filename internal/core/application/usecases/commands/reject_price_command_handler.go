package commands

import (
	"context"
)

// RejectPriceCommandHandler moves an order from PriceUpdated to the terminal
// RejectedByUser state and releases every vehicle still in the field.
type RejectPriceCommandHandler struct {
	uowFactory DispatchUoWFactory
	notifier   Notifier
}

// NewRejectPriceCommandHandler creates a handler for price rejection.
func NewRejectPriceCommandHandler(uowFactory DispatchUoWFactory, notifier Notifier) RejectPriceCommandHandler {
	return RejectPriceCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the price rejection command. The order transition and the
// assignment/vehicle release commit atomically.
func (h RejectPriceCommandHandler) Handle(ctx context.Context, cmd RejectPriceCommand) error {
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

	if err = cmd.Actor().AuthorizeRequester(aggregate, "rejectPrice"); err != nil {
		return err
	}

	if err = aggregate.RejectPrice(); err != nil {
		return err
	}

	if err = releaseActiveAssignments(ctx,
		uow.AssignmentRepository(), uow.VehicleRepository(),
		aggregate.ID(), false); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Notify(ctx, aggregate.CompanyID(), "PRICE_REJECTED",
		"Price rejected",
		"The requester declined the offered price.",
		aggregate.ID())

	return nil
}
