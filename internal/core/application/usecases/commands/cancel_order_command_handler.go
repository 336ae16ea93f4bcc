package commands

import (
	"context"
)

// CancelOrderCommandHandler aborts an order that has not reached the repair
// phase. All active assignments are cancelled and their vehicles released
// in the same transaction; the release is a no-op when nothing was
// dispatched yet.
type CancelOrderCommandHandler struct {
	uowFactory DispatchUoWFactory
	notifier   Notifier
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory DispatchUoWFactory, notifier Notifier) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the cancellation command. The requester cancels their own
// order; a manager cancels on behalf of the provider organization.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	byCompany := cmd.Actor().Role() == RoleManager
	if byCompany {
		err = cmd.Actor().AuthorizeManager(aggregate, "cancelOrder")
	} else {
		err = cmd.Actor().AuthorizeRequester(aggregate, "cancelOrder")
	}
	if err != nil {
		return err
	}

	if err = aggregate.Cancel(byCompany); err != nil {
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

	if byCompany {
		h.notifier.Notify(ctx, aggregate.RequesterID(), "ORDER_CANCELLED",
			"Order cancelled",
			"The provider cancelled your rescue order.",
			aggregate.ID())
	} else {
		h.notifier.Notify(ctx, aggregate.CompanyID(), "ORDER_CANCELLED",
			"Order cancelled",
			"The requester cancelled the rescue order.",
			aggregate.ID())
	}

	return nil
}
