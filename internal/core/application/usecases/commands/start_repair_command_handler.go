package commands

import (
	"context"
)

// StartRepairCommandHandler moves an order from PriceConfirmed to InProgress
// and the active assignment from Arrived to InProgress.
type StartRepairCommandHandler struct {
	uowFactory DispatchUoWFactory
	notifier   Notifier
}

// NewStartRepairCommandHandler creates a handler for starting repairs.
func NewStartRepairCommandHandler(uowFactory DispatchUoWFactory, notifier Notifier) StartRepairCommandHandler {
	return StartRepairCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the start repair command.
func (h StartRepairCommandHandler) Handle(ctx context.Context, cmd StartRepairCommand) error {
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
	assignmentRepo := uow.AssignmentRepository()

	aggregate, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = cmd.Actor().AuthorizeManager(aggregate, "startRepair"); err != nil {
		return err
	}

	if err = aggregate.StartRepair(); err != nil {
		return err
	}

	assignment, err := assignmentRepo.GetActiveByOrder(ctx, aggregate.ID())
	if err != nil {
		return err
	}

	if err = assignment.Start(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = assignmentRepo.Update(ctx, assignment); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Notify(ctx, aggregate.RequesterID(), "REPAIR_STARTED",
		"Repair started",
		"The crew started working on your vehicle.",
		aggregate.ID())

	return nil
}
