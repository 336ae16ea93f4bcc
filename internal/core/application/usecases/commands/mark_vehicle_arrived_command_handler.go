package commands

import (
	"context"
)

// MarkVehicleArrivedCommandHandler moves an order to RescueVehicleArrived
// and stamps the arrival time on the active assignment.
type MarkVehicleArrivedCommandHandler struct {
	uowFactory DispatchUoWFactory
	notifier   Notifier
}

// NewMarkVehicleArrivedCommandHandler creates a handler for vehicle arrival.
func NewMarkVehicleArrivedCommandHandler(uowFactory DispatchUoWFactory, notifier Notifier) MarkVehicleArrivedCommandHandler {
	return MarkVehicleArrivedCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the arrival command. The order state and the assignment
// sub-state move together or not at all.
func (h MarkVehicleArrivedCommandHandler) Handle(ctx context.Context, cmd MarkVehicleArrivedCommand) error {
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

	if err = cmd.Actor().AuthorizeManager(aggregate, "markVehicleArrived"); err != nil {
		return err
	}

	if err = aggregate.VehicleArrived(); err != nil {
		return err
	}

	assignment, err := assignmentRepo.GetActiveByOrder(ctx, aggregate.ID())
	if err != nil {
		return err
	}

	if err = assignment.MarkArrived(); err != nil {
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

	h.notifier.Notify(ctx, aggregate.RequesterID(), "VEHICLE_ARRIVED",
		"Rescue vehicle arrived",
		"The rescue vehicle has arrived at your location.",
		aggregate.ID())

	return nil
}
