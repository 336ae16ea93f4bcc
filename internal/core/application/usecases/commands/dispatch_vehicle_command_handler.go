package commands

import (
	"context"
	"errors"

	"rescue/internal/core/domain/model/dispatch"
	"rescue/internal/core/domain/model/kernel"
	"rescue/internal/pkg/errs"
)

// DispatchVehicleCommandHandler moves an accepted order to
// RescueVehicleDispatched: the chosen vehicle goes on duty and a new
// assignment is opened in the dispatch ledger.
//
// The order and the vehicle are both locked for the duration of the
// transaction, so two managers dispatching the same vehicle to different
// orders serialize, and the loser sees it already on duty.
type DispatchVehicleCommandHandler struct {
	uowFactory DispatchUoWFactory
	notifier   Notifier
}

// NewDispatchVehicleCommandHandler creates a handler for vehicle dispatch.
func NewDispatchVehicleCommandHandler(uowFactory DispatchUoWFactory, notifier Notifier) DispatchVehicleCommandHandler {
	return DispatchVehicleCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the dispatch command. Rejects vehicles that belong to a
// different organization, vehicles already on duty, and orders that already
// have an active assignment.
func (h DispatchVehicleCommandHandler) Handle(ctx context.Context, cmd DispatchVehicleCommand) error {
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
	vehicleRepo := uow.VehicleRepository()
	assignmentRepo := uow.AssignmentRepository()

	aggregate, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = cmd.Actor().AuthorizeManager(aggregate, "dispatchVehicle"); err != nil {
		return err
	}

	if err = aggregate.DispatchVehicle(); err != nil {
		return err
	}

	_, err = assignmentRepo.GetActiveByOrder(ctx, aggregate.ID())
	if err == nil {
		return errs.NewInvariantViolationError(
			"order already has an active dispatch assignment")
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	veh, err := vehicleRepo.GetForUpdate(ctx, cmd.VehicleID())
	if err != nil {
		return err
	}

	if !veh.CompanyID().IsEqual(aggregate.CompanyID()) {
		return errs.NewUnauthorizedError(cmd.Actor().ID().String(), "dispatchVehicle")
	}

	if err = veh.MarkOnDuty(); err != nil {
		return err
	}

	assignment, err := dispatch.NewAssignment(kernel.NewUUID(), aggregate.ID(), veh.ID())
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = vehicleRepo.Update(ctx, veh); err != nil {
		return err
	}

	if err = assignmentRepo.Add(ctx, assignment); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Notify(ctx, aggregate.RequesterID(), "VEHICLE_DISPATCHED",
		"Rescue vehicle on the way",
		"A rescue vehicle was dispatched to your location.",
		aggregate.ID())

	return nil
}
