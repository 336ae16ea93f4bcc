package commands

import (
	"context"
	"errors"
	"time"

	"rescue/internal/core/domain/model/invoice"
	"rescue/internal/core/domain/model/kernel"
	"rescue/internal/core/domain/model/order"
	"rescue/internal/core/ports"
	"rescue/internal/pkg/errs"
)

// CompleteRepairCommandHandler finishes an order's repair: the order moves
// through Completed to Invoiced, every active assignment completes, the
// vehicle returns to the available pool and the invoice is issued, all
// within one transaction.
type CompleteRepairCommandHandler struct {
	uowFactory UoWFactory
	notifier   Notifier
}

// NewCompleteRepairCommandHandler creates a handler for repair completion.
func NewCompleteRepairCommandHandler(uowFactory UoWFactory, notifier Notifier) CompleteRepairCommandHandler {
	return CompleteRepairCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the repair completion command. A second invoice for the
// same order is an invariant violation and fails the whole transition.
func (h CompleteRepairCommandHandler) Handle(ctx context.Context, cmd CompleteRepairCommand) error {
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

	if err = cmd.Actor().AuthorizeManager(aggregate, "completeRepair"); err != nil {
		return err
	}

	if err = aggregate.CompleteRepair(); err != nil {
		return err
	}

	if err = releaseActiveAssignments(ctx,
		uow.AssignmentRepository(), uow.VehicleRepository(),
		aggregate.ID(), true); err != nil {
		return err
	}

	if err = h.issueInvoice(ctx, uow.InvoiceRepository(), aggregate); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Notify(ctx, aggregate.RequesterID(), "REPAIR_COMPLETED",
		"Repair completed",
		"The repair is finished and your invoice is ready.",
		aggregate.ID())

	return nil
}

// issueInvoice generates the invoice for a completed order. The daily
// sequence is the count of invoices issued today plus one; a number
// conflict from a concurrent completion is retried once with the next
// value. A duplicate invoice for the order itself is never retried.
func (h CompleteRepairCommandHandler) issueInvoice(
	ctx context.Context,
	invoiceRepo ports.InvoiceRepository,
	aggregate *order.Order,
) error {
	finalPrice := aggregate.FinalPrice()
	if finalPrice == nil {
		return errs.NewInvariantViolationError("completed order has no final price")
	}

	count, err := invoiceRepo.CountIssuedOn(ctx, time.Now().UTC())
	if err != nil {
		return err
	}

	sequence := count + 1
	for attempt := 0; attempt < 2; attempt++ {
		inv, err := invoice.NewInvoice(kernel.NewUUID(), aggregate.ID(), *finalPrice, sequence)
		if err != nil {
			return err
		}

		err = invoiceRepo.Add(ctx, inv)
		if err == nil {
			return nil
		}
		if !errors.Is(err, ports.ErrInvoiceNumberConflict) {
			return err
		}
		sequence++
	}

	return ports.ErrInvoiceNumberConflict
}
