package commands

import (
	"context"
	"time"
)

// SweepOverdueInvoicesCommandHandler marks every pending invoice whose due
// date has passed as overdue. The sweep runs in a single transaction; the
// next scheduled run retries anything a failed sweep left pending.
type SweepOverdueInvoicesCommandHandler struct {
	uowFactory BillingUoWFactory
}

// NewSweepOverdueInvoicesCommandHandler creates a handler for the overdue sweep.
func NewSweepOverdueInvoicesCommandHandler(uowFactory BillingUoWFactory) SweepOverdueInvoicesCommandHandler {
	return SweepOverdueInvoicesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the sweep command.
func (h SweepOverdueInvoicesCommandHandler) Handle(ctx context.Context, cmd SweepOverdueInvoicesCommand) error {
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

	invoiceRepo := uow.InvoiceRepository()
	now := time.Now().UTC()

	overdue, err := invoiceRepo.GetAllPendingDueBefore(ctx, now)
	if err != nil {
		return err
	}

	for _, inv := range overdue {
		if err = inv.MarkOverdue(now); err != nil {
			return err
		}

		if err = invoiceRepo.Update(ctx, inv); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
