package commands

import (
	"context"
)

// MarkInvoicePaidCommandHandler settles an order's invoice and moves the
// order from Invoiced to the terminal Paid state. The transition is driven
// by the external billing confirmation flow; the handler validates the
// precondition and records it.
type MarkInvoicePaidCommandHandler struct {
	uowFactory BillingUoWFactory
	notifier   Notifier
}

// NewMarkInvoicePaidCommandHandler creates a handler for payment confirmation.
func NewMarkInvoicePaidCommandHandler(uowFactory BillingUoWFactory, notifier Notifier) MarkInvoicePaidCommandHandler {
	return MarkInvoicePaidCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the payment confirmation command.
func (h MarkInvoicePaidCommandHandler) Handle(ctx context.Context, cmd MarkInvoicePaidCommand) error {
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
	invoiceRepo := uow.InvoiceRepository()

	aggregate, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = cmd.Actor().AuthorizeManager(aggregate, "markInvoicePaid"); err != nil {
		return err
	}

	if err = aggregate.MarkPaid(); err != nil {
		return err
	}

	inv, err := invoiceRepo.GetByOrder(ctx, aggregate.ID())
	if err != nil {
		return err
	}

	if err = inv.MarkPaid(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = invoiceRepo.Update(ctx, inv); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Notify(ctx, aggregate.RequesterID(), "INVOICE_PAID",
		"Payment received",
		"Your payment was received. Thank you.",
		aggregate.ID())

	return nil
}
