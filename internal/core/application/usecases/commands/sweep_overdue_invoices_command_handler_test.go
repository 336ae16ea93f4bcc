package commands_test

import (
	"testing"
	"time"

	"rescue/internal/core/application/usecases/commands"
	"rescue/internal/core/domain/model/invoice"
	"rescue/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func restorePendingInvoiceDue(t *testing.T, dueDate time.Time) *invoice.Invoice {
	t.Helper()
	amount := mustPrice(t, "180.00")
	issuedAt := dueDate.Add(-14 * 24 * time.Hour)
	inv, err := invoice.RestoreInvoice(
		kernel.NewUUID(), kernel.NewUUID(),
		invoice.FormatNumber(issuedAt, 1),
		amount, issuedAt, dueDate, invoice.Pending,
	)
	require.NoError(t, err)
	return inv
}

func TestSweepOverdueInvoicesCommandHandler_Handle_MarksAllOverdue(t *testing.T) {
	ctx := t.Context()
	pastDue := time.Now().UTC().Add(-time.Hour)
	first := restorePendingInvoiceDue(t, pastDue)
	second := restorePendingInvoiceDue(t, pastDue.Add(-48*time.Hour))

	invoiceRepo := new(MockInvoiceRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("InvoiceRepository").Return(invoiceRepo).Once(),
		invoiceRepo.On("GetAllPendingDueBefore", mock.Anything, mock.Anything).
			Return([]*invoice.Invoice{first, second}, nil).Once(),
		invoiceRepo.On("Update", mock.Anything, first).Return(nil).Once(),
		invoiceRepo.On("Update", mock.Anything, second).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBillingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSweepOverdueInvoicesCommandHandler(factory)
	cmd := commands.NewSweepOverdueInvoicesCommand()
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, invoice.Overdue, first.Status())
	assert.Equal(t, invoice.Overdue, second.Status())
	uow.AssertExpectations(t)
}

func TestSweepOverdueInvoicesCommandHandler_Handle_NothingPending(t *testing.T) {
	ctx := t.Context()

	invoiceRepo := new(MockInvoiceRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("InvoiceRepository").Return(invoiceRepo).Once()
	invoiceRepo.On("GetAllPendingDueBefore", mock.Anything, mock.Anything).
		Return([]*invoice.Invoice{}, nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockBillingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSweepOverdueInvoicesCommandHandler(factory)
	cmd := commands.NewSweepOverdueInvoicesCommand()
	require.NoError(t, h.Handle(ctx, cmd))
	uow.AssertExpectations(t)
}
