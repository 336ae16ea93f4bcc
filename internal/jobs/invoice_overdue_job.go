package jobs

import (
	"context"
	"log/slog"

	"rescue/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// InvoiceOverdueJob runs the overdue sweep on a schedule, marking pending
// invoices whose payment term expired.
type InvoiceOverdueJob struct {
	handler commands.SweepOverdueInvoicesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewInvoiceOverdueJob creates a new job for the overdue sweep.
func NewInvoiceOverdueJob(handler commands.SweepOverdueInvoicesCommandHandler, logger *slog.Logger) *InvoiceOverdueJob {
	return &InvoiceOverdueJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "invoice_overdue_job"),
	}
}

// Start begins the overdue sweep, running at the top of every hour.
func (j *InvoiceOverdueJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewSweepOverdueInvoicesCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Invoice overdue sweep failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Invoice overdue job started (running hourly)")
	return nil
}

// Stop stops the overdue sweep job.
func (j *InvoiceOverdueJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Invoice overdue job stopped")
}
