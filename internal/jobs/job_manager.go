// Package jobs provides the scheduled background tasks of the rescue
// service, built on github.com/robfig/cron/v3. The only job today is the
// hourly invoice overdue sweep; JobManager keeps the start/stop surface
// stable as jobs are added.
package jobs

import (
	"fmt"
	"log/slog"

	"rescue/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	invoiceOverdueJob *InvoiceOverdueJob
}

// NewJobManager creates a job manager wired to the application handlers.
func NewJobManager(
	sweepOverdueHandler commands.SweepOverdueInvoicesCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		invoiceOverdueJob: NewInvoiceOverdueJob(sweepOverdueHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.invoiceOverdueJob.Start(); err != nil {
		return fmt.Errorf("failed to start invoice overdue job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.invoiceOverdueJob.Stop()
}
