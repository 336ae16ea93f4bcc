package commands

import (
	"errors"

	"rescue/internal/pkg/guard"
)

var ErrSweepOverdueInvoicesCommandIsNotConstructed = errors.New(
	"SweepOverdueInvoicesCommand must be created via NewSweepOverdueInvoicesCommand constructor",
)

// SweepOverdueInvoicesCommand triggers the overdue sweep: every pending
// invoice whose due date has passed is marked overdue. A parameterless
// command driven by the scheduler.
type SweepOverdueInvoicesCommand struct {
	guard guard.ConstructorGuard
}

// NewSweepOverdueInvoicesCommand creates a new command to trigger the sweep.
func NewSweepOverdueInvoicesCommand() SweepOverdueInvoicesCommand {
	return SweepOverdueInvoicesCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *SweepOverdueInvoicesCommand) Validate() error {
	return c.guard.Validate(
		ErrSweepOverdueInvoicesCommandIsNotConstructed,
	)
}
