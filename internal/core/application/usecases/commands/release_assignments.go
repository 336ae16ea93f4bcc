package commands

import (
	"context"

	"rescue/internal/core/domain/model/kernel"
	"rescue/internal/core/ports"
)

// releaseActiveAssignments closes every active assignment of an order and
// returns its vehicle to the available pool. The close mode distinguishes a
// normal completion from an abort. The operation is idempotent: an order
// without active assignments is a no-op.
//
// Must run inside the caller's transaction; vehicles are locked before
// release so a concurrent dispatch of the same vehicle serializes here.
func releaseActiveAssignments(
	ctx context.Context,
	assignmentRepo ports.AssignmentRepository,
	vehicleRepo ports.VehicleRepository,
	orderID kernel.UUID,
	completed bool,
) error {
	assignments, err := assignmentRepo.GetAllActiveByOrder(ctx, orderID)
	if err != nil {
		return err
	}

	for _, assignment := range assignments {
		if completed {
			err = assignment.Complete()
		} else {
			err = assignment.Cancel()
		}
		if err != nil {
			return err
		}

		if err = assignmentRepo.Update(ctx, assignment); err != nil {
			return err
		}

		veh, err := vehicleRepo.GetForUpdate(ctx, assignment.VehicleID())
		if err != nil {
			return err
		}

		if err = veh.Release(); err != nil {
			return err
		}

		if err = vehicleRepo.Update(ctx, veh); err != nil {
			return err
		}
	}

	return nil
}
