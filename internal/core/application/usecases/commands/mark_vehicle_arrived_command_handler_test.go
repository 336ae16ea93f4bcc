package commands_test

import (
	"testing"

	"rescue/internal/core/application/usecases/commands"
	"rescue/internal/core/domain/model/dispatch"
	"rescue/internal/core/domain/model/kernel"
	"rescue/internal/core/domain/model/order"
	"rescue/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMarkVehicleArrivedCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	companyID := kernel.NewUUID()
	aggregate := restoreOrderIn(t, order.RescueVehicleDispatched, kernel.NewUUID(), companyID, nil)
	assignment := newTestAssignmentFor(t, aggregate.ID())
	cmd, err := commands.NewMarkVehicleArrivedCommand(aggregate.ID(), newManagerActor(t, companyID))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	assignmentRepo := new(MockAssignmentRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("AssignmentRepository").Return(assignmentRepo).Once(),
		orderRepo.On("GetForUpdate", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		assignmentRepo.On("GetActiveByOrder", mock.Anything, aggregate.ID()).Return(assignment, nil).Once(),
		orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		assignmentRepo.On("Update", mock.Anything, assignment).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkVehicleArrivedCommandHandler(factory, commands.NewNotifier(nil, nil))
	require.NoError(t, h.Handle(ctx, cmd))
	assert.Equal(t, order.RescueVehicleArrived, aggregate.Status())
	assert.Equal(t, dispatch.Arrived, assignment.Status())
	assert.NotNil(t, assignment.ArrivedAt())
	uow.AssertExpectations(t)
}

func TestMarkVehicleArrivedCommandHandler_Handle_NotDispatched(t *testing.T) {
	ctx := t.Context()
	companyID := kernel.NewUUID()
	aggregate := restoreOrderIn(t, order.AcceptedByCompany, kernel.NewUUID(), companyID, nil)
	cmd, err := commands.NewMarkVehicleArrivedCommand(aggregate.ID(), newManagerActor(t, companyID))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	assignmentRepo := new(MockAssignmentRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("AssignmentRepository").Return(assignmentRepo).Once()
	orderRepo.On("GetForUpdate", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkVehicleArrivedCommandHandler(factory, commands.NewNotifier(nil, nil))
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInvalidState)
	assignmentRepo.AssertNotCalled(t, "GetActiveByOrder", mock.Anything, mock.Anything)
}
