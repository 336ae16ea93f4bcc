package commands_test

import (
	"testing"

	"rescue/internal/core/application/usecases/commands"
	"rescue/internal/core/domain/model/dispatch"
	"rescue/internal/core/domain/model/kernel"
	"rescue/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStartRepairCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	companyID := kernel.NewUUID()
	price := mustPrice(t, "350.00")
	aggregate := restoreOrderIn(t, order.PriceConfirmed, kernel.NewUUID(), companyID, &price)
	assignment := newTestAssignmentFor(t, aggregate.ID())
	require.NoError(t, assignment.MarkArrived())
	cmd, err := commands.NewStartRepairCommand(aggregate.ID(), newManagerActor(t, companyID))
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

	h := commands.NewStartRepairCommandHandler(factory, commands.NewNotifier(nil, nil))
	require.NoError(t, h.Handle(ctx, cmd))
	assert.Equal(t, order.InProgress, aggregate.Status())
	assert.Equal(t, dispatch.InProgress, assignment.Status())
	uow.AssertExpectations(t)
}
