package commands_test

import (
	"testing"

	"rescue/internal/core/application/usecases/commands"
	"rescue/internal/core/domain/model/kernel"
	"rescue/internal/core/domain/model/order"
	"rescue/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCompleteInspectionCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	companyID := kernel.NewUUID()
	aggregate := restoreOrderIn(t, order.RescueVehicleArrived, kernel.NewUUID(), companyID, nil)
	cmd, err := commands.NewCompleteInspectionCommand(aggregate.ID(), newManagerActor(t, companyID))
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetForUpdate", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteInspectionCommandHandler(factory, commands.NewNotifier(nil, nil))
	require.NoError(t, h.Handle(ctx, cmd))
	assert.Equal(t, order.InspectionDone, aggregate.Status())
	uow.AssertExpectations(t)
}

func TestCompleteInspectionCommandHandler_Handle_InvalidState(t *testing.T) {
	ctx := t.Context()
	companyID := kernel.NewUUID()
	aggregate := restoreOrderIn(t, order.Created, kernel.NewUUID(), companyID, nil)
	cmd, err := commands.NewCompleteInspectionCommand(aggregate.ID(), newManagerActor(t, companyID))
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("GetForUpdate", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteInspectionCommandHandler(factory, commands.NewNotifier(nil, nil))
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInvalidState)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
