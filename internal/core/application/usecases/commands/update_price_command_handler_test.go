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

func TestNewUpdatePriceCommand_RejectsInvalidPrice(t *testing.T) {
	var zero kernel.Price
	_, err := commands.NewUpdatePriceCommand(
		kernel.NewUUID(), zero, "", newManagerActor(t, kernel.NewUUID()))
	require.Error(t, err)
}

func TestUpdatePriceCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	companyID := kernel.NewUUID()
	aggregate := restoreOrderIn(t, order.InspectionDone, kernel.NewUUID(), companyID, nil)
	price := mustPrice(t, "350.00")
	cmd, err := commands.NewUpdatePriceCommand(
		aggregate.ID(), price, "needs a new alternator", newManagerActor(t, companyID))
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

	h := commands.NewUpdatePriceCommandHandler(factory, commands.NewNotifier(nil, nil))
	require.NoError(t, h.Handle(ctx, cmd))
	assert.Equal(t, order.PriceUpdated, aggregate.Status())
	require.NotNil(t, aggregate.FinalPrice())
	assert.True(t, price.IsEqual(*aggregate.FinalPrice()))
	assert.Equal(t, "needs a new alternator", aggregate.Notes())
	uow.AssertExpectations(t)
}

func TestUpdatePriceCommandHandler_Handle_BeforeInspection(t *testing.T) {
	ctx := t.Context()
	companyID := kernel.NewUUID()
	aggregate := restoreOrderIn(t, order.RescueVehicleArrived, kernel.NewUUID(), companyID, nil)
	cmd, err := commands.NewUpdatePriceCommand(
		aggregate.ID(), mustPrice(t, "100"), "", newManagerActor(t, companyID))
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("GetForUpdate", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdatePriceCommandHandler(factory, commands.NewNotifier(nil, nil))
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInvalidState)
	assert.Nil(t, aggregate.FinalPrice())
}
