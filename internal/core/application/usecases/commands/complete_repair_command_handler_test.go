package commands_test

import (
	"testing"

	"rescue/internal/core/application/usecases/commands"
	"rescue/internal/core/domain/model/dispatch"
	"rescue/internal/core/domain/model/invoice"
	"rescue/internal/core/domain/model/kernel"
	"rescue/internal/core/domain/model/order"
	"rescue/internal/core/domain/model/vehicle"
	"rescue/internal/core/ports"
	"rescue/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func completeRepairFixture(t *testing.T) (*order.Order, *vehicle.Vehicle, *dispatch.Assignment, commands.CompleteRepairCommand) {
	t.Helper()
	companyID := kernel.NewUUID()
	price := mustPrice(t, "350.00")
	aggregate := restoreOrderIn(t, order.InProgress, kernel.NewUUID(), companyID, &price)

	veh, err := vehicle.RestoreVehicle(kernel.NewUUID(), companyID, "RSQ-003", vehicle.OnDuty)
	require.NoError(t, err)
	assignment, err := dispatch.NewAssignment(kernel.NewUUID(), aggregate.ID(), veh.ID())
	require.NoError(t, err)
	require.NoError(t, assignment.MarkArrived())
	require.NoError(t, assignment.Start())

	cmd, err := commands.NewCompleteRepairCommand(aggregate.ID(), newManagerActor(t, companyID))
	require.NoError(t, err)
	return aggregate, veh, assignment, cmd
}

func TestCompleteRepairCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate, veh, assignment, cmd := completeRepairFixture(t)

	orderRepo := new(MockOrderRepository)
	vehicleRepo := new(MockVehicleRepository)
	assignmentRepo := new(MockAssignmentRepository)
	invoiceRepo := new(MockInvoiceRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("AssignmentRepository").Return(assignmentRepo).Once(),
		uow.On("VehicleRepository").Return(vehicleRepo).Once(),
		assignmentRepo.On("GetAllActiveByOrder", mock.Anything, aggregate.ID()).
			Return([]*dispatch.Assignment{assignment}, nil).Once(),
		assignmentRepo.On("Update", mock.Anything, assignment).Return(nil).Once(),
		vehicleRepo.On("GetForUpdate", mock.Anything, veh.ID()).Return(veh, nil).Once(),
		vehicleRepo.On("Update", mock.Anything, veh).Return(nil).Once(),
		uow.On("InvoiceRepository").Return(invoiceRepo).Once(),
		invoiceRepo.On("CountIssuedOn", mock.Anything, mock.AnythingOfType("time.Time")).Return(4, nil).Once(),
		invoiceRepo.On("Add", mock.Anything, mock.AnythingOfType("*invoice.Invoice")).Return(nil).Once(),
		orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteRepairCommandHandler(factory, commands.NewNotifier(nil, nil))
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.Invoiced, aggregate.Status())
	assert.Equal(t, dispatch.Completed, assignment.Status())
	assert.Equal(t, vehicle.Available, veh.Status())

	issued := invoiceRepo.Calls[1].Arguments.Get(1).(*invoice.Invoice)
	assert.Equal(t, invoice.Pending, issued.Status())
	assert.True(t, aggregate.FinalPrice().IsEqual(issued.Amount()))
	assert.Contains(t, issued.Number(), "-0005")
	uow.AssertExpectations(t)
}

func TestCompleteRepairCommandHandler_Handle_NumberConflictRetriesOnce(t *testing.T) {
	ctx := t.Context()
	aggregate, veh, assignment, cmd := completeRepairFixture(t)

	orderRepo := new(MockOrderRepository)
	vehicleRepo := new(MockVehicleRepository)
	assignmentRepo := new(MockAssignmentRepository)
	invoiceRepo := new(MockInvoiceRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("AssignmentRepository").Return(assignmentRepo).Once()
	uow.On("VehicleRepository").Return(vehicleRepo).Once()
	uow.On("InvoiceRepository").Return(invoiceRepo).Once()
	orderRepo.On("GetForUpdate", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
	assignmentRepo.On("GetAllActiveByOrder", mock.Anything, aggregate.ID()).
		Return([]*dispatch.Assignment{assignment}, nil).Once()
	assignmentRepo.On("Update", mock.Anything, assignment).Return(nil).Once()
	vehicleRepo.On("GetForUpdate", mock.Anything, veh.ID()).Return(veh, nil).Once()
	vehicleRepo.On("Update", mock.Anything, veh).Return(nil).Once()
	invoiceRepo.On("CountIssuedOn", mock.Anything, mock.AnythingOfType("time.Time")).Return(0, nil).Once()
	invoiceRepo.On("Add", mock.Anything, mock.AnythingOfType("*invoice.Invoice")).
		Return(ports.ErrInvoiceNumberConflict).Once()
	invoiceRepo.On("Add", mock.Anything, mock.AnythingOfType("*invoice.Invoice")).Return(nil).Once()
	orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteRepairCommandHandler(factory, commands.NewNotifier(nil, nil))
	require.NoError(t, h.Handle(ctx, cmd))

	second := invoiceRepo.Calls[2].Arguments.Get(1).(*invoice.Invoice)
	assert.Contains(t, second.Number(), "-0002")
	invoiceRepo.AssertExpectations(t)
}

func TestCompleteRepairCommandHandler_Handle_DuplicateInvoiceFailsTransition(t *testing.T) {
	ctx := t.Context()
	aggregate, veh, assignment, cmd := completeRepairFixture(t)

	orderRepo := new(MockOrderRepository)
	vehicleRepo := new(MockVehicleRepository)
	assignmentRepo := new(MockAssignmentRepository)
	invoiceRepo := new(MockInvoiceRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("AssignmentRepository").Return(assignmentRepo).Once()
	uow.On("VehicleRepository").Return(vehicleRepo).Once()
	uow.On("InvoiceRepository").Return(invoiceRepo).Once()
	orderRepo.On("GetForUpdate", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
	assignmentRepo.On("GetAllActiveByOrder", mock.Anything, aggregate.ID()).
		Return([]*dispatch.Assignment{assignment}, nil).Once()
	assignmentRepo.On("Update", mock.Anything, assignment).Return(nil).Once()
	vehicleRepo.On("GetForUpdate", mock.Anything, veh.ID()).Return(veh, nil).Once()
	vehicleRepo.On("Update", mock.Anything, veh).Return(nil).Once()
	invoiceRepo.On("CountIssuedOn", mock.Anything, mock.AnythingOfType("time.Time")).Return(0, nil).Once()
	invoiceRepo.On("Add", mock.Anything, mock.AnythingOfType("*invoice.Invoice")).
		Return(errs.NewInvariantViolationError("order already invoiced")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteRepairCommandHandler(factory, commands.NewNotifier(nil, nil))
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInvariantViolation)
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
