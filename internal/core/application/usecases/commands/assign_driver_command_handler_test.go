package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"parcel/internal/core/application/usecases/commands"
	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/order"
	"parcel/internal/pkg/errs"
)

func TestAssignDriverCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	pendingOrder := testOrder(t)
	freeDriver := testDriver(t)
	cmd, err := commands.NewAssignDriverCommand(pendingOrder.ID(), freeDriver.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		orderRepo.On("Get", ctx, pendingOrder.ID()).Return(pendingOrder, nil).Once(),
		driverRepo.On("Get", ctx, freeDriver.ID()).Return(freeDriver, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		driverRepo.On("Update", ctx, mock.AnythingOfType("*driver.Driver")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	clock := kernel.NewFixedClock(testNow.Add(time.Minute))
	handler := commands.NewAssignDriverCommandHandler(factory, clock)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.StatusAssigned, pendingOrder.Status())
	require.NotNil(t, pendingOrder.Driver())
	assert.True(t, pendingOrder.Driver().IsEqual(freeDriver.ID()))
	assert.False(t, freeDriver.IsAvailable())
	orderRepo.AssertExpectations(t)
	driverRepo.AssertExpectations(t)
}

func TestAssignDriverCommandHandler_Handle_BusyDriver(t *testing.T) {
	ctx := t.Context()
	pendingOrder := testOrder(t)
	busyDriver := testDriver(t)
	require.NoError(t, busyDriver.MarkBusy())
	cmd, err := commands.NewAssignDriverCommand(pendingOrder.ID(), busyDriver.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		orderRepo.On("Get", ctx, pendingOrder.ID()).Return(pendingOrder, nil).Once(),
		driverRepo.On("Get", ctx, busyDriver.ID()).Return(busyDriver, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignDriverCommandHandler(factory, kernel.NewFixedClock(testNow.Add(time.Minute)))
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestAssignDriverCommandHandler_Handle_OrderAlreadyAssigned(t *testing.T) {
	ctx := t.Context()
	firstDriver := testDriver(t)
	takenOrder := assignedOrder(t, firstDriver)
	secondDriver := testDriver(t)
	cmd, err := commands.NewAssignDriverCommand(takenOrder.ID(), secondDriver.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		orderRepo.On("Get", ctx, takenOrder.ID()).Return(takenOrder, nil).Once(),
		driverRepo.On("Get", ctx, secondDriver.ID()).Return(secondDriver, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignDriverCommandHandler(factory, kernel.NewFixedClock(testNow.Add(2*time.Minute)))
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.True(t, takenOrder.Driver().IsEqual(firstDriver.ID()))
	assert.True(t, secondDriver.IsAvailable())
}

func TestNewAssignDriverCommand_EmptyIDs(t *testing.T) {
	_, err := commands.NewAssignDriverCommand(kernel.UUID{}, kernel.NewUUID())
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewAssignDriverCommand(kernel.NewUUID(), kernel.UUID{})
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}
