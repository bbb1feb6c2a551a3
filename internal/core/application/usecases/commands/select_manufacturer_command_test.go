package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/errs"
)

func TestSelectManufacturerCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := newStoredOrder(t, order.PaymentReceived)
	manufacturerID := kernel.NewUUID()
	cmd, err := commands.NewSelectManufacturerCommand(aggregate.ID(), manufacturerID)
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	orderRepo := new(MockOrderRepository)
	notifRepo := new(MockNotificationRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("ExistsWithRole", mock.Anything, manufacturerID, kernel.RoleManufacturer).Return(true, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		orderRepo.On("Update", mock.Anything, aggregate, order.PaymentReceived, order.RejectionActive).Return(nil).Once(),
		uow.On("NotificationRepository").Return(notifRepo).Once(),
		notifRepo.On("Add", mock.Anything, mock.AnythingOfType("[]*notification.Notification")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSelectManufacturerCommandHandler(factory, order.DefaultProductionSchedule(), nil)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.ManufacturerSelected, aggregate.Status())
	require.NotNil(t, aggregate.ManufacturerID())
	assert.True(t, aggregate.ManufacturerID().IsEqual(manufacturerID))
	require.NotNil(t, aggregate.ProductionStartDate())
	userRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSelectManufacturerCommandHandler_Handle_UnknownManufacturer(t *testing.T) {
	ctx := t.Context()
	manufacturerID := kernel.NewUUID()
	cmd, err := commands.NewSelectManufacturerCommand(kernel.NewUUID(), manufacturerID)
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("ExistsWithRole", mock.Anything, manufacturerID, kernel.RoleManufacturer).Return(false, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSelectManufacturerCommandHandler(factory, order.DefaultProductionSchedule(), nil)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	userRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
