package commands_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/notification"
)

func TestRelayNotificationsCommandHandler_Handle(t *testing.T) {
	t.Run("should publish stranded records and mark them dispatched", func(t *testing.T) {
		ctx := t.Context()
		first := customerNotification(t, kernel.NewUUID())
		second := customerNotification(t, kernel.NewUUID())

		publisher := new(MockPublisher)
		publisher.On("Publish", mock.Anything, first).Return(nil).Once()
		publisher.On("Publish", mock.Anything, second).Return(nil).Once()

		repo := new(MockNotificationRepository)
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("NotificationRepository").Return(repo).Once()
		repo.On("GetUndispatched", mock.Anything, 100).
			Return([]*notification.Notification{first, second}, nil).Once()
		repo.On("Update", mock.Anything, first).Return(nil).Once()
		repo.On("Update", mock.Anything, second).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		factory := new(MockNotificationUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewRelayNotificationsCommandHandler(factory, publisher, slog.Default())
		err := h.Handle(ctx)

		require.NoError(t, err)
		assert.True(t, first.IsDispatched())
		assert.True(t, second.IsDispatched())
		publisher.AssertExpectations(t)
		repo.AssertExpectations(t)
	})

	t.Run("should leave a record undispatched when its publish fails", func(t *testing.T) {
		ctx := t.Context()
		record := customerNotification(t, kernel.NewUUID())

		publisher := new(MockPublisher)
		publisher.On("Publish", mock.Anything, record).Return(assert.AnError).Once()

		repo := new(MockNotificationRepository)
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("NotificationRepository").Return(repo).Once()
		repo.On("GetUndispatched", mock.Anything, 100).
			Return([]*notification.Notification{record}, nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		factory := new(MockNotificationUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewRelayNotificationsCommandHandler(factory, publisher, slog.Default())
		err := h.Handle(ctx)

		require.NoError(t, err)
		assert.False(t, record.IsDispatched())
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}
