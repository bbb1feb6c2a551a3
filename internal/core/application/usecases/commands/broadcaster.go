package commands

import (
	"context"
	"log/slog"

	"atelier/internal/core/domain/model/notification"
	"atelier/internal/core/ports"
)

// Broadcaster pushes committed notification records onto the broadcast
// channel. Publishing happens after the transaction that persisted the
// records; failures are logged and left for the relay job to retry, they
// never surface to the caller of a transition.
type Broadcaster struct {
	publisher  ports.NotificationPublisher
	uowFactory NotificationUoWFactory
	logger     *slog.Logger
}

// NewBroadcaster creates a Broadcaster.
func NewBroadcaster(publisher ports.NotificationPublisher,
	uowFactory NotificationUoWFactory, logger *slog.Logger) *Broadcaster {
	return &Broadcaster{
		publisher:  publisher,
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// Broadcast publishes each record and marks the successfully published ones
// as dispatched. Records whose publish failed stay undispatched so the relay
// job picks them up later.
func (b *Broadcaster) Broadcast(ctx context.Context, notifications []*notification.Notification) {
	if len(notifications) == 0 {
		return
	}

	published := make([]*notification.Notification, 0, len(notifications))
	for _, n := range notifications {
		if err := b.publisher.Publish(ctx, n); err != nil {
			b.logger.Warn("notification publish failed, leaving for relay",
				"notification_id", n.ID().String(),
				"routing_key", n.Audience().RoutingKey(),
				"error", err)
			continue
		}
		n.MarkDispatched()
		published = append(published, n)
	}
	if len(published) == 0 {
		return
	}

	uow := b.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		b.logger.Warn("cannot record dispatched notifications", "error", err)
		return
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.NotificationRepository()
	for _, n := range published {
		if err := repo.Update(ctx, n); err != nil {
			b.logger.Warn("cannot record dispatched notification",
				"notification_id", n.ID().String(), "error", err)
			return
		}
	}
	if err := uow.Commit(ctx); err != nil {
		b.logger.Warn("cannot record dispatched notifications", "error", err)
	}
}
