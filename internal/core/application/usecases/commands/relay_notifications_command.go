package commands

import (
	"context"
	"log/slog"

	"atelier/internal/core/ports"
)

// relayBatchSize bounds how many stranded records one relay pass picks up.
const relayBatchSize = 100

// RelayNotificationsCommandHandler re-publishes notification records whose
// broadcast never went out, either because the channel was down or the
// process died between commit and publish. The relay job runs it on a
// schedule; together with the in-transaction persist this gives the channel
// at-least-once delivery.
type RelayNotificationsCommandHandler struct {
	uowFactory NotificationUoWFactory
	publisher  ports.NotificationPublisher
	logger     *slog.Logger
}

// NewRelayNotificationsCommandHandler creates the handler.
func NewRelayNotificationsCommandHandler(uowFactory NotificationUoWFactory,
	publisher ports.NotificationPublisher, logger *slog.Logger) RelayNotificationsCommandHandler {
	return RelayNotificationsCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger,
	}
}

// Handle drains one batch of undispatched records. Publish failures leave
// the record untouched for the next pass.
func (h *RelayNotificationsCommandHandler) Handle(ctx context.Context) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.NotificationRepository()
	stranded, err := repo.GetUndispatched(ctx, relayBatchSize)
	if err != nil {
		return err
	}
	if len(stranded) == 0 {
		return uow.Commit(ctx)
	}

	relayed := 0
	for _, record := range stranded {
		if err = h.publisher.Publish(ctx, record); err != nil {
			h.logger.Warn("relay publish failed",
				"notification_id", record.ID().String(), "error", err)
			continue
		}
		record.MarkDispatched()
		if err = repo.Update(ctx, record); err != nil {
			return err
		}
		relayed++
	}
	if relayed > 0 {
		h.logger.Info("relayed stranded notifications", "count", relayed)
	}

	return uow.Commit(ctx)
}
