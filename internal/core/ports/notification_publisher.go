package ports

import (
	"context"

	"atelier/internal/core/domain/model/notification"
)

// NotificationPublisher pushes a persisted notification record onto the
// broadcast channel. Delivery is fire and forget with at-least-once
// semantics; a failed publish is retried by the relay job and must never
// roll back the transition that produced the record.
type NotificationPublisher interface {
	Publish(ctx context.Context, n *notification.Notification) error
}
