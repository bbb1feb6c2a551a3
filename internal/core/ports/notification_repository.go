package ports

import (
	"context"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/notification"
)

// NotificationRepository defines the persistence contract for notification
// records. Records are written in the same transaction as the order change
// that produced them; broadcasting happens after commit.
type NotificationRepository interface {
	// Add persists a batch of new notification records.
	Add(ctx context.Context, notifications []*notification.Notification) error

	// Update persists changes to an existing record, such as read or
	// dispatched flags.
	Update(ctx context.Context, n *notification.Notification) error

	// Get retrieves a notification record by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error)

	// GetUndispatched retrieves up to limit records that have not been
	// handed to the broadcast channel yet, oldest first. The relay job
	// drains these when a broadcast failed or the process died between
	// commit and publish.
	GetUndispatched(ctx context.Context, limit int) ([]*notification.Notification, error)
}
