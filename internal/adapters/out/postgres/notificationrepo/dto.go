// Package notificationrepo provides data transfer objects and mapping
// functions for notification persistence. Notification rows double as the
// broadcast outbox: the dispatched flag marks records that have been handed
// to the message broker.
package notificationrepo

import (
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/notification"

	"github.com/google/uuid"
)

// NotificationDTO represents the database structure for notification records.
// A NULL recipient addresses the whole role group.
type NotificationDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Role        int        `gorm:"index"`
	RecipientID *uuid.UUID `gorm:"type:uuid;index"`
	Title       string
	Body        string
	OrderID     uuid.UUID `gorm:"type:uuid;index"`
	OrderCode   string
	IsRead      bool
	Dispatched  bool `gorm:"index"`
	CreatedAt   time.Time
}

// TableName specifies the database table name for notification records.
func (NotificationDTO) TableName() string {
	return "notifications"
}

// fromDomain converts a notification to its database representation.
func fromDomain(n *notification.Notification) NotificationDTO {
	var recipientID *uuid.UUID
	if id := n.Audience().RecipientID(); id != nil {
		raw := id.Bytes()
		recipientID = &raw
	}

	return NotificationDTO{
		ID:          n.ID().Bytes(),
		Role:        int(n.Audience().Role()),
		RecipientID: recipientID,
		Title:       n.Title(),
		Body:        n.Body(),
		OrderID:     n.OrderID().Bytes(),
		OrderCode:   n.OrderCode(),
		IsRead:      n.IsRead(),
		Dispatched:  n.IsDispatched(),
		CreatedAt:   n.CreatedAt(),
	}
}

// toDomain converts a database DTO back to a notification using
// RestoreNotification.
func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	var recipientID *kernel.UUID
	if dto.RecipientID != nil {
		rID, rErr := kernel.UUIDFromBytes((*dto.RecipientID)[:])
		if rErr != nil {
			return nil, rErr
		}
		recipientID = &rID
	}

	audience, err := notification.RestoreAudience(kernel.Role(dto.Role), recipientID)
	if err != nil {
		return nil, err
	}

	return notification.RestoreNotification(id, audience, dto.Title, dto.Body,
		orderID, dto.OrderCode, dto.IsRead, dto.Dispatched, dto.CreatedAt)
}
