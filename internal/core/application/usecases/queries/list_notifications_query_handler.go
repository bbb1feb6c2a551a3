package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListNotificationsQueryHandler retrieves notification feeds from the
// database.
type ListNotificationsQueryHandler struct {
	db *gorm.DB
}

// NewListNotificationsQueryHandler creates a handler for feed queries.
func NewListNotificationsQueryHandler(db *gorm.DB) ListNotificationsQueryHandler {
	return ListNotificationsQueryHandler{db: db}
}

// Handle executes the query. Results are sorted newest first.
func (h ListNotificationsQueryHandler) Handle(
	ctx context.Context,
	query ListNotificationsQuery,
) (ListNotificationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListNotificationsQueryResponse{}, err
	}

	actor := query.Actor()
	scope := "role = ? AND recipient_id = ?"
	args := []any{int(actor.Role()), actor.ID().String()}
	if actor.Role().IsGroup() {
		scope = "role = ? AND recipient_id IS NULL"
		args = []any{int(actor.Role())}
	}

	resp := ListNotificationsQueryResponse{
		Items: make([]ListNotificationsItemResponse, 0),
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			title,
			body,
			order_id,
			order_code,
			is_read,
			created_at
		FROM notifications
		WHERE `+scope+`
		ORDER BY created_at DESC
		LIMIT ?
	`, append(args, query.Limit())...).Rows()
	if err != nil {
		return ListNotificationsQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var item ListNotificationsItemResponse
		var id uuid.UUID
		var orderID uuid.UUID
		var createdAt time.Time

		err = rows.Scan(
			&id,
			&item.Title,
			&item.Body,
			&orderID,
			&item.OrderCode,
			&item.IsRead,
			&createdAt,
		)
		if err != nil {
			return ListNotificationsQueryResponse{}, err
		}

		item.ID = id.String()
		item.OrderID = orderID.String()
		item.CreatedAt = createdAt.Format(time.RFC3339)
		resp.Items = append(resp.Items, item)
	}

	if err = rows.Err(); err != nil {
		return ListNotificationsQueryResponse{}, err
	}

	unreadRow := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM notifications
		WHERE is_read = FALSE AND `+scope,
		args...,
	).Row()
	if err = unreadRow.Scan(&resp.UnreadCount); err != nil {
		return ListNotificationsQueryResponse{}, err
	}

	return resp, nil
}
