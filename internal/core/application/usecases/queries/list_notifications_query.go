package queries

import (
	"errors"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/guard"
)

var ErrListNotificationsQueryIsNotConstructed = errors.New(
	"ListNotificationsQuery must be created via NewListNotificationsQuery constructor",
)

// ListNotificationsQuery retrieves the notification feed visible to one
// actor. Group roles see their shared feed; customers and manufacturers see
// notifications addressed to them personally.
type ListNotificationsQuery struct {
	actor kernel.Actor
	limit int

	guard guard.ConstructorGuard
}

const defaultNotificationLimit = 50

// NewListNotificationsQuery creates the query. A non-positive limit falls
// back to the default page size.
func NewListNotificationsQuery(actor kernel.Actor, limit int) (ListNotificationsQuery, error) {
	if err := actor.Validate(); err != nil {
		return ListNotificationsQuery{}, err
	}
	if limit <= 0 {
		limit = defaultNotificationLimit
	}
	return ListNotificationsQuery{
		actor: actor,
		limit: limit,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrListNotificationsQueryIsNotConstructed)
}

// Actor returns the actor whose feed is requested.
func (q ListNotificationsQuery) Actor() kernel.Actor {
	return q.actor
}

// Limit returns the maximum number of notifications to return.
func (q ListNotificationsQuery) Limit() int {
	return q.limit
}

// ListNotificationsItemResponse is one notification in the feed.
type ListNotificationsItemResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	OrderID   string `json:"order_id"`
	OrderCode string `json:"order_code"`
	IsRead    bool   `json:"is_read"`
	CreatedAt string `json:"created_at"`
}

// ListNotificationsQueryResponse is the feed page plus the total number of
// unread notifications for the actor.
type ListNotificationsQueryResponse struct {
	Items       []ListNotificationsItemResponse `json:"items"`
	UnreadCount int                             `json:"unread_count"`
}
