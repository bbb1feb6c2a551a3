package notification

import (
	"errors"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"
)

// ErrNotificationIsNotConstructed is returned when a Notification instance
// was not created through NewNotification or RestoreNotification.
var ErrNotificationIsNotConstructed = errors.New("Notification must be created via NewNotification constructor")

// Notification is a persisted message addressed to one audience, created
// as a side effect of an order workflow transition. It carries a snapshot
// reference to the order (id and human-readable code) rather than the
// order itself, so the reader can link back without loading the aggregate.
//
// Notifications start unread and undispatched. The relay job flips the
// dispatched flag after a successful broadcast; recipients flip the read
// flag, which is idempotent.
type Notification struct {
	id        kernel.UUID
	audience  Audience
	title     string
	body      string
	orderID   kernel.UUID
	orderCode string
	isRead    bool

	dispatched bool
	createdAt  time.Time

	isConstructed bool
}

// NewNotification creates an unread, undispatched notification.
func NewNotification(audience Audience, title, body string, orderID kernel.UUID, orderCode string, now time.Time) (*Notification, error) {
	n := &Notification{
		id:            kernel.NewUUID(),
		createdAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		n.setAudience(audience),
		n.setTitle(title),
		n.setBody(body),
		n.setOrder(orderID, orderCode),
	); err != nil {
		return nil, err
	}

	return n, nil
}

// RestoreNotification reconstructs a notification from persistence,
// including its read and dispatch flags.
func RestoreNotification(
	id kernel.UUID,
	audience Audience,
	title, body string,
	orderID kernel.UUID,
	orderCode string,
	isRead, dispatched bool,
	createdAt time.Time,
) (*Notification, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	n, err := NewNotification(audience, title, body, orderID, orderCode, createdAt)
	if err != nil {
		return nil, err
	}

	n.id = id
	n.isRead = isRead
	n.dispatched = dispatched
	return n, nil
}

// Validate ensures the notification was created through a constructor.
func (n *Notification) Validate() error {
	if n == nil || !n.isConstructed {
		return ErrNotificationIsNotConstructed
	}
	return nil
}

// ID returns the notification's unique identifier.
func (n *Notification) ID() kernel.UUID {
	return n.id
}

// Audience returns the addressing target.
func (n *Notification) Audience() Audience {
	return n.audience
}

// Title returns the short headline shown to the recipient.
func (n *Notification) Title() string {
	return n.title
}

// Body returns the message text.
func (n *Notification) Body() string {
	return n.body
}

// OrderID returns the id of the order the notification refers to.
func (n *Notification) OrderID() kernel.UUID {
	return n.orderID
}

// OrderCode returns the human-readable code of the order.
func (n *Notification) OrderCode() string {
	return n.orderCode
}

// IsRead reports whether the recipient has marked the notification read.
func (n *Notification) IsRead() bool {
	return n.isRead
}

// IsDispatched reports whether the notification was broadcast to the bus.
func (n *Notification) IsDispatched() bool {
	return n.dispatched
}

// CreatedAt returns the creation timestamp.
func (n *Notification) CreatedAt() time.Time {
	return n.createdAt
}

// MarkRead marks the notification read on behalf of the actor.
// The operation is idempotent; marking an already-read notification is a
// no-op. Returns a Forbidden error when the actor may not read for the
// notification's audience.
func (n *Notification) MarkRead(actor kernel.Actor) error {
	if !n.audience.CanBeMarkedReadBy(actor) {
		return errs.NewForbiddenError("mark notification read", "notification belongs to a different recipient")
	}
	n.isRead = true
	return nil
}

// MarkDispatched records a successful broadcast. Idempotent.
func (n *Notification) MarkDispatched() {
	n.dispatched = true
}

func (n *Notification) setAudience(audience Audience) error {
	if err := audience.Validate(); err != nil {
		return err
	}
	n.audience = audience
	return nil
}

func (n *Notification) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	n.title = title
	return nil
}

func (n *Notification) setBody(body string) error {
	if body == "" {
		return errs.NewValueIsRequiredError("body")
	}
	n.body = body
	return nil
}

func (n *Notification) setOrder(orderID kernel.UUID, orderCode string) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	if orderCode == "" {
		return errs.NewValueIsRequiredError("orderCode")
	}
	n.orderID = orderID
	n.orderCode = orderCode
	return nil
}
