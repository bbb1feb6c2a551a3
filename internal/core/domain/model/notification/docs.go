// Package notification contains the notification entity and its audience
// addressing model. Every order workflow transition produces zero or more
// notifications, each addressed to one audience: a whole role group (Admin,
// Designer, Courier) or a single user in a role (Customer, Manufacturer).
//
// Notifications are persisted in the same transaction as the order state
// change that produced them and broadcast to the message bus after commit.
// Delivery is fire-and-forget with at-least-once redelivery through the
// relay job; consumers must tolerate duplicates and must not rely on
// ordering between notifications of the same order.
package notification
