// Package rabbitmq implements the NotificationPublisher port on top of a
// RabbitMQ topic exchange. The routing key encodes the audience, so consumers
// bind either a role-wide pattern or their personal key.
package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"atelier/internal/core/domain/model/notification"

	"github.com/streadway/amqp"
)

// Publisher pushes notification records onto the broadcast exchange.
type Publisher struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
}

// notificationMessage is the wire shape of a broadcast notification.
type notificationMessage struct {
	ID        string `json:"id"`
	Role      string `json:"role"`
	Recipient string `json:"recipient,omitempty"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	OrderID   string `json:"order_id"`
	OrderCode string `json:"order_code"`
	CreatedAt string `json:"created_at"`
}

// NewPublisher connects to RabbitMQ and declares the durable topic exchange.
func NewPublisher(amqpURL, exchange string) (*Publisher, error) {
	conn, err := amqp.Dial(amqpURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		exchange,
		"topic",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	return &Publisher{
		conn:     conn,
		channel:  channel,
		exchange: exchange,
	}, nil
}

// Publish sends one notification record to the exchange using the audience
// routing key.
func (p *Publisher) Publish(_ context.Context, n *notification.Notification) error {
	if err := n.Validate(); err != nil {
		return err
	}

	message := notificationMessage{
		ID:        n.ID().String(),
		Role:      n.Audience().Role().String(),
		Title:     n.Title(),
		Body:      n.Body(),
		OrderID:   n.OrderID().String(),
		OrderCode: n.OrderCode(),
		CreatedAt: n.CreatedAt().Format(time.RFC3339),
	}
	if recipient := n.Audience().RecipientID(); recipient != nil {
		message.Recipient = recipient.String()
	}

	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	err = p.channel.Publish(
		p.exchange,
		n.Audience().RoutingKey(),
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    message.ID,
			Timestamp:    n.CreatedAt(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish notification: %w", err)
	}

	return nil
}

// Close releases the channel and connection.
func (p *Publisher) Close() {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
}
