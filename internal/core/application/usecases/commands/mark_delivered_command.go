package commands

import (
	"context"
	"errors"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/guard"
)

var ErrMarkDeliveredCommandIsNotConstructed = errors.New(
	"MarkDeliveredCommand must be created via NewMarkDeliveredCommand constructor",
)

// MarkDeliveredCommand closes the lifecycle after the courier confirms
// delivery.
type MarkDeliveredCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkDeliveredCommand creates the command for the given order.
func NewMarkDeliveredCommand(orderID kernel.UUID) (MarkDeliveredCommand, error) {
	if err := orderID.Validate(); err != nil {
		return MarkDeliveredCommand{}, err
	}
	return MarkDeliveredCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkDeliveredCommand) Validate() error {
	return c.guard.Validate(ErrMarkDeliveredCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c MarkDeliveredCommand) OrderID() kernel.UUID {
	return c.orderID
}

// MarkDeliveredCommandHandler completes the order.
type MarkDeliveredCommandHandler struct {
	mutation orderMutation
}

// NewMarkDeliveredCommandHandler creates the handler.
func NewMarkDeliveredCommandHandler(uowFactory OrderUoWFactory, broadcaster *Broadcaster) MarkDeliveredCommandHandler {
	return MarkDeliveredCommandHandler{
		mutation: orderMutation{uowFactory: uowFactory, broadcaster: broadcaster},
	}
}

// Handle loads the order, applies the transition and persists the result.
func (h *MarkDeliveredCommandHandler) Handle(ctx context.Context, cmd MarkDeliveredCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return h.mutation.apply(ctx, cmd.OrderID(), func(aggregate *order.Order) error {
		return aggregate.MarkDelivered(time.Now())
	})
}
