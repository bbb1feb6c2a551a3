package commands

import (
	"context"
	"errors"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/guard"
)

var ErrReactivateOrderCommandIsNotConstructed = errors.New(
	"ReactivateOrderCommand must be created via NewReactivateOrderCommand constructor",
)

// ReactivateOrderCommand lifts a rejection or cancellation, returning the
// order to its previous stage.
type ReactivateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewReactivateOrderCommand creates the command for the given order.
func NewReactivateOrderCommand(orderID kernel.UUID) (ReactivateOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ReactivateOrderCommand{}, err
	}
	return ReactivateOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ReactivateOrderCommand) Validate() error {
	return c.guard.Validate(ErrReactivateOrderCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c ReactivateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ReactivateOrderCommandHandler unfreezes a rejected or cancelled order
// and tells everyone involved.
type ReactivateOrderCommandHandler struct {
	mutation orderMutation
}

// NewReactivateOrderCommandHandler creates the handler.
func NewReactivateOrderCommandHandler(uowFactory OrderUoWFactory, broadcaster *Broadcaster) ReactivateOrderCommandHandler {
	return ReactivateOrderCommandHandler{
		mutation: orderMutation{uowFactory: uowFactory, broadcaster: broadcaster},
	}
}

// Handle loads the order, applies the transition and persists the result.
func (h *ReactivateOrderCommandHandler) Handle(ctx context.Context, cmd ReactivateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return h.mutation.apply(ctx, cmd.OrderID(), func(aggregate *order.Order) error {
		return aggregate.Reactivate(time.Now())
	})
}
