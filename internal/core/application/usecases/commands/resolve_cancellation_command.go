package commands

import (
	"context"
	"errors"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/guard"
)

var ErrResolveCancellationCommandIsNotConstructed = errors.New(
	"ResolveCancellationCommand must be created via NewResolveCancellationCommand constructor",
)

// ResolveCancellationCommand denies a pending cancellation request and
// lets the order continue.
type ResolveCancellationCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewResolveCancellationCommand creates the command for the given order.
func NewResolveCancellationCommand(orderID kernel.UUID) (ResolveCancellationCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ResolveCancellationCommand{}, err
	}
	return ResolveCancellationCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ResolveCancellationCommand) Validate() error {
	return c.guard.Validate(ErrResolveCancellationCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c ResolveCancellationCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ResolveCancellationCommandHandler discards the pending request and
// reactivates the order.
type ResolveCancellationCommandHandler struct {
	mutation orderMutation
}

// NewResolveCancellationCommandHandler creates the handler.
func NewResolveCancellationCommandHandler(uowFactory OrderUoWFactory, broadcaster *Broadcaster) ResolveCancellationCommandHandler {
	return ResolveCancellationCommandHandler{
		mutation: orderMutation{uowFactory: uowFactory, broadcaster: broadcaster},
	}
}

// Handle loads the order, applies the transition and persists the result.
func (h *ResolveCancellationCommandHandler) Handle(ctx context.Context, cmd ResolveCancellationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return h.mutation.apply(ctx, cmd.OrderID(), func(aggregate *order.Order) error {
		return aggregate.ResolveCancellation(time.Now())
	})
}
