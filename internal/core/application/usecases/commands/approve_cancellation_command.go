package commands

import (
	"context"
	"errors"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/guard"
)

var ErrApproveCancellationCommandIsNotConstructed = errors.New(
	"ApproveCancellationCommand must be created via NewApproveCancellationCommand constructor",
)

// ApproveCancellationCommand grants a pending cancellation request,
// freezing the order as cancelled.
type ApproveCancellationCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewApproveCancellationCommand creates the command for the given order.
func NewApproveCancellationCommand(orderID kernel.UUID) (ApproveCancellationCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ApproveCancellationCommand{}, err
	}
	return ApproveCancellationCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveCancellationCommand) Validate() error {
	return c.guard.Validate(ErrApproveCancellationCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c ApproveCancellationCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ApproveCancellationCommandHandler freezes the order and fans the news
// out to the parties involved at the current stage.
type ApproveCancellationCommandHandler struct {
	mutation orderMutation
}

// NewApproveCancellationCommandHandler creates the handler.
func NewApproveCancellationCommandHandler(uowFactory OrderUoWFactory, broadcaster *Broadcaster) ApproveCancellationCommandHandler {
	return ApproveCancellationCommandHandler{
		mutation: orderMutation{uowFactory: uowFactory, broadcaster: broadcaster},
	}
}

// Handle loads the order, applies the transition and persists the result.
func (h *ApproveCancellationCommandHandler) Handle(ctx context.Context, cmd ApproveCancellationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return h.mutation.apply(ctx, cmd.OrderID(), func(aggregate *order.Order) error {
		return aggregate.ApproveCancellation(time.Now())
	})
}
