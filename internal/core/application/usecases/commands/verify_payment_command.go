package commands

import (
	"context"
	"errors"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/guard"
)

var ErrVerifyPaymentCommandIsNotConstructed = errors.New(
	"VerifyPaymentCommand must be created via NewVerifyPaymentCommand constructor",
)

// VerifyPaymentCommand confirms that the submitted payment evidence
// checks out.
type VerifyPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewVerifyPaymentCommand creates the command for the given order.
func NewVerifyPaymentCommand(orderID kernel.UUID) (VerifyPaymentCommand, error) {
	if err := orderID.Validate(); err != nil {
		return VerifyPaymentCommand{}, err
	}
	return VerifyPaymentCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c VerifyPaymentCommand) Validate() error {
	return c.guard.Validate(ErrVerifyPaymentCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c VerifyPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// VerifyPaymentCommandHandler marks the payment as received and flips
// production to in progress.
type VerifyPaymentCommandHandler struct {
	mutation orderMutation
}

// NewVerifyPaymentCommandHandler creates the handler.
func NewVerifyPaymentCommandHandler(uowFactory OrderUoWFactory, broadcaster *Broadcaster) VerifyPaymentCommandHandler {
	return VerifyPaymentCommandHandler{
		mutation: orderMutation{uowFactory: uowFactory, broadcaster: broadcaster},
	}
}

// Handle loads the order, applies the transition and persists the result.
func (h *VerifyPaymentCommandHandler) Handle(ctx context.Context, cmd VerifyPaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return h.mutation.apply(ctx, cmd.OrderID(), func(aggregate *order.Order) error {
		return aggregate.VerifyPayment(time.Now())
	})
}
