package commands

import (
	"context"
	"errors"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

var ErrUpdatePaymentAmountCommandIsNotConstructed = errors.New(
	"UpdatePaymentAmountCommand must be created via NewUpdatePaymentAmountCommand constructor",
)

// UpdatePaymentAmountCommand corrects the recorded payment amount on an
// order that has reached the payment stage.
type UpdatePaymentAmountCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	amount  kernel.Money

	guard guard.ConstructorGuard
}

// NewUpdatePaymentAmountCommand creates the command for the given order.
func NewUpdatePaymentAmountCommand(orderID kernel.UUID, amount kernel.Money) (UpdatePaymentAmountCommand, error) {
	var e []error
	if err := orderID.Validate(); err != nil {
		e = append(e, err)
	}
	if amount.IsNegative() {
		e = append(e, errs.NewValueIsInvalidError("amount"))
	}
	if len(e) > 0 {
		return UpdatePaymentAmountCommand{}, errors.Join(e...)
	}

	return UpdatePaymentAmountCommand{
		orderID: orderID,
		amount:  amount,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdatePaymentAmountCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePaymentAmountCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c UpdatePaymentAmountCommand) OrderID() kernel.UUID {
	return c.orderID
}

// UpdatePaymentAmountCommandHandler persists the corrected amount.
type UpdatePaymentAmountCommandHandler struct {
	mutation orderMutation
}

// NewUpdatePaymentAmountCommandHandler creates the handler.
func NewUpdatePaymentAmountCommandHandler(uowFactory OrderUoWFactory) UpdatePaymentAmountCommandHandler {
	return UpdatePaymentAmountCommandHandler{
		mutation: orderMutation{uowFactory: uowFactory},
	}
}

// Handle loads the order, corrects the paid amount and persists the result.
func (h *UpdatePaymentAmountCommandHandler) Handle(ctx context.Context, cmd UpdatePaymentAmountCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return h.mutation.apply(ctx, cmd.OrderID(), func(aggregate *order.Order) error {
		return aggregate.UpdatePaidAmount(cmd.amount)
	})
}
