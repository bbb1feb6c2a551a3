package commands

import (
	"context"
	"errors"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/guard"
)

var ErrRemoveOrderItemCommandIsNotConstructed = errors.New(
	"RemoveOrderItemCommand must be created via NewRemoveOrderItemCommand constructor",
)

// RemoveOrderItemCommand deletes a product line from the order, shrinking
// the offer price by its subtotal.
type RemoveOrderItemCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	itemID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveOrderItemCommand creates the command.
func NewRemoveOrderItemCommand(orderID kernel.UUID, itemID kernel.UUID) (RemoveOrderItemCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		itemID.Validate(),
	); err != nil {
		return RemoveOrderItemCommand{}, err
	}
	return RemoveOrderItemCommand{
		orderID: orderID,
		itemID:  itemID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveOrderItemCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c RemoveOrderItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RemoveOrderItemCommandHandler removes the line and recomputes the price.
type RemoveOrderItemCommandHandler struct {
	mutation orderMutation
}

// NewRemoveOrderItemCommandHandler creates the handler.
func NewRemoveOrderItemCommandHandler(uowFactory OrderUoWFactory) RemoveOrderItemCommandHandler {
	return RemoveOrderItemCommandHandler{
		mutation: orderMutation{uowFactory: uowFactory},
	}
}

// Handle removes the line from whichever basket holds it.
func (h *RemoveOrderItemCommandHandler) Handle(ctx context.Context, cmd RemoveOrderItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return h.mutation.apply(ctx, cmd.OrderID(), func(aggregate *order.Order) error {
		return aggregate.RemoveItem(cmd.itemID)
	})
}
