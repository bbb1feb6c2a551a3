package commands

import (
	"context"
	"errors"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/guard"
)

var ErrUpdateOrderItemCommandIsNotConstructed = errors.New(
	"UpdateOrderItemCommand must be created via NewUpdateOrderItemCommand constructor",
)

// UpdateOrderItemCommand replaces the quantity and unit price of one
// product line. The offer price is recomputed from the items.
type UpdateOrderItemCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	itemID    kernel.UUID
	quantity  int
	unitPrice kernel.Money

	guard guard.ConstructorGuard
}

// NewUpdateOrderItemCommand creates the command. Quantity and price limits
// are enforced by the domain inside the handler.
func NewUpdateOrderItemCommand(orderID kernel.UUID, itemID kernel.UUID,
	quantity int, unitPrice kernel.Money) (UpdateOrderItemCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		itemID.Validate(),
	); err != nil {
		return UpdateOrderItemCommand{}, err
	}
	return UpdateOrderItemCommand{
		orderID:   orderID,
		itemID:    itemID,
		quantity:  quantity,
		unitPrice: unitPrice,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderItemCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c UpdateOrderItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ItemID returns the identifier of the line being edited.
func (c UpdateOrderItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// UpdateOrderItemCommandHandler edits the line and recomputes the price.
type UpdateOrderItemCommandHandler struct {
	mutation orderMutation
	pricing  order.PricingPolicy
}

// NewUpdateOrderItemCommandHandler creates the handler.
func NewUpdateOrderItemCommandHandler(uowFactory OrderUoWFactory, pricing order.PricingPolicy) UpdateOrderItemCommandHandler {
	return UpdateOrderItemCommandHandler{
		mutation: orderMutation{uowFactory: uowFactory},
		pricing:  pricing,
	}
}

// Handle loads the order, edits the line and persists the result.
func (h *UpdateOrderItemCommandHandler) Handle(ctx context.Context, cmd UpdateOrderItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return h.mutation.apply(ctx, cmd.OrderID(), func(aggregate *order.Order) error {
		return aggregate.UpdateItem(cmd.itemID, cmd.quantity, cmd.unitPrice, h.pricing)
	})
}
