package commands

import (
	"context"
	"errors"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/guard"
)

var ErrAddOrderItemCommandIsNotConstructed = errors.New(
	"AddOrderItemCommand must be created via NewAddOrderItemCommand constructor",
)

// AddOrderItemCommand appends a product line to one of the order's baskets.
// The offer price is recomputed from the items; it is never set directly.
type AddOrderItemCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	basketID kernel.UUID
	item     ItemInput

	guard guard.ConstructorGuard
}

// NewAddOrderItemCommand creates the command. The item input is validated
// by the domain constructor inside the handler.
func NewAddOrderItemCommand(orderID kernel.UUID, basketID kernel.UUID, item ItemInput) (AddOrderItemCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		basketID.Validate(),
	); err != nil {
		return AddOrderItemCommand{}, err
	}
	return AddOrderItemCommand{
		orderID:  orderID,
		basketID: basketID,
		item:     item,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AddOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderItemCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c AddOrderItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// AddOrderItemCommandHandler adds the line and recomputes the price.
type AddOrderItemCommandHandler struct {
	mutation orderMutation
	pricing  order.PricingPolicy
}

// NewAddOrderItemCommandHandler creates the handler.
func NewAddOrderItemCommandHandler(uowFactory OrderUoWFactory, pricing order.PricingPolicy) AddOrderItemCommandHandler {
	return AddOrderItemCommandHandler{
		mutation: orderMutation{uowFactory: uowFactory},
		pricing:  pricing,
	}
}

// Handle builds the domain item and appends it to the basket.
func (h *AddOrderItemCommandHandler) Handle(ctx context.Context, cmd AddOrderItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return h.mutation.apply(ctx, cmd.OrderID(), func(aggregate *order.Order) error {
		item, err := cmd.item.toDomain(h.pricing)
		if err != nil {
			return err
		}
		return aggregate.AddItem(cmd.basketID, item)
	})
}
