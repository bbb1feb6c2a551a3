package commands

import (
	"context"
	"errors"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/guard"
)

var ErrUpdateShippingAddressCommandIsNotConstructed = errors.New(
	"UpdateShippingAddressCommand must be created via NewUpdateShippingAddressCommand constructor",
)

// UpdateShippingAddressParams is the raw input for a shipping change.
type UpdateShippingAddressParams struct {
	OrderID      kernel.UUID
	ShippingType order.ShippingType
	AddressLine  string
	District     string
	City         string
}

// UpdateShippingAddressCommand replaces the shipping type and delivery
// address on an order. Office pickup carries no address.
type UpdateShippingAddressCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	shippingType order.ShippingType
	address      order.Address

	guard guard.ConstructorGuard
}

// NewUpdateShippingAddressCommand validates the raw input and builds the command.
func NewUpdateShippingAddressCommand(params UpdateShippingAddressParams) (UpdateShippingAddressCommand, error) {
	var e []error
	if err := params.OrderID.Validate(); err != nil {
		e = append(e, err)
	}
	if err := params.ShippingType.Validate(); err != nil {
		e = append(e, err)
	}

	var address order.Address
	if params.ShippingType.RequiresAddress() {
		var err error
		address, err = order.NewAddress(params.AddressLine, params.District, params.City)
		if err != nil {
			e = append(e, err)
		}
	}
	if len(e) > 0 {
		return UpdateShippingAddressCommand{}, errors.Join(e...)
	}

	return UpdateShippingAddressCommand{
		orderID:      params.OrderID,
		shippingType: params.ShippingType,
		address:      address,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateShippingAddressCommand) Validate() error {
	return c.guard.Validate(ErrUpdateShippingAddressCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c UpdateShippingAddressCommand) OrderID() kernel.UUID {
	return c.orderID
}

// UpdateShippingAddressCommandHandler persists the shipping change.
type UpdateShippingAddressCommandHandler struct {
	mutation orderMutation
}

// NewUpdateShippingAddressCommandHandler creates the handler.
func NewUpdateShippingAddressCommandHandler(uowFactory OrderUoWFactory) UpdateShippingAddressCommandHandler {
	return UpdateShippingAddressCommandHandler{
		mutation: orderMutation{uowFactory: uowFactory},
	}
}

// Handle loads the order, swaps the shipping records and persists the result.
func (h *UpdateShippingAddressCommandHandler) Handle(ctx context.Context, cmd UpdateShippingAddressCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return h.mutation.apply(ctx, cmd.OrderID(), func(aggregate *order.Order) error {
		return aggregate.UpdateShippingAddress(cmd.shippingType, cmd.address)
	})
}
