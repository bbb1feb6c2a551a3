package commands

import (
	"context"
	"errors"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/guard"
)

var ErrUpdateCustomerInfoCommandIsNotConstructed = errors.New(
	"UpdateCustomerInfoCommand must be created via NewUpdateCustomerInfoCommand constructor",
)

// UpdateCustomerInfoCommand replaces the contact details on an order.
type UpdateCustomerInfoCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	customer order.CustomerInfo

	guard guard.ConstructorGuard
}

// NewUpdateCustomerInfoCommand validates the raw input and builds the command.
func NewUpdateCustomerInfoCommand(orderID kernel.UUID, name string, phone string,
	email string) (UpdateCustomerInfoCommand, error) {
	var e []error
	if err := orderID.Validate(); err != nil {
		e = append(e, err)
	}

	customer, err := order.NewCustomerInfo(name, phone, email)
	if err != nil {
		e = append(e, err)
	}
	if len(e) > 0 {
		return UpdateCustomerInfoCommand{}, errors.Join(e...)
	}

	return UpdateCustomerInfoCommand{
		orderID:  orderID,
		customer: customer,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCustomerInfoCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCustomerInfoCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c UpdateCustomerInfoCommand) OrderID() kernel.UUID {
	return c.orderID
}

// UpdateCustomerInfoCommandHandler persists the new contact details.
type UpdateCustomerInfoCommandHandler struct {
	mutation orderMutation
}

// NewUpdateCustomerInfoCommandHandler creates the handler.
func NewUpdateCustomerInfoCommandHandler(uowFactory OrderUoWFactory) UpdateCustomerInfoCommandHandler {
	return UpdateCustomerInfoCommandHandler{
		mutation: orderMutation{uowFactory: uowFactory},
	}
}

// Handle loads the order, swaps the contact record and persists the result.
func (h *UpdateCustomerInfoCommandHandler) Handle(ctx context.Context, cmd UpdateCustomerInfoCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return h.mutation.apply(ctx, cmd.OrderID(), func(aggregate *order.Order) error {
		return aggregate.UpdateCustomerInfo(cmd.customer)
	})
}
