package commands

import (
	"context"
	"errors"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/guard"
)

var ErrUpdateInvoiceInfoCommandIsNotConstructed = errors.New(
	"UpdateInvoiceInfoCommand must be created via NewUpdateInvoiceInfoCommand constructor",
)

// UpdateInvoiceInfoCommand replaces the billing details on an order.
type UpdateInvoiceInfoCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	invoice order.InvoiceInfo

	guard guard.ConstructorGuard
}

// NewUpdateInvoiceInfoCommand validates the raw input and builds the command.
func NewUpdateInvoiceInfoCommand(orderID kernel.UUID, invoiceType order.InvoiceType,
	company string, taxOffice string, taxNumber string) (UpdateInvoiceInfoCommand, error) {
	var e []error
	if err := orderID.Validate(); err != nil {
		e = append(e, err)
	}

	invoice, err := order.NewInvoiceInfo(invoiceType, company, taxOffice, taxNumber)
	if err != nil {
		e = append(e, err)
	}
	if len(e) > 0 {
		return UpdateInvoiceInfoCommand{}, errors.Join(e...)
	}

	return UpdateInvoiceInfoCommand{
		orderID: orderID,
		invoice: invoice,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateInvoiceInfoCommand) Validate() error {
	return c.guard.Validate(ErrUpdateInvoiceInfoCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c UpdateInvoiceInfoCommand) OrderID() kernel.UUID {
	return c.orderID
}

// UpdateInvoiceInfoCommandHandler persists the new billing details.
type UpdateInvoiceInfoCommandHandler struct {
	mutation orderMutation
}

// NewUpdateInvoiceInfoCommandHandler creates the handler.
func NewUpdateInvoiceInfoCommandHandler(uowFactory OrderUoWFactory) UpdateInvoiceInfoCommandHandler {
	return UpdateInvoiceInfoCommandHandler{
		mutation: orderMutation{uowFactory: uowFactory},
	}
}

// Handle loads the order, swaps the billing record and persists the result.
func (h *UpdateInvoiceInfoCommandHandler) Handle(ctx context.Context, cmd UpdateInvoiceInfoCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return h.mutation.apply(ctx, cmd.OrderID(), func(aggregate *order.Order) error {
		return aggregate.UpdateInvoiceInfo(cmd.invoice)
	})
}
