package commands

import (
	"context"
	"errors"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/guard"
)

var ErrUpdateOrderNoteCommandIsNotConstructed = errors.New(
	"UpdateOrderNoteCommand must be created via NewUpdateOrderNoteCommand constructor",
)

// UpdateOrderNoteCommand replaces the free-form note on an order. An empty
// note clears it.
type UpdateOrderNoteCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	note    string

	guard guard.ConstructorGuard
}

// NewUpdateOrderNoteCommand creates the command.
func NewUpdateOrderNoteCommand(orderID kernel.UUID, note string) (UpdateOrderNoteCommand, error) {
	if err := orderID.Validate(); err != nil {
		return UpdateOrderNoteCommand{}, err
	}
	return UpdateOrderNoteCommand{
		orderID: orderID,
		note:    note,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderNoteCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderNoteCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c UpdateOrderNoteCommand) OrderID() kernel.UUID {
	return c.orderID
}

// UpdateOrderNoteCommandHandler persists the new note.
type UpdateOrderNoteCommandHandler struct {
	mutation orderMutation
}

// NewUpdateOrderNoteCommandHandler creates the handler.
func NewUpdateOrderNoteCommandHandler(uowFactory OrderUoWFactory) UpdateOrderNoteCommandHandler {
	return UpdateOrderNoteCommandHandler{
		mutation: orderMutation{uowFactory: uowFactory},
	}
}

// Handle writes the note through the usual guarded update.
func (h *UpdateOrderNoteCommandHandler) Handle(ctx context.Context, cmd UpdateOrderNoteCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return h.mutation.apply(ctx, cmd.OrderID(), func(aggregate *order.Order) error {
		return aggregate.UpdateNote(cmd.note)
	})
}
