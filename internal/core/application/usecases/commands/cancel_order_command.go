package commands

import (
	"context"
	"errors"
	"strings"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand freezes an order as cancelled. It can target a single
// basket line instead of the whole order; the line is removed and the offer
// price shrinks by its subtotal before the freeze lands.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	title   string
	reason  string
	itemID  *kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates the command. The item ID is optional.
func NewCancelOrderCommand(orderID kernel.UUID, title string, reason string,
	itemID *kernel.UUID) (CancelOrderCommand, error) {
	var e []error
	if err := orderID.Validate(); err != nil {
		e = append(e, err)
	}
	if strings.TrimSpace(title) == "" {
		e = append(e, errs.NewValueIsRequiredError("title"))
	}
	if strings.TrimSpace(reason) == "" {
		e = append(e, errs.NewValueIsRequiredError("reason"))
	}
	if itemID != nil {
		if err := itemID.Validate(); err != nil {
			e = append(e, err)
		}
	}
	if len(e) > 0 {
		return CancelOrderCommand{}, errors.Join(e...)
	}
	return CancelOrderCommand{
		orderID: orderID,
		title:   title,
		reason:  reason,
		itemID:  itemID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c CancelOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ItemID returns the targeted basket line, or nil for a whole-order
// cancellation.
func (c CancelOrderCommand) ItemID() *kernel.UUID {
	return c.itemID
}

// CancelOrderCommandHandler cancels the order and fans the news out.
type CancelOrderCommandHandler struct {
	mutation orderMutation
}

// NewCancelOrderCommandHandler creates the handler.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory, broadcaster *Broadcaster) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		mutation: orderMutation{uowFactory: uowFactory, broadcaster: broadcaster},
	}
}

// Handle records the cancellation and persists the fan-out.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return h.mutation.apply(ctx, cmd.OrderID(), func(aggregate *order.Order) error {
		return aggregate.Cancel(cmd.title, cmd.reason, cmd.itemID, time.Now())
	})
}
