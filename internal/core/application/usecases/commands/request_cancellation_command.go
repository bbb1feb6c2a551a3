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

var ErrRequestCancellationCommandIsNotConstructed = errors.New(
	"RequestCancellationCommand must be created via NewRequestCancellationCommand constructor",
)

// RequestCancellationCommand files a customer's wish to cancel the order.
// The order freezes until staff decide.
type RequestCancellationCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	title   string
	reason  string

	guard guard.ConstructorGuard
}

// NewRequestCancellationCommand creates the command, requiring a title and reason.
func NewRequestCancellationCommand(orderID kernel.UUID, title string, reason string) (RequestCancellationCommand, error) {
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
	if len(e) > 0 {
		return RequestCancellationCommand{}, errors.Join(e...)
	}
	return RequestCancellationCommand{
		orderID: orderID,
		title:   title,
		reason:  reason,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestCancellationCommand) Validate() error {
	return c.guard.Validate(ErrRequestCancellationCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c RequestCancellationCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Title returns the short reason title.
func (c RequestCancellationCommand) Title() string {
	return c.title
}

// Reason returns the free-form explanation.
func (c RequestCancellationCommand) Reason() string {
	return c.reason
}

// RequestCancellationCommandHandler records the request and alerts the
// admin group.
type RequestCancellationCommandHandler struct {
	mutation orderMutation
}

// NewRequestCancellationCommandHandler creates the handler.
func NewRequestCancellationCommandHandler(uowFactory OrderUoWFactory, broadcaster *Broadcaster) RequestCancellationCommandHandler {
	return RequestCancellationCommandHandler{
		mutation: orderMutation{uowFactory: uowFactory, broadcaster: broadcaster},
	}
}

// Handle records the freeze and persists the fan-out.
func (h *RequestCancellationCommandHandler) Handle(ctx context.Context, cmd RequestCancellationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return h.mutation.apply(ctx, cmd.OrderID(), func(aggregate *order.Order) error {
		return aggregate.RequestCancellation(cmd.Title(), cmd.Reason(), time.Now())
	})
}
