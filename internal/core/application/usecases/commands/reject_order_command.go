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

var ErrRejectOrderCommandIsNotConstructed = errors.New(
	"RejectOrderCommand must be created via NewRejectOrderCommand constructor",
)

// RejectOrderCommand freezes an order as rejected by staff, with a titled
// reason that stays on record.
type RejectOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	title   string
	reason  string

	guard guard.ConstructorGuard
}

// NewRejectOrderCommand creates the command, requiring a title and reason.
func NewRejectOrderCommand(orderID kernel.UUID, title string, reason string) (RejectOrderCommand, error) {
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
		return RejectOrderCommand{}, errors.Join(e...)
	}
	return RejectOrderCommand{
		orderID: orderID,
		title:   title,
		reason:  reason,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectOrderCommand) Validate() error {
	return c.guard.Validate(ErrRejectOrderCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c RejectOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Title returns the short reason title.
func (c RejectOrderCommand) Title() string {
	return c.title
}

// Reason returns the free-form explanation.
func (c RejectOrderCommand) Reason() string {
	return c.reason
}

// RejectOrderCommandHandler rejects the order and fans the news out to
// everyone involved at the current stage.
type RejectOrderCommandHandler struct {
	mutation orderMutation
}

// NewRejectOrderCommandHandler creates the handler.
func NewRejectOrderCommandHandler(uowFactory OrderUoWFactory, broadcaster *Broadcaster) RejectOrderCommandHandler {
	return RejectOrderCommandHandler{
		mutation: orderMutation{uowFactory: uowFactory, broadcaster: broadcaster},
	}
}

// Handle records the freeze and persists the fan-out.
func (h *RejectOrderCommandHandler) Handle(ctx context.Context, cmd RejectOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return h.mutation.apply(ctx, cmd.OrderID(), func(aggregate *order.Order) error {
		return aggregate.Reject(cmd.Title(), cmd.Reason(), time.Now())
	})
}
