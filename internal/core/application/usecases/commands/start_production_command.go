package commands

import (
	"context"
	"errors"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/guard"
)

var ErrStartProductionCommandIsNotConstructed = errors.New(
	"StartProductionCommand must be created via NewStartProductionCommand constructor",
)

// StartProductionCommand is issued by the assigned manufacturer when work
// begins. The acting identity travels with the command because the domain
// checks it against the assignment.
type StartProductionCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   kernel.Actor

	guard guard.ConstructorGuard
}

// NewStartProductionCommand creates the command.
func NewStartProductionCommand(orderID kernel.UUID, actor kernel.Actor) (StartProductionCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		actor.Validate(),
	); err != nil {
		return StartProductionCommand{}, err
	}
	return StartProductionCommand{
		orderID: orderID,
		actor:   actor,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c StartProductionCommand) Validate() error {
	return c.guard.Validate(ErrStartProductionCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c StartProductionCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the acting identity.
func (c StartProductionCommand) Actor() kernel.Actor {
	return c.actor
}

// StartProductionCommandHandler moves an assigned order into production.
type StartProductionCommandHandler struct {
	mutation orderMutation
}

// NewStartProductionCommandHandler creates the handler.
func NewStartProductionCommandHandler(uowFactory OrderUoWFactory, broadcaster *Broadcaster) StartProductionCommandHandler {
	return StartProductionCommandHandler{
		mutation: orderMutation{uowFactory: uowFactory, broadcaster: broadcaster},
	}
}

// Handle applies the transition on behalf of the acting manufacturer.
func (h *StartProductionCommandHandler) Handle(ctx context.Context, cmd StartProductionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return h.mutation.apply(ctx, cmd.OrderID(), func(aggregate *order.Order) error {
		return aggregate.StartProduction(cmd.Actor(), time.Now())
	})
}
