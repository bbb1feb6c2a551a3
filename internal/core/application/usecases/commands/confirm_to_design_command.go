package commands

import (
	"context"
	"errors"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/guard"
)

var ErrConfirmToDesignCommandIsNotConstructed = errors.New(
	"ConfirmToDesignCommand must be created via NewConfirmToDesignCommand constructor",
)

// ConfirmToDesignCommand asks the workflow to accept a freshly placed
// order and hand it to the designers.
type ConfirmToDesignCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewConfirmToDesignCommand creates the command for the given order.
func NewConfirmToDesignCommand(orderID kernel.UUID) (ConfirmToDesignCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ConfirmToDesignCommand{}, err
	}
	return ConfirmToDesignCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmToDesignCommand) Validate() error {
	return c.guard.Validate(ErrConfirmToDesignCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c ConfirmToDesignCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ConfirmToDesignCommandHandler moves a confirmed order into the design
// phase.
type ConfirmToDesignCommandHandler struct {
	mutation orderMutation
}

// NewConfirmToDesignCommandHandler creates the handler.
func NewConfirmToDesignCommandHandler(uowFactory OrderUoWFactory, broadcaster *Broadcaster) ConfirmToDesignCommandHandler {
	return ConfirmToDesignCommandHandler{
		mutation: orderMutation{uowFactory: uowFactory, broadcaster: broadcaster},
	}
}

// Handle loads the order, applies the transition and persists the result.
func (h *ConfirmToDesignCommandHandler) Handle(ctx context.Context, cmd ConfirmToDesignCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return h.mutation.apply(ctx, cmd.OrderID(), func(aggregate *order.Order) error {
		return aggregate.BeginDesign(time.Now())
	})
}
