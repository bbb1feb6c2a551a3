package commands

import (
	"context"
	"errors"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

var ErrSelectManufacturerCommandIsNotConstructed = errors.New(
	"SelectManufacturerCommand must be created via NewSelectManufacturerCommand constructor",
)

// SelectManufacturerCommand assigns a manufacturer to a paid order.
type SelectManufacturerCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	manufacturerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewSelectManufacturerCommand creates the command.
func NewSelectManufacturerCommand(orderID kernel.UUID, manufacturerID kernel.UUID) (SelectManufacturerCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		manufacturerID.Validate(),
	); err != nil {
		return SelectManufacturerCommand{}, err
	}
	return SelectManufacturerCommand{
		orderID:        orderID,
		manufacturerID: manufacturerID,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SelectManufacturerCommand) Validate() error {
	return c.guard.Validate(ErrSelectManufacturerCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c SelectManufacturerCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ManufacturerID returns the chosen manufacturer's identifier.
func (c SelectManufacturerCommand) ManufacturerID() kernel.UUID {
	return c.manufacturerID
}

// SelectManufacturerCommandHandler verifies the manufacturer exists, assigns
// it and schedules the production window. It needs the identity lookup, so
// it runs on the wider unit of work.
type SelectManufacturerCommandHandler struct {
	uowFactory  UoWFactory
	schedule    order.ProductionSchedule
	broadcaster *Broadcaster
}

// NewSelectManufacturerCommandHandler creates the handler with the
// production schedule from configuration.
func NewSelectManufacturerCommandHandler(uowFactory UoWFactory, schedule order.ProductionSchedule,
	broadcaster *Broadcaster) SelectManufacturerCommandHandler {
	return SelectManufacturerCommandHandler{
		uowFactory:  uowFactory,
		schedule:    schedule,
		broadcaster: broadcaster,
	}
}

// Handle checks the referenced user, then applies the assignment with a
// guarded update.
func (h *SelectManufacturerCommandHandler) Handle(ctx context.Context, cmd SelectManufacturerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	exists, err := uow.UserRepository().ExistsWithRole(ctx, cmd.ManufacturerID(), kernel.RoleManufacturer)
	if err != nil {
		return err
	}
	if !exists {
		return errs.NewObjectNotFoundError("manufacturerID", cmd.ManufacturerID())
	}

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	expectedStatus := aggregate.Status()
	expectedRejection := aggregate.Rejection()

	if err = aggregate.SelectManufacturer(cmd.ManufacturerID(), h.schedule, time.Now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate, expectedStatus, expectedRejection); err != nil {
		return err
	}

	queued := aggregate.PendingNotifications()
	if err = uow.NotificationRepository().Add(ctx, queued); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if h.broadcaster != nil {
		h.broadcaster.Broadcast(ctx, queued)
	}
	return nil
}
