package commands

import (
	"context"
	"errors"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/ports"
	"atelier/internal/pkg/guard"
)

var ErrMarkInTransitCommandIsNotConstructed = errors.New(
	"MarkInTransitCommand must be created via NewMarkInTransitCommand constructor",
)

// MarkInTransitCommand carries the shipping photo taken at courier
// handover.
type MarkInTransitCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	upload  Upload

	guard guard.ConstructorGuard
}

// NewMarkInTransitCommand validates the upload bounds and builds the command.
func NewMarkInTransitCommand(orderID kernel.UUID, upload Upload) (MarkInTransitCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		upload.validate(maxShippingUploadBytes),
	); err != nil {
		return MarkInTransitCommand{}, err
	}
	return MarkInTransitCommand{
		orderID: orderID,
		upload:  upload,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkInTransitCommand) Validate() error {
	return c.guard.Validate(ErrMarkInTransitCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c MarkInTransitCommand) OrderID() kernel.UUID {
	return c.orderID
}

// MarkInTransitCommandHandler moves the order into transit.
type MarkInTransitCommandHandler struct {
	mutation orderMutation
	blobs    ports.BlobStore
}

// NewMarkInTransitCommandHandler creates the handler.
func NewMarkInTransitCommandHandler(uowFactory OrderUoWFactory, blobs ports.BlobStore,
	broadcaster *Broadcaster) MarkInTransitCommandHandler {
	return MarkInTransitCommandHandler{
		mutation: orderMutation{uowFactory: uowFactory, broadcaster: broadcaster},
		blobs:    blobs,
	}
}

// Handle stores the blob first, then runs the transition inside the
// transaction that references it.
func (h *MarkInTransitCommandHandler) Handle(ctx context.Context, cmd MarkInTransitCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	img, err := storeUpload(ctx, h.blobs, cmd.OrderID(), order.ImageShipping, cmd.upload)
	if err != nil {
		return err
	}

	if err = h.mutation.apply(ctx, cmd.OrderID(), func(aggregate *order.Order) error {
		return aggregate.MarkInTransit(img, time.Now())
	}); err != nil {
		discardBlob(ctx, h.blobs, img)
		return err
	}
	return nil
}
