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

var ErrMarkProductReadyCommandIsNotConstructed = errors.New(
	"MarkProductReadyCommand must be created via NewMarkProductReadyCommand constructor",
)

// MarkProductReadyCommand carries the finished-product photo taken by the
// manufacturer.
type MarkProductReadyCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	upload  Upload

	guard guard.ConstructorGuard
}

// NewMarkProductReadyCommand validates the upload bounds and builds the command.
func NewMarkProductReadyCommand(orderID kernel.UUID, upload Upload) (MarkProductReadyCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		upload.validate(maxPhotoUploadBytes),
	); err != nil {
		return MarkProductReadyCommand{}, err
	}
	return MarkProductReadyCommand{
		orderID: orderID,
		upload:  upload,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkProductReadyCommand) Validate() error {
	return c.guard.Validate(ErrMarkProductReadyCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c MarkProductReadyCommand) OrderID() kernel.UUID {
	return c.orderID
}

// MarkProductReadyCommandHandler finishes production: it stores the photo,
// stamps the production date and alerts courier, admin and customer.
type MarkProductReadyCommandHandler struct {
	mutation orderMutation
	blobs    ports.BlobStore
}

// NewMarkProductReadyCommandHandler creates the handler.
func NewMarkProductReadyCommandHandler(uowFactory OrderUoWFactory, blobs ports.BlobStore,
	broadcaster *Broadcaster) MarkProductReadyCommandHandler {
	return MarkProductReadyCommandHandler{
		mutation: orderMutation{uowFactory: uowFactory, broadcaster: broadcaster},
		blobs:    blobs,
	}
}

// Handle stores the blob first, then runs the transition inside the
// transaction that references it.
func (h *MarkProductReadyCommandHandler) Handle(ctx context.Context, cmd MarkProductReadyCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	img, err := storeUpload(ctx, h.blobs, cmd.OrderID(), order.ImageProductReady, cmd.upload)
	if err != nil {
		return err
	}

	if err = h.mutation.apply(ctx, cmd.OrderID(), func(aggregate *order.Order) error {
		return aggregate.MarkProductReady(img, time.Now())
	}); err != nil {
		discardBlob(ctx, h.blobs, img)
		return err
	}
	return nil
}
