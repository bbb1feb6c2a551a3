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

var ErrAttachInvoiceCommandIsNotConstructed = errors.New(
	"AttachInvoiceCommand must be created via NewAttachInvoiceCommand constructor",
)

// AttachInvoiceCommand carries the invoice document issued after payment
// was received.
type AttachInvoiceCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	upload  Upload

	guard guard.ConstructorGuard
}

// NewAttachInvoiceCommand validates the upload bounds and builds the command.
func NewAttachInvoiceCommand(orderID kernel.UUID, upload Upload) (AttachInvoiceCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		upload.validate(maxDesignUploadBytes),
	); err != nil {
		return AttachInvoiceCommand{}, err
	}
	return AttachInvoiceCommand{
		orderID: orderID,
		upload:  upload,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AttachInvoiceCommand) Validate() error {
	return c.guard.Validate(ErrAttachInvoiceCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c AttachInvoiceCommand) OrderID() kernel.UUID {
	return c.orderID
}

// AttachInvoiceCommandHandler stores the invoice on the order without
// touching its status and discards any previously attached one.
type AttachInvoiceCommandHandler struct {
	mutation orderMutation
	blobs    ports.BlobStore
}

// NewAttachInvoiceCommandHandler creates the handler.
func NewAttachInvoiceCommandHandler(uowFactory OrderUoWFactory, blobs ports.BlobStore,
	broadcaster *Broadcaster) AttachInvoiceCommandHandler {
	return AttachInvoiceCommandHandler{
		mutation: orderMutation{uowFactory: uowFactory, broadcaster: broadcaster},
		blobs:    blobs,
	}
}

// Handle stores the blob first, then runs the transition inside the
// transaction that references it.
func (h *AttachInvoiceCommandHandler) Handle(ctx context.Context, cmd AttachInvoiceCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	img, err := storeUpload(ctx, h.blobs, cmd.OrderID(), order.ImageInvoice, cmd.upload)
	if err != nil {
		return err
	}

	var displaced order.Image
	err = h.mutation.apply(ctx, cmd.OrderID(), func(aggregate *order.Order) error {
		previous, err := aggregate.AttachInvoice(img, time.Now())
		displaced = previous
		return err
	})
	if err != nil {
		discardBlob(ctx, h.blobs, img)
		return err
	}

	discardBlob(ctx, h.blobs, displaced)
	return nil
}
