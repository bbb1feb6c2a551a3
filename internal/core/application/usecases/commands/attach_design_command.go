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

var ErrAttachDesignCommandIsNotConstructed = errors.New(
	"AttachDesignCommand must be created via NewAttachDesignCommand constructor",
)

// AttachDesignCommand carries the design file a designer prepared for the
// order.
type AttachDesignCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	upload  Upload

	guard guard.ConstructorGuard
}

// NewAttachDesignCommand validates the upload bounds and builds the command.
func NewAttachDesignCommand(orderID kernel.UUID, upload Upload) (AttachDesignCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		upload.validate(maxDesignUploadBytes),
	); err != nil {
		return AttachDesignCommand{}, err
	}
	return AttachDesignCommand{
		orderID: orderID,
		upload:  upload,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AttachDesignCommand) Validate() error {
	return c.guard.Validate(ErrAttachDesignCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c AttachDesignCommand) OrderID() kernel.UUID {
	return c.orderID
}

// AttachDesignCommandHandler stores the design and moves the order to
// DesignAdded. A design attached over an existing one replaces it; the
// displaced blob is removed after the transaction commits.
type AttachDesignCommandHandler struct {
	mutation orderMutation
	blobs    ports.BlobStore
}

// NewAttachDesignCommandHandler creates the handler.
func NewAttachDesignCommandHandler(uowFactory OrderUoWFactory, blobs ports.BlobStore,
	broadcaster *Broadcaster) AttachDesignCommandHandler {
	return AttachDesignCommandHandler{
		mutation: orderMutation{uowFactory: uowFactory, broadcaster: broadcaster},
		blobs:    blobs,
	}
}

// Handle stores the blob first, then runs the transition inside the
// transaction that references it.
func (h *AttachDesignCommandHandler) Handle(ctx context.Context, cmd AttachDesignCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	img, err := storeUpload(ctx, h.blobs, cmd.OrderID(), order.ImageDesign, cmd.upload)
	if err != nil {
		return err
	}

	var displaced order.Image
	err = h.mutation.apply(ctx, cmd.OrderID(), func(aggregate *order.Order) error {
		previous, err := aggregate.AttachDesign(img, time.Now())
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
