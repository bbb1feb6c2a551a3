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

var ErrUpdateDesignCommandIsNotConstructed = errors.New(
	"UpdateDesignCommand must be created via NewUpdateDesignCommand constructor",
)

// UpdateDesignCommand swaps the design on an order that already sits at
// DesignAdded, without advancing the status.
type UpdateDesignCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	upload  Upload

	guard guard.ConstructorGuard
}

// NewUpdateDesignCommand validates the upload bounds and builds the command.
func NewUpdateDesignCommand(orderID kernel.UUID, upload Upload) (UpdateDesignCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		upload.validate(maxDesignUploadBytes),
	); err != nil {
		return UpdateDesignCommand{}, err
	}
	return UpdateDesignCommand{
		orderID: orderID,
		upload:  upload,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDesignCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDesignCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c UpdateDesignCommand) OrderID() kernel.UUID {
	return c.orderID
}

// UpdateDesignCommandHandler replaces the current design image and cleans
// up the displaced blob once the swap is committed.
type UpdateDesignCommandHandler struct {
	mutation orderMutation
	blobs    ports.BlobStore
}

// NewUpdateDesignCommandHandler creates the handler.
func NewUpdateDesignCommandHandler(uowFactory OrderUoWFactory, blobs ports.BlobStore,
	broadcaster *Broadcaster) UpdateDesignCommandHandler {
	return UpdateDesignCommandHandler{
		mutation: orderMutation{uowFactory: uowFactory, broadcaster: broadcaster},
		blobs:    blobs,
	}
}

// Handle stores the blob first, then runs the transition inside the
// transaction that references it.
func (h *UpdateDesignCommandHandler) Handle(ctx context.Context, cmd UpdateDesignCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	img, err := storeUpload(ctx, h.blobs, cmd.OrderID(), order.ImageDesign, cmd.upload)
	if err != nil {
		return err
	}

	var displaced order.Image
	err = h.mutation.apply(ctx, cmd.OrderID(), func(aggregate *order.Order) error {
		previous, err := aggregate.ReplaceDesign(img, time.Now())
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
