package commands

import (
	"context"
	"fmt"
	"path"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/ports"
	"atelier/internal/pkg/errs"
)

// Upload size ceilings in bytes per evidence kind.
const (
	maxDesignUploadBytes   = 10 << 20
	maxPhotoUploadBytes    = 10 << 20
	maxShippingUploadBytes = 50 << 20
)

// Upload carries the raw bytes of an evidence file handed in with a command.
// The media type whitelist per image kind is enforced by the order
// aggregate; commands only bound the size.
type Upload struct {
	FileName string
	MimeType string
	Data     []byte
}

func (u Upload) validate(maxBytes int) error {
	if len(u.Data) == 0 {
		return errs.NewValueIsRequiredError("file")
	}
	if u.MimeType == "" {
		return errs.NewValueIsRequiredError("mimeType")
	}
	if len(u.Data) > maxBytes {
		return errs.NewValueIsOutOfRangeError("fileSize", len(u.Data), 1, maxBytes)
	}
	return nil
}

// storeUpload writes the bytes to the blob store and wraps them in a domain
// image reference. The blob is written before the transaction that flips
// the status; an orphan on a later rollback is acceptable.
func storeUpload(ctx context.Context, blobs ports.BlobStore, orderID kernel.UUID,
	kind order.ImageKind, upload Upload) (order.Image, error) {
	suggested := fmt.Sprintf("%s/%s/%s", kind, orderID, path.Base(upload.FileName))
	ref, err := blobs.Put(ctx, suggested, upload.Data)
	if err != nil {
		return order.Image{}, errs.NewStorageFailureError("store "+kind.String()+" upload", err)
	}
	return order.NewImage(kind, ref, upload.MimeType)
}

// discardBlob removes a blob reference best effort. Used to clean up the
// previous image after a replace commits; a leftover blob is harmless.
func discardBlob(ctx context.Context, blobs ports.BlobStore, img order.Image) {
	if img.IsEmpty() {
		return
	}
	_ = blobs.Delete(ctx, img.Ref())
}
