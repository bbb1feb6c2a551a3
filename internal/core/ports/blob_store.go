package ports

import "context"

// BlobStore stores uploaded evidence images. Orders keep only the returned
// references. Blobs are written before the database transaction that flips
// the status commits; an orphaned blob is acceptable, a status flip without
// its evidence image is not.
type BlobStore interface {
	// Put stores the bytes and returns a reference to retrieve them later.
	// The suggested name is advisory; the store may derive its own key.
	Put(ctx context.Context, suggestedName string, data []byte) (string, error)

	// Delete removes the blob behind the reference. Deleting a missing
	// blob is not an error.
	Delete(ctx context.Context, ref string) error

	// Exists reports whether the reference resolves to a stored blob.
	Exists(ctx context.Context, ref string) (bool, error)
}
