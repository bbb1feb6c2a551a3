// Package blob provides a filesystem-backed implementation of the BlobStore
// port. References are paths relative to the store root, so they stay valid
// when the root directory moves between environments.
package blob

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"atelier/internal/pkg/errs"

	"github.com/google/uuid"
)

// LocalStore stores blobs as files under a root directory.
type LocalStore struct {
	root string
}

// NewLocalStore creates a store rooted at the given directory, creating it
// when missing.
func NewLocalStore(root string) (*LocalStore, error) {
	if strings.TrimSpace(root) == "" {
		return nil, errs.NewValueIsRequiredError("root")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create blob root: %w", err)
	}
	return &LocalStore{root: root}, nil
}

// Put stores the bytes and returns the reference to retrieve them later.
// The suggested name keeps its directory structure and extension; the base
// name is replaced with a generated one so concurrent uploads never collide.
func (s *LocalStore) Put(_ context.Context, suggestedName string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", errs.NewValueIsRequiredError("data")
	}

	ref := s.refFor(suggestedName)
	path := filepath.Join(s.root, filepath.FromSlash(ref))

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create blob directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write blob: %w", err)
	}

	return ref, nil
}

// Delete removes the blob behind the reference. A missing blob is not an
// error.
func (s *LocalStore) Delete(_ context.Context, ref string) error {
	path, err := s.resolve(ref)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("delete blob: %w", err)
	}
	return nil
}

// Exists reports whether the reference resolves to a stored blob.
func (s *LocalStore) Exists(_ context.Context, ref string) (bool, error) {
	path, err := s.resolve(ref)
	if err != nil {
		return false, err
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Open returns the stored bytes for serving.
func (s *LocalStore) Open(_ context.Context, ref string) ([]byte, error) {
	path, err := s.resolve(ref)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errs.NewObjectNotFoundError("blob", ref)
		}
		return nil, err
	}
	return data, nil
}

func (s *LocalStore) refFor(suggestedName string) string {
	dir := ""
	ext := ""
	if suggestedName != "" {
		cleaned := filepath.ToSlash(filepath.Clean(suggestedName))
		cleaned = strings.TrimPrefix(cleaned, "/")
		if idx := strings.LastIndex(cleaned, "/"); idx >= 0 {
			dir = cleaned[:idx]
		}
		ext = filepath.Ext(cleaned)
	}

	name := uuid.NewString() + ext
	if dir == "" || strings.HasPrefix(dir, "..") {
		return name
	}
	return dir + "/" + name
}

// resolve maps a reference to an absolute path, rejecting anything that
// would escape the store root.
func (s *LocalStore) resolve(ref string) (string, error) {
	if strings.TrimSpace(ref) == "" {
		return "", errs.NewValueIsRequiredError("ref")
	}
	cleaned := filepath.Clean(filepath.FromSlash(ref))
	if strings.HasPrefix(cleaned, "..") || filepath.IsAbs(cleaned) {
		return "", errs.NewValueIsInvalidError("ref")
	}
	return filepath.Join(s.root, cleaned), nil
}
