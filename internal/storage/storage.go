package storage

import (
	"context"
	"errors"

	"docboard/internal/model"
)

// Package storage contains the document blob store abstraction and its
// implementations. A blob is an opaque byte sequence stored under a single
// id; metadata is re-derived from the backend on every read.

var (
	// ErrNotFound signals that no blob exists under the requested id.
	// It is a value, not a fault: callers are expected to branch on it.
	ErrNotFound = errors.New("blob not found")
	// ErrInvalidID signals an id that could escape the storage root
	// (path separators, "..", empty string).
	ErrInvalidID = errors.New("invalid blob id")
)

// BlobStore is the injected storage abstraction over a flat namespace of
// document blobs. Implementations must not cache metadata: after any
// successful write the returned Document reflects the backend state.
//
// Concurrency: implementations provide no locking; concurrent writes to the
// same id race with last-write-wins semantics.
type BlobStore interface {
	// List returns metadata for every stored blob. Enumeration order is
	// backend-defined; only set membership is guaranteed.
	List(ctx context.Context) ([]model.Document, error)
	// Stat returns metadata for a single blob, or ErrNotFound.
	Stat(ctx context.Context, id string) (*model.Document, error)
	// Get returns metadata and the full content of a blob, or ErrNotFound.
	Get(ctx context.Context, id string) (*model.Document, []byte, error)
	// Create sanitizes name, normalizes ext, composes id and writes data
	// verbatim (zero-length allowed). An existing blob under the same id is
	// silently overwritten (last-write-wins collision policy).
	Create(ctx context.Context, name, ext string, data []byte) (*model.Document, error)
	// Update replaces the full content of an existing blob. It returns
	// ErrNotFound without writing anything if the id does not exist.
	Update(ctx context.Context, id string, data []byte) (*model.Document, error)
	// Delete removes a blob, or returns ErrNotFound.
	Delete(ctx context.Context, id string) error
}
