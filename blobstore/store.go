package blobstore

import (
	"context"
	"errors"
	"os"
)

// ErrNotFound is returned when a blob does not exist.
//
// Implementations should return an error that satisfies `errors.Is(err, ErrNotFound)`.
// The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// ErrExists is returned by PutIfAbsent when the blob is already present.
var ErrExists = os.ErrExist

// ErrInvalidName is returned for names a store cannot address, such as paths
// leaving a LocalStore's root.
var ErrInvalidName = errors.New("invalid blob name")

// BlobStore is an abstraction for reading and writing small, whole blobs
// (shard-set manifests, descriptors).
// Implementations must be safe for concurrent use.
type BlobStore interface {
	// Get returns the full content of a blob.
	Get(ctx context.Context, name string) ([]byte, error)
	// Put writes a blob atomically, replacing any previous content.
	Put(ctx context.Context, name string, data []byte) error
	// Delete removes a blob. Deleting a missing blob is not an error.
	Delete(ctx context.Context, name string) error
	// List returns the sorted names of all blobs starting with prefix.
	List(ctx context.Context, prefix string) ([]string, error)
}

// ConditionalPutter is an optional interface for stores that can create a
// blob only if it does not exist yet, atomically.
type ConditionalPutter interface {
	// PutIfAbsent writes the blob unless it exists, in which case it returns
	// an error satisfying errors.Is(err, ErrExists).
	PutIfAbsent(ctx context.Context, name string, data []byte) error
}
