package blobstore

import (
	"context"
	"errors"
)

// PutIfAbsent creates name unless it exists. Stores implementing
// ConditionalPutter do this atomically; for all others the existence check
// and the write are separate requests and concurrent creators can race.
func PutIfAbsent(ctx context.Context, store BlobStore, name string, data []byte) error {
	if cp, ok := store.(ConditionalPutter); ok {
		return cp.PutIfAbsent(ctx, name, data)
	}

	_, err := store.Get(ctx, name)
	switch {
	case err == nil:
		return ErrExists
	case !errors.Is(err, ErrNotFound):
		return err
	}
	return store.Put(ctx, name, data)
}
