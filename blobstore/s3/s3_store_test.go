package s3

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/hupe1980/vertexid/blobstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegration_S3Store(t *testing.T) {
	bucket := os.Getenv("S3_BUCKET")
	if bucket == "" {
		t.Skip("Skipping S3 integration test: S3_BUCKET not set")
	}

	ctx := context.Background()

	// Create a unique prefix for this test run
	prefix := fmt.Sprintf("test-vertexid-%d/", time.Now().UnixNano())
	store, err := NewFromDefaultConfig(ctx, bucket, prefix)
	require.NoError(t, err)

	name := "graph/SHARDS"
	data := []byte("vertex_interval_length=99999\nnumShards=44\n")

	require.NoError(t, store.PutIfAbsent(ctx, name, data))
	assert.ErrorIs(t, store.PutIfAbsent(ctx, name, data), blobstore.ErrExists)

	got, err := store.Get(ctx, name)
	require.NoError(t, err)
	assert.Equal(t, data, got)

	names, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Contains(t, names, name)

	require.NoError(t, store.Delete(ctx, name))
	_, err = store.Get(ctx, name)
	assert.ErrorIs(t, err, blobstore.ErrNotFound)
}
