package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeometricIDs(t *testing.T) {
	ids := GeometricIDs(100)

	assert.Equal(t, []uint64{0, 1, 3, 7, 15, 31, 63}, ids)
	assert.Empty(t, GeometricIDs(0))
}

func TestConfigGrid(t *testing.T) {
	grid := ConfigGrid()
	require.NotEmpty(t, grid)

	for _, cfg := range grid {
		assert.Positive(t, cfg.IntervalLength)
		assert.Less(t, cfg.NumShards, 100)
		// Every configuration holds the full ten million id sweep.
		assert.Greater(t, cfg.IntervalLength*cfg.NumShards, 10_000_000)
	}
}

func TestRNGIDs(t *testing.T) {
	rng := NewRNG(4711)

	ids := rng.IDs(50, 1000)

	require.Len(t, ids, 50)
	for i := 1; i < len(ids); i++ {
		assert.Less(t, ids[i-1], ids[i])
	}
	assert.Less(t, ids[len(ids)-1], uint64(1000))

	rng.Reset()
	assert.Equal(t, ids, rng.IDs(50, 1000))
}

func TestRNGUint64n(t *testing.T) {
	rng := NewRNG(42)

	for i := 0; i < 1000; i++ {
		assert.Less(t, rng.Uint64n(7), uint64(7))
		assert.Less(t, rng.Uint64n(8), uint64(8))
	}
}
