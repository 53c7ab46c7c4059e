//go:build amd64 || arm64

package conv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPositiveToUint64(t *testing.T) {
	t.Run("valid one", func(t *testing.T) {
		got, err := PositiveToUint64(1)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), got)
	})

	t.Run("valid max int", func(t *testing.T) {
		got, err := PositiveToUint64(math.MaxInt)
		require.NoError(t, err)
		assert.Equal(t, uint64(math.MaxInt), got)
	})

	t.Run("invalid zero", func(t *testing.T) {
		_, err := PositiveToUint64(0)
		assert.Error(t, err)
	})

	t.Run("invalid negative", func(t *testing.T) {
		_, err := PositiveToUint64(-7)
		assert.Error(t, err)
	})
}

func TestMulUint64(t *testing.T) {
	t.Run("small", func(t *testing.T) {
		got, err := MulUint64(99999, 44)
		require.NoError(t, err)
		assert.Equal(t, uint64(4399956), got)
	})

	t.Run("exact max", func(t *testing.T) {
		got, err := MulUint64(math.MaxUint64, 1)
		require.NoError(t, err)
		assert.Equal(t, uint64(math.MaxUint64), got)
	})

	t.Run("overflow", func(t *testing.T) {
		_, err := MulUint64(1<<32, 1<<32)
		assert.Error(t, err)
	})
}

func TestIntToUint32(t *testing.T) {
	t.Run("valid zero", func(t *testing.T) {
		got, err := IntToUint32(0)
		assert.NoError(t, err)
		assert.Equal(t, uint32(0), got)
	})

	t.Run("invalid negative", func(t *testing.T) {
		_, err := IntToUint32(-1)
		assert.Error(t, err)
	})

	t.Run("invalid too large", func(t *testing.T) {
		_, err := IntToUint32(math.MaxUint32 + 1)
		assert.Error(t, err)
	})
}

func TestUint32ToInt(t *testing.T) {
	got, err := Uint32ToInt(math.MaxUint32)
	// On 64-bit (amd64/arm64), MaxUint32 fits in int
	assert.NoError(t, err)
	assert.Equal(t, int(math.MaxUint32), got)
}
