package manifest

import (
	"math"
	"testing"
	"time"

	"github.com/hupe1980/vertexid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testManifest(t *testing.T, name string) *Manifest {
	t.Helper()
	tr, err := vertexid.New(1000, 4)
	require.NoError(t, err)
	m, err := New(name, tr, 3500)
	require.NoError(t, err)
	return m
}

func TestManifest_BinaryRoundTrip(t *testing.T) {
	m := testManifest(t, "web/2026")
	m.CreatedAt = time.Date(2026, 3, 1, 12, 0, 0, 42, time.UTC)

	data, err := m.MarshalBinary()
	require.NoError(t, err)

	var got Manifest
	require.NoError(t, got.UnmarshalBinary(data))
	assert.Equal(t, m.Name, got.Name)
	assert.True(t, m.Translator.Equal(got.Translator))
	assert.Equal(t, m.VertexCount, got.VertexCount)
	assert.True(t, m.CreatedAt.Equal(got.CreatedAt))
}

func TestManifest_IdentityTranslator(t *testing.T) {
	m, err := New("plain", vertexid.Identity(), 1<<40)
	require.NoError(t, err)

	data, err := m.MarshalBinary()
	require.NoError(t, err)

	var got Manifest
	require.NoError(t, got.UnmarshalBinary(data))
	assert.True(t, got.Translator.IsIdentity())
}

func TestManifest_ZeroCreatedAt(t *testing.T) {
	tr, err := vertexid.New(1000, 4)
	require.NoError(t, err)

	for _, created := range []time.Time{{}, time.Unix(0, 0).UTC()} {
		m := Manifest{Name: "web", Translator: tr, CreatedAt: created}

		data, err := m.MarshalBinary()
		require.NoError(t, err)

		var got Manifest
		require.NoError(t, got.UnmarshalBinary(data))
		assert.Equal(t, created.IsZero(), got.CreatedAt.IsZero())
		assert.True(t, created.Equal(got.CreatedAt), "%s", created)
	}
}

func TestManifest_Validate(t *testing.T) {
	tr, err := vertexid.New(10, 2)
	require.NoError(t, err)

	t.Run("vertex count at capacity", func(t *testing.T) {
		_, err := New("g", tr, 20)
		assert.NoError(t, err)
	})

	t.Run("vertex count over capacity", func(t *testing.T) {
		_, err := New("g", tr, 21)
		assert.ErrorIs(t, err, vertexid.ErrConfiguration)
	})

	t.Run("creation time out of range", func(t *testing.T) {
		m := Manifest{Name: "g", Translator: tr, CreatedAt: time.Date(3000, 1, 1, 0, 0, 0, 0, time.UTC)}
		assert.ErrorIs(t, m.Validate(), ErrInvalidTime)

		m.CreatedAt = time.Unix(0, math.MinInt64)
		assert.ErrorIs(t, m.Validate(), ErrInvalidTime)
	})

	t.Run("zero translator", func(t *testing.T) {
		_, err := New("g", vertexid.Translator{}, 0)
		assert.ErrorIs(t, err, vertexid.ErrConfiguration)
	})
}

func TestValidateName(t *testing.T) {
	for _, name := range []string{"web", "web/2026", "a.b-c_d"} {
		assert.NoError(t, ValidateName(name), name)
	}
	for _, name := range []string{"", "/web", "web/", "a//b", "..", "a/./b", "a/SHARDS", string(make([]byte, 256))} {
		assert.ErrorIs(t, ValidateName(name), ErrInvalidName, "%q", name)
	}
}

func TestManifest_UnmarshalCorrupt(t *testing.T) {
	data, err := testManifest(t, "web").MarshalBinary()
	require.NoError(t, err)

	t.Run("short", func(t *testing.T) {
		var m Manifest
		assert.ErrorIs(t, m.UnmarshalBinary(data[:10]), ErrCorrupt)
	})

	t.Run("truncated payload", func(t *testing.T) {
		var m Manifest
		assert.ErrorIs(t, m.UnmarshalBinary(data[:len(data)-1]), ErrCorrupt)
	})

	t.Run("bad magic", func(t *testing.T) {
		bad := append([]byte(nil), data...)
		bad[0] ^= 0xFF
		var m Manifest
		assert.ErrorIs(t, m.UnmarshalBinary(bad), ErrCorrupt)
	})

	t.Run("future version", func(t *testing.T) {
		bad := append([]byte(nil), data...)
		bad[4] = 2
		var m Manifest
		assert.ErrorIs(t, m.UnmarshalBinary(bad), ErrIncompatibleVersion)
	})

	t.Run("flipped payload bit", func(t *testing.T) {
		bad := append([]byte(nil), data...)
		bad[len(bad)-1] ^= 0x01
		var m Manifest
		assert.ErrorIs(t, m.UnmarshalBinary(bad), ErrCorrupt)
	})

	t.Run("keeps receiver on error", func(t *testing.T) {
		m := Manifest{Name: "keep"}
		require.Error(t, m.UnmarshalBinary(data[:10]))
		assert.Equal(t, "keep", m.Name)
	})
}

func TestNameFromKey(t *testing.T) {
	tests := []struct {
		prefix, key string
		name        string
		ok          bool
	}{
		{"", "web/SHARDS", "web", true},
		{"graphs/", "graphs/web/2026/SHARDS", "web/2026", true},
		{"graphs/", "graphs/web/part-0", "", false},
		{"graphs/", "other/web/SHARDS", "", false},
		{"", "SHARDS", "", false},
	}
	for _, tt := range tests {
		name, ok := nameFromKey(tt.prefix, tt.key)
		assert.Equal(t, tt.ok, ok, tt.key)
		assert.Equal(t, tt.name, name, tt.key)
	}
}
