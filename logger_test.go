package vertexid

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger(buf *bytes.Buffer) *Logger {
	return NewLogger(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestLogger_WithName(t *testing.T) {
	var buf bytes.Buffer
	l := newBufferLogger(&buf).WithName("web")

	l.Info("opened")
	assert.Contains(t, buf.String(), "name=web")
	assert.Contains(t, buf.String(), "msg=opened")
}

func TestLogger_WithTranslator(t *testing.T) {
	var buf bytes.Buffer
	tr, err := New(99999, 44)
	require.NoError(t, err)

	newBufferLogger(&buf).WithTranslator(tr).Info("translating")
	assert.Contains(t, buf.String(), "interval_length=99999")
	assert.Contains(t, buf.String(), "num_shards=44")
}

func TestLogger_Helpers(t *testing.T) {
	ctx := context.Background()
	tr, err := New(10, 2)
	require.NoError(t, err)

	t.Run("save", func(t *testing.T) {
		var buf bytes.Buffer
		l := newBufferLogger(&buf)
		l.LogSave(ctx, "web", tr, nil)
		l.LogSave(ctx, "web", tr, errors.New("disk full"))
		assert.Contains(t, buf.String(), "saved shard set")
		assert.Contains(t, buf.String(), "level=ERROR")
		assert.Contains(t, buf.String(), "disk full")
	})

	t.Run("batch", func(t *testing.T) {
		var buf bytes.Buffer
		l := newBufferLogger(&buf)
		l.LogBatchLoad(ctx, 3, 0)
		l.LogBatchLoad(ctx, 3, 1)
		assert.Contains(t, buf.String(), "batch load completed")
		assert.Contains(t, buf.String(), "failed=1")
		assert.Contains(t, buf.String(), "success=2")
	})
}

func TestLogger_Constructors(t *testing.T) {
	ctx := context.Background()

	json := NewJSONLogger(slog.LevelWarn)
	assert.True(t, json.Enabled(ctx, slog.LevelWarn))
	assert.False(t, json.Enabled(ctx, slog.LevelInfo))

	text := NewTextLogger(slog.LevelDebug)
	assert.True(t, text.Enabled(ctx, slog.LevelDebug))

	assert.NotNil(t, NewLogger(nil))
	assert.False(t, NoopLogger().Enabled(ctx, slog.LevelError))
}
