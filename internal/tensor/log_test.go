package tensor

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStorageLifecycleLogging(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })

	x := Zeros[float32](Shape{2, 4})
	assert.Contains(t, buf.String(), `msg="tensor storage allocated" elements=8`)

	v := x.Clone()
	x.Release()
	assert.NotContains(t, buf.String(), "released")

	v.Release()
	assert.Contains(t, buf.String(), `msg="tensor storage released" elements=8`)
}

func TestSetLoggerNilDiscards(t *testing.T) {
	SetLogger(nil)
	assert.NotNil(t, logger())
	assert.False(t, logger().Enabled(t.Context(), slog.LevelError))
}
