package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	t.Run("writes levelled lines under the name", func(t *testing.T) {
		var buf bytes.Buffer
		l, err := New("MAZE", "", &buf)
		require.NoError(t, err)

		l.Info("built maze")
		l.Warning("cache miss")
		l.Error("boom")

		out := buf.String()
		assert.Contains(t, out, "[MAZE] ")
		assert.Contains(t, out, "[INFO]"+LogColorReset+" built maze")
		assert.Contains(t, out, "[WARNING]"+LogColorReset+" cache miss")
		assert.Contains(t, out, "[ERROR]"+LogColorReset+" boom")
	})

	t.Run("colours the name", func(t *testing.T) {
		var buf bytes.Buffer
		l, err := New("APP", ColorCyan, &buf)
		require.NoError(t, err)

		l.Info("up")
		assert.Contains(t, buf.String(), ColorCyan+"[APP]"+ColorReset)
	})

	t.Run("nil writer", func(t *testing.T) {
		_, err := New("APP", ColorGreen, nil)
		assert.ErrorIs(t, err, ErrNilWriter)
	})

	t.Run("discard", func(t *testing.T) {
		assert.NotPanics(t, func() { Discard().Error("ignored") })
	})
}
