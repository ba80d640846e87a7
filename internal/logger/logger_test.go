package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter(t *testing.T) {
	t.Run("json format writes structured lines", func(t *testing.T) {
		var buf bytes.Buffer
		log, err := NewWithWriter(&buf, "info", "json")
		require.NoError(t, err)

		log.Info().Str("prompt", "cat").Msg("generating")
		assert.Contains(t, buf.String(), `"prompt":"cat"`)
		assert.Contains(t, buf.String(), `"message":"generating"`)
	})

	t.Run("level filters lower events", func(t *testing.T) {
		var buf bytes.Buffer
		log, err := NewWithWriter(&buf, "warn", "json")
		require.NoError(t, err)

		log.Info().Msg("hidden")
		assert.Empty(t, buf.String())
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := NewWithWriter(&bytes.Buffer{}, "info", "xml")
		assert.Error(t, err)
	})

	t.Run("unknown level", func(t *testing.T) {
		_, err := NewWithWriter(&bytes.Buffer{}, "loud", "json")
		assert.Error(t, err)
	})
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "abc...", Truncate("abcdef", 3))
	assert.Equal(t, "ягу...", Truncate("ягуар", 3))
}
