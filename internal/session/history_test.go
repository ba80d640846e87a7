package session

import (
	"testing"

	"github.com/kdduha/jaguar-studio/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func result(prompt string, seconds float64) models.GenerationResult {
	return models.GenerationResult{
		Image:          "QQ==",
		Parameters:     models.ResultParameters{Prompt: prompt},
		GenerationTime: seconds,
	}
}

func TestHistory(t *testing.T) {
	h := NewHistory()
	assert.Equal(t, 0, h.Len())
	assert.Equal(t, Stats{}, h.Stats())

	h.Prepend(result("first", 1.0))
	h.Prepend(result("second", 2.0))
	h.Prepend(result("third", 1.25))

	t.Run("newest first", func(t *testing.T) {
		all := h.All()
		require.Len(t, all, 3)
		assert.Equal(t, "third", all[0].Parameters.Prompt)
		assert.Equal(t, "first", all[2].Parameters.Prompt)
	})

	t.Run("At bounds", func(t *testing.T) {
		got, ok := h.At(1)
		require.True(t, ok)
		assert.Equal(t, "second", got.Parameters.Prompt)

		_, ok = h.At(3)
		assert.False(t, ok)
		_, ok = h.At(-1)
		assert.False(t, ok)
	})

	t.Run("All returns a copy", func(t *testing.T) {
		all := h.All()
		all[0].Parameters.Prompt = "mutated"
		got, _ := h.At(0)
		assert.Equal(t, "third", got.Parameters.Prompt)
	})

	t.Run("stats", func(t *testing.T) {
		stats := h.Stats()
		assert.Equal(t, 3, stats.Count)
		assert.Equal(t, 1.4, stats.AverageGenerationTime)
	})

	t.Run("clear", func(t *testing.T) {
		h.Clear()
		assert.Equal(t, 0, h.Len())
		assert.Empty(t, h.All())
	})
}
