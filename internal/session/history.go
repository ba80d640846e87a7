package session

import (
	"math"
	"sync"

	"github.com/kdduha/jaguar-studio/internal/models"
	"github.com/samber/lo"
)

// History keeps the results generated during the current session, newest first.
// Nothing is persisted.
type History struct {
	mu    sync.RWMutex
	items []models.GenerationResult
}

func NewHistory() *History {
	return &History{}
}

// Prepend records result as the newest entry.
func (h *History) Prepend(result models.GenerationResult) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.items = append([]models.GenerationResult{result}, h.items...)
}

// All returns a copy of the entries, newest first.
func (h *History) All() []models.GenerationResult {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return append([]models.GenerationResult(nil), h.items...)
}

// At returns the entry at index i, where 0 is the newest.
func (h *History) At(i int) (models.GenerationResult, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if i < 0 || i >= len(h.items) {
		return models.GenerationResult{}, false
	}
	return h.items[i], true
}

func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.items)
}

func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.items = nil
}

type Stats struct {
	Count int `json:"count"`
	// AverageGenerationTime is in seconds, rounded to one decimal.
	AverageGenerationTime float64 `json:"average_generation_time"`
}

func (h *History) Stats() Stats {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if len(h.items) == 0 {
		return Stats{}
	}
	total := lo.Sum(lo.Map(h.items, func(r models.GenerationResult, _ int) float64 {
		return r.GenerationTime
	}))
	return Stats{
		Count:                 len(h.items),
		AverageGenerationTime: math.Round(total/float64(len(h.items))*10) / 10,
	}
}
