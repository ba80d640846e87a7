package models

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// BatchParameters describes a multi-prompt request. The remote service accepts it,
// but nothing in this application submits one yet; only validation is provided.
type BatchParameters struct {
	Prompts       []string `json:"prompts"`
	Height        *int     `json:"height,omitempty"`
	Width         *int     `json:"width,omitempty"`
	GuidanceScale *float64 `json:"guidance_scale,omitempty"`
	Steps         *int     `json:"steps,omitempty"`
	MaxSeqLength  *int     `json:"max_seq_length,omitempty"`
	BaseSeed      *int64   `json:"base_seed,omitempty"`
}

// Violations reports one message per violated rule class. All empty prompts
// collapse into a single message.
func (p BatchParameters) Violations() []string {
	if len(p.Prompts) == 0 {
		return []string{"Prompts array is required and cannot be empty"}
	}

	var violations []string
	if len(p.Prompts) > BatchSizeRange.Max {
		violations = append(violations, fmt.Sprintf("Batch size cannot exceed %d prompts", BatchSizeRange.Max))
	}

	empty := lo.Filter(p.Prompts, func(prompt string, _ int) bool {
		return strings.TrimSpace(prompt) == ""
	})
	if len(empty) > 0 {
		violations = append(violations, "All prompts must be non-empty strings")
	}
	return violations
}

func (p BatchParameters) Validate() error {
	if violations := p.Violations(); len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}
	return nil
}

type BatchImageResult struct {
	Prompt         string  `json:"prompt"`
	Image          string  `json:"image"`
	Seed           int64   `json:"seed"`
	GenerationTime float64 `json:"generation_time"`
}

type BatchResultParameters struct {
	Height        int     `json:"height"`
	Width         int     `json:"width"`
	GuidanceScale float64 `json:"guidance_scale"`
	NumSteps      int     `json:"num_steps"`
	MaxSeqLength  int     `json:"max_seq_length"`
	BaseSeed      *int64  `json:"base_seed"`
}

type BatchResult struct {
	Results             []BatchImageResult    `json:"results"`
	Parameters          BatchResultParameters `json:"parameters"`
	TotalGenerationTime float64               `json:"total_generation_time"`
	ImagesGenerated     int                   `json:"images_generated"`
}
