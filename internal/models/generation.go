package models

import (
	"encoding/base64"
	"fmt"
	"math/rand/v2"
	"strings"
)

// GenerationParameters represents a single image generation request.
// Nil optional fields fall back to their defaults and are not range checked.
type GenerationParameters struct {
	Prompt        string   `json:"prompt" example:"a jaguar resting on a mossy branch, golden hour"`
	Height        *int     `json:"height,omitempty" example:"1024"`
	Width         *int     `json:"width,omitempty" example:"1024"`
	GuidanceScale *float64 `json:"guidance_scale,omitempty" example:"3.5"`
	Steps         *int     `json:"steps,omitempty" example:"4"`
	MaxSeqLength  *int     `json:"max_seq_length,omitempty" example:"256"`
	// Seed is sent only when set; otherwise the remote service picks one.
	Seed *int64 `json:"seed,omitempty" example:"42"`
}

// Violations checks every rule independently and returns one message per
// violated rule, in fixed rule order. An empty result means the parameters are valid.
func (p GenerationParameters) Violations() []string {
	var violations []string

	if strings.TrimSpace(p.Prompt) == "" {
		violations = append(violations, "Prompt is required and cannot be empty")
	}
	if outside(p.Height, HeightRange) {
		violations = append(violations, rangeMessage("Height", HeightRange))
	}
	if outside(p.Width, WidthRange) {
		violations = append(violations, rangeMessage("Width", WidthRange))
	}
	if outside(p.GuidanceScale, GuidanceScaleRange) {
		violations = append(violations, rangeMessage("Guidance scale", GuidanceScaleRange))
	}
	if outside(p.Steps, StepsRange) {
		violations = append(violations, rangeMessage("Steps", StepsRange))
	}
	if outside(p.MaxSeqLength, MaxSeqLengthRange) {
		violations = append(violations, rangeMessage("Max sequence length", MaxSeqLengthRange))
	}

	return violations
}

// Validate returns a *ValidationError aggregating all violations, or nil.
func (p GenerationParameters) Validate() error {
	if violations := p.Violations(); len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}
	return nil
}

// Effective resolves defaults for every omitted optional field.
func (p GenerationParameters) Effective() EffectiveParameters {
	return EffectiveParameters{
		Prompt:        p.Prompt,
		Height:        valueOr(p.Height, DefaultHeight),
		Width:         valueOr(p.Width, DefaultWidth),
		GuidanceScale: valueOr(p.GuidanceScale, DefaultGuidanceScale),
		Steps:         valueOr(p.Steps, DefaultSteps),
		MaxSeqLength:  valueOr(p.MaxSeqLength, DefaultMaxSeqLength),
		Seed:          p.Seed,
	}
}

// EffectiveParameters is the fully resolved parameter set sent to the remote endpoint.
// The url tags describe its query string encoding.
type EffectiveParameters struct {
	Prompt        string  `json:"prompt" url:"prompt"`
	Height        int     `json:"height" url:"height"`
	Width         int     `json:"width" url:"width"`
	GuidanceScale float64 `json:"guidance_scale" url:"guidance_scale"`
	Steps         int     `json:"steps" url:"steps"`
	MaxSeqLength  int     `json:"max_seq_length" url:"max_seq_length"`
	Seed          *int64  `json:"seed,omitempty" url:"seed,omitempty"`
}

// GenerationResult is the remote endpoint's answer to a generation request.
type GenerationResult struct {
	// Image is the base64 encoded PNG.
	Image          string           `json:"image" example:"iVBORw0KGgoAAAANSUhEUgAA..."`
	Parameters     ResultParameters `json:"parameters"`
	GenerationTime float64          `json:"generation_time" example:"1.2"`
}

// ResultParameters are the values the server confirmed, including the resolved seed.
type ResultParameters struct {
	Prompt        string  `json:"prompt"`
	Height        int     `json:"height"`
	Width         int     `json:"width"`
	GuidanceScale float64 `json:"guidance_scale"`
	NumSteps      int     `json:"num_steps"`
	MaxSeqLength  int     `json:"max_seq_length"`
	Seed          *int64  `json:"seed"`
}

// DataURI frames the image payload so it can be used directly as an image source.
func (r GenerationResult) DataURI() string {
	return "data:image/png;base64," + r.Image
}

// PNG decodes the image payload.
func (r GenerationResult) PNG() ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(r.Image)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return data, nil
}

// RandomSeed returns a fresh seed in [0, MaxRandomSeed).
func RandomSeed() int64 {
	return rand.Int64N(MaxRandomSeed)
}

// ValidationError aggregates every violated parameter rule.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Violations, ", ")
}

func outside[T Number](v *T, r Range[T]) bool {
	return v != nil && !r.Contains(*v)
}

func rangeMessage[T Number](field string, r Range[T]) string {
	return fmt.Sprintf("%s must be between %v and %v", field, r.Min, r.Max)
}

func valueOr[T any](v *T, fallback T) T {
	if v == nil {
		return fallback
	}
	return *v
}
