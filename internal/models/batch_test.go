package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBatchParameters_Violations(t *testing.T) {
	tests := []struct {
		name    string
		prompts []string
		want    []string
	}{
		{"valid", []string{"a", "b"}, nil},
		{"nil prompts", nil, []string{"Prompts array is required and cannot be empty"}},
		{"empty prompts", []string{}, []string{"Prompts array is required and cannot be empty"}},
		{"exactly ten", make10("p"), nil},
		{"too many", append(make10("p"), "q"), []string{"Batch size cannot exceed 10 prompts"}},
		{"several empty collapse to one message", []string{"a", "", "  "}, []string{"All prompts must be non-empty strings"}},
		{
			name:    "too many and empty",
			prompts: append(make10(""), "x"),
			want:    []string{"Batch size cannot exceed 10 prompts", "All prompts must be non-empty strings"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := BatchParameters{Prompts: tt.prompts}
			assert.Equal(t, tt.want, params.Violations())
			if tt.want == nil {
				assert.NoError(t, params.Validate())
			} else {
				assert.Error(t, params.Validate())
			}
		})
	}
}

func make10(prompt string) []string {
	prompts := make([]string, 10)
	for i := range prompts {
		prompts[i] = prompt
	}
	return prompts
}
