package shared_test

import (
	"testing"
	"todoapi/shared"

	"github.com/stretchr/testify/assert"
)

type partialUpdate struct {
	Content   *string `db:"content"`
	Completed *bool   `db:"completed"`
	Ignored   string
}

func ptr[T any](v T) *T {
	return &v
}

func TestTransformFields(t *testing.T) {
	tests := []struct {
		name     string
		input    partialUpdate
		expected map[string]any
	}{
		{
			name:     "all fields absent",
			input:    partialUpdate{},
			expected: map[string]any{},
		},
		{
			name:  "content only",
			input: partialUpdate{Content: ptr("buy milk")},
			expected: map[string]any{
				"content": "buy milk",
			},
		},
		{
			name:  "completed only",
			input: partialUpdate{Completed: ptr(true)},
			expected: map[string]any{
				"completed": true,
			},
		},
		{
			name:  "explicit false is still an update",
			input: partialUpdate{Completed: ptr(false)},
			expected: map[string]any{
				"completed": false,
			},
		},
		{
			name:  "both fields",
			input: partialUpdate{Content: ptr("walk dog"), Completed: ptr(true)},
			expected: map[string]any{
				"content":   "walk dog",
				"completed": true,
			},
		},
		{
			name:     "fields without db tags are skipped",
			input:    partialUpdate{Ignored: "nope"},
			expected: map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.TransformFields(tt.input))
		})
	}
}
