package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Plain JSON untouched",
			input:    `{"executive_summary": "ok"}`,
			expected: `{"executive_summary": "ok"}`,
		},
		{
			name:     "JSON wrapped in json fence",
			input:    "```json\n{\"a\": 1}\n```",
			expected: `{"a": 1}`,
		},
		{
			name:     "JSON wrapped in bare fence",
			input:    "```\n{\"a\": 1}\n```",
			expected: `{"a": 1}`,
		},
		{
			name:     "Fence with language identifier",
			input:    "```JSON\n{\"a\": 1}\n```",
			expected: `{"a": 1}`,
		},
		{
			name:     "Surrounding whitespace trimmed",
			input:    "  \n{\"a\": 1}\n  ",
			expected: `{"a": 1}`,
		},
		{
			name:     "Empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanJSONBlock(tt.input))
		})
	}
}
