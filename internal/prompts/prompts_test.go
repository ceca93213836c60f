package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNames(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"extract_chat", "format_chat_commands"}, Names())
}

func TestGet(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		contains string
	}{
		{name: "extract", input: "extract_chat", contains: "extract all terminal commands"},
		{name: "format", input: "format_chat_commands", contains: "One command per line"},
		{name: "dashes and case", input: " Format-Chat-Commands ", contains: "Duplicate commands"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			text, err := Get(tt.input)
			require.NoError(t, err)
			assert.Contains(t, text, tt.contains)
		})
	}
}

func TestGetUnknown(t *testing.T) {
	t.Parallel()

	_, err := Get("summarize")
	require.ErrorIs(t, err, ErrUnknownPrompt)
	assert.Contains(t, err.Error(), "extract_chat, format_chat_commands")

	_, err = Get("../prompts")
	require.ErrorIs(t, err, ErrUnknownPrompt)
}
