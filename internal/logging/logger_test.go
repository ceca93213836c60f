package logging

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test helpers
func createTestConfig(writer *strings.Builder) Config {
	return Config{
		Writer:    writer,
		ProjectID: "test-project",
		Level:     InfoLevel,
	}
}

func TestGet_WithoutLogger(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	logger := Get(ctx)

	require.NotNil(t, logger)
	// When no logger is attached, zerolog.Ctx returns a disabled logger
	require.Equal(t, zerolog.Disabled, logger.GetLevel())
}

func TestNew_WithCustomWriter(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	config := createTestConfig(&buf)

	ctx, err := New(context.Background(), nil, config)

	require.NoError(t, err)
	require.NotNil(t, ctx)

	logger := Get(ctx)
	require.NotNil(t, logger)
	assert.Equal(t, InfoLevel, logger.GetLevel())

	logger.Info().Str("command", "git status").Msg("analyzed")
	assert.Contains(t, buf.String(), `"project_id":"test-project"`)
	assert.Contains(t, buf.String(), `"command":"git status"`)
}

func TestNew_LevelFiltersDebug(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	ctx, err := New(context.Background(), nil, createTestConfig(&buf))
	require.NoError(t, err)

	Get(ctx).Debug().Msg("hidden")
	assert.Empty(t, buf.String())
}

func TestNew_NoWriterNoFilesystem_ReturnsError(t *testing.T) {
	t.Parallel()

	config := Config{
		Writer:    nil, // No writer provided
		ProjectID: "test-project",
		Level:     InfoLevel,
	}

	ctx, err := New(context.Background(), nil, config) // No filesystem provided

	require.Error(t, err)
	assert.Contains(t, err.Error(), "filesystem required when no writer provided")
	assert.Nil(t, ctx)
}

func TestNew_WithFilesystem(t *testing.T) {
	t.Parallel()

	ctx, err := New(context.Background(), afero.NewMemMapFs(), Config{Level: WarnLevel})

	require.NoError(t, err)
	assert.Equal(t, WarnLevel, Get(ctx).GetLevel())
}

func TestWithRun(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	ctx, err := New(context.Background(), nil, createTestConfig(&buf))
	require.NoError(t, err)

	ctx = WithRun(ctx, "run-123")
	Get(ctx).Info().Msg("batch analyzed")

	assert.Contains(t, buf.String(), `"run_id":"run-123"`)
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    zerolog.Level
		wantErr bool
	}{
		{name: "empty defaults to info", input: "", want: InfoLevel},
		{name: "debug", input: "debug", want: DebugLevel},
		{name: "warn", input: "warn", want: WarnLevel},
		{name: "invalid", input: "loud", want: InfoLevel, wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseLevel(tt.input)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
