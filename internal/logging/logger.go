package logging

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/wizzomafizzo/shelly/internal/storage"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	maxLogSizeMB  = 10
	maxLogBackups = 3
	maxLogAgeDays = 30
)

// Log levels - aliases for zerolog levels
const (
	ErrorLevel = zerolog.ErrorLevel
	WarnLevel  = zerolog.WarnLevel
	InfoLevel  = zerolog.InfoLevel
	DebugLevel = zerolog.DebugLevel
)

// Config defines the configuration for logger creation
type Config struct {
	Writer    io.Writer
	ProjectID string
	Level     zerolog.Level
}

// New creates a new context with a logger attached
// For production: provide fs and leave Writer nil for rotating file logging
// For tests: provide a custom Writer (like strings.Builder) for in-memory logging
func New(ctx context.Context, fs afero.Fs, config Config) (context.Context, error) {
	var writer io.Writer

	if config.Writer != nil {
		writer = config.Writer
	} else {
		if fs == nil {
			return nil, errors.New("filesystem required when no writer provided")
		}

		logFile, err := storage.New(fs).GetLogPath()
		if err != nil {
			return nil, fmt.Errorf("failed to get log path: %w", err)
		}

		writer = &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    maxLogSizeMB,
			MaxBackups: maxLogBackups,
			MaxAge:     maxLogAgeDays,
		}
	}

	logger := zerolog.New(writer).With().
		Timestamp().
		Str("project_id", config.ProjectID).
		Logger().
		Level(config.Level)

	return logger.WithContext(ctx), nil
}

// Get retrieves the logger from the provided context
// Returns the logger associated with the context, or a disabled logger if none exists
func Get(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithRun returns a context whose logger tags every entry with runID.
func WithRun(ctx context.Context, runID string) context.Context {
	logger := Get(ctx).With().Str("run_id", runID).Logger()
	return logger.WithContext(ctx)
}

// ParseLevel converts a config level name, defaulting to info when empty.
func ParseLevel(name string) (zerolog.Level, error) {
	if name == "" {
		return InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(name)
	if err != nil {
		return InfoLevel, fmt.Errorf("invalid log level %q: %w", name, err)
	}
	return level, nil
}
