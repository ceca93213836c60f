package config

import (
	"fmt"

	"github.com/wizzomafizzo/shelly/internal/export"
	"gopkg.in/yaml.v3"
)

// DefaultConfig returns the default shelly configuration
func DefaultConfig() *Config {
	return &Config{
		Settings: SettingsConfig{
			AllowWhitespaceInPaths: false,
			UseFixedPaths:          false,
		},
		Export: ExportConfig{
			Format: export.DefaultFormat,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// DefaultConfigYAML returns the default configuration as YAML bytes
func DefaultConfigYAML() ([]byte, error) {
	data, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal default config to YAML: %w", err)
	}
	return data, nil
}
