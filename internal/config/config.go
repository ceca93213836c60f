package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/wizzomafizzo/shelly/internal/export"
	"github.com/wizzomafizzo/shelly/internal/logging"
	"github.com/wizzomafizzo/shelly/internal/patterns"
	"gopkg.in/yaml.v3"
)

// ErrConfigExists is returned by Save when refusing to overwrite a file.
var ErrConfigExists = errors.New("config file already exists")

type Config struct {
	Settings SettingsConfig `yaml:"settings"`
	Export   ExportConfig   `yaml:"export"`
	Logging  LoggingConfig  `yaml:"logging"`
}

type SettingsConfig struct {
	AllowWhitespaceInPaths bool `yaml:"allow_whitespace_in_paths"`
	UseFixedPaths          bool `yaml:"use_fixed_paths"`
}

type ExportConfig struct {
	Format string `yaml:"format"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Analysis converts the settings section into generator settings.
func (s SettingsConfig) Analysis() patterns.Settings {
	return patterns.Settings{
		AllowWhitespaceInPaths: s.AllowWhitespaceInPaths,
		UseFixedPaths:          s.UseFixedPaths,
	}
}

// Load reads and validates the config file at path. Missing keys keep their
// default values.
func Load(fs afero.Fs, path string) (*Config, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg, err := LoadFromYAML(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadFromYAML loads config from YAML bytes - helper for tests
func LoadFromYAML(data []byte) (*Config, error) {
	cfg := DefaultConfig()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks the export format and log level names.
func (c *Config) Validate() error {
	if _, err := export.Lookup(c.Export.Format); err != nil {
		return fmt.Errorf("export.format: %w", err)
	}

	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}

	return nil
}

// Save writes the config as YAML, creating parent directories. An existing
// file is only replaced when overwrite is set.
func (c *Config) Save(fs afero.Fs, path string, overwrite bool) error {
	if !overwrite {
		if _, err := fs.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", ErrConfigExists, path)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to check config file: %w", err)
		}
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := fs.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("failed to create config directory %s: %w", dir, err)
		}
	}

	if err := afero.WriteFile(fs, path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file to %s: %w", path, err)
	}
	return nil
}

// Resolve picks the config file to load from the candidates in priority
// order. It returns false when none of them exists.
func Resolve(fs afero.Fs, candidates ...string) (string, bool) {
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if info, err := fs.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}
