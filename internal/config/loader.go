package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultPath returns the per-user config file location:
// $XDG_CONFIG_HOME/licensegen/config.yaml, or the platform equivalent.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(dir, DefaultAppDir, DefaultConfigFile), nil
}

// Loader reads the configuration file.
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a new Loader. A nil logger falls back to slog.Default().
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger}
}

// Load reads path and returns the merged Config with defaults applied.
// A missing file yields defaults; invalid YAML is an error wrapping
// ErrInvalidYAML. The result is validated before it is returned.
func (l *Loader) Load(path string) (*Config, error) {
	cfg := NewDefaultConfig()

	loaded, err := loadYAMLFile(path, cfg)
	if err != nil {
		return nil, err
	}
	if !loaded {
		l.logger.Debug("config file not found, using defaults", "path", path)
		return cfg, nil
	}

	applyDefaults(cfg)
	if err := Validate(cfg); err != nil {
		return nil, err
	}

	l.logger.Debug("config loaded", "path", path)
	return cfg, nil
}

// loadYAMLFile reads a YAML file and unmarshals it into target.
// Returns (true, nil) if the file was found and parsed, (false, nil) if the
// file does not exist, or (false, error) on failure.
func loadYAMLFile(path string, target any) (bool, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, target); err != nil {
		return false, fmt.Errorf("parse %s: %w: %v", path, ErrInvalidYAML, err)
	}

	return true, nil
}
