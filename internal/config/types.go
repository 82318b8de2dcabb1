package config

import "log/slog"

// Config is the root configuration aggregate.
type Config struct {
	Author AuthorConfig `yaml:"author"`
	Output OutputConfig `yaml:"output"`
	System SystemConfig `yaml:"system"`
}

// AuthorConfig holds defaults for the copyright holder.
type AuthorConfig struct {
	Name string `yaml:"name"`
	// Year is the default copyright year; 0 means the current calendar year.
	Year int `yaml:"year"`
}

// OutputConfig controls where generated license text is written.
type OutputConfig struct {
	Path      string `yaml:"path"`
	Overwrite bool   `yaml:"overwrite"`
}

// SystemConfig represents the system configuration section.
type SystemConfig struct {
	LogLevel       string `yaml:"log_level"`
	NoColor        bool   `yaml:"no_color"`
	NonInteractive bool   `yaml:"non_interactive"`
}

// SlogLevel maps LogLevel to a slog.Level. Unknown values map to warn.
func (s SystemConfig) SlogLevel() slog.Level {
	switch s.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
