package config

// Default value constants.
const (
	DefaultOutputPath = "LICENSE.txt"
	DefaultLogLevel   = "warn"
	DefaultAppDir     = "licensegen"
	DefaultConfigFile = "config.yaml"
)

// validLogLevels lists the accepted system.log_level values.
var validLogLevels = []string{"debug", "info", "warn", "error"}

// NewDefaultConfig returns a Config populated with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Author: AuthorConfig{},
		Output: OutputConfig{
			Path: DefaultOutputPath,
		},
		System: SystemConfig{
			LogLevel: DefaultLogLevel,
		},
	}
}

// applyDefaults fills zero-valued fields a config file left empty.
func applyDefaults(cfg *Config) {
	if cfg.Output.Path == "" {
		cfg.Output.Path = DefaultOutputPath
	}
	if cfg.System.LogLevel == "" {
		cfg.System.LogLevel = DefaultLogLevel
	}
}
