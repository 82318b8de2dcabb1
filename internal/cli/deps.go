// Package cli provides the Cobra command tree and dependency wiring for
// licensegen. This file defines the Dependencies struct, the only place
// where concrete types are instantiated and wired together.
package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/licensegen/licensegen/internal/config"
	"github.com/licensegen/licensegen/internal/license"
	"github.com/licensegen/licensegen/internal/ui"
)

// Dependencies holds all services used by CLI commands.
type Dependencies struct {
	Config     *config.Config
	ConfigPath string
	Store      *license.Store
	Generator  *license.Generator
	Headless   *ui.HeadlessManager
	Theme      *ui.Theme
	Logger     *slog.Logger
}

// deps is the global dependencies instance, initialized by InitDependencies.
var deps *Dependencies

// InitDependencies creates and wires the dependencies that do not need
// configuration. Config, logger level and theme are settled in
// Dependencies.Configure once flags are parsed.
func InitDependencies() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := license.MustDefaultStore()

	deps = &Dependencies{
		Config:    config.NewDefaultConfig(),
		Store:     store,
		Generator: license.NewGenerator(store, logger),
		Headless:  ui.NewHeadlessManager(),
		Theme:     ui.NewTheme(ui.ThemeConfig{}),
		Logger:    logger,
	}
}

// configureOptions are the global flag values that override config.
type configureOptions struct {
	ConfigPath string
	NoColor    bool
	LogLevel   string
	LogOutput  io.Writer
}

// Configure loads the config file and rebuilds the logger, generator and
// theme from it.
func (d *Dependencies) Configure(opts configureOptions) error {
	path := opts.ConfigPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}

	cfg, err := config.NewLoader(d.Logger).Load(path)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.LogLevel != "" {
		cfg.System.LogLevel = opts.LogLevel
		if err := config.Validate(cfg); err != nil {
			return fmt.Errorf("--log-level: %w", err)
		}
	}
	if opts.NoColor {
		cfg.System.NoColor = true
	}

	logOut := opts.LogOutput
	if logOut == nil {
		logOut = io.Discard
	}
	d.Logger = slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: cfg.System.SlogLevel()}))
	d.Generator = license.NewGenerator(d.Store, d.Logger)
	d.Theme = ui.NewTheme(ui.ThemeConfig{NoColor: cfg.System.NoColor})
	d.Config = cfg
	d.ConfigPath = path

	d.Logger.Debug("dependencies configured", "config", path, "no_color", cfg.System.NoColor)
	return nil
}
