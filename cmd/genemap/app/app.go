// Package app provides the application context and dependency management
// for the genemap CLI. It follows idiomatic Go patterns for CLI applications
// by centralizing configuration, dependency injection, and lifecycle management.
package app

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/neurocrista/genemap"
	"github.com/neurocrista/genemap/pkg/errors"
)

// App represents the genemap application with all its dependencies.
// It provides a centralized place for configuration, logging, and
// the genemap instance, following the dependency injection pattern.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Genemap instance (lazy-initialized, singleton)
	mu      sync.RWMutex
	genemap genemap.Genemap
}

// New creates a new App instance with the given version information.
// The app is initialized with default configuration that can be
// customized using functional options.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	// Load configuration
	config, err := LoadConfig()
	if err != nil {
		return nil, errors.WrapResource("load", "config", "", err)
	}
	app.config = config

	// Initialize logger
	logger := NewLogger(config)
	app.logger = &logger

	// Apply any custom options
	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string {
	return a.config.Output
}

// StorePath returns the configured snapshot store path.
func (a *App) StorePath() string {
	return a.config.StorePath
}

// Genemap returns the genemap instance, creating it lazily if needed.
// This is thread-safe and ensures only one instance is created.
func (a *App) Genemap() (genemap.Genemap, error) {
	a.mu.RLock()
	if a.genemap != nil {
		gm := a.genemap
		a.mu.RUnlock()
		return gm, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	// Double-check after acquiring write lock
	if a.genemap != nil {
		return a.genemap, nil
	}

	// Create genemap instance with options from config
	opts := a.buildGenemapOptions()
	gm, err := genemap.New(opts...)
	if err != nil {
		return nil, errors.WrapResource("create", "genemap", "", err)
	}

	a.genemap = gm
	return gm, nil
}

// GenemapWithOptions returns a new genemap instance with custom options.
// This is useful for commands that need specific configurations different
// from the default app instance (e.g., a custom cache directory).
func (a *App) GenemapWithOptions(opts ...genemap.Option) (genemap.Genemap, error) {
	gm, err := genemap.New(opts...)
	if err != nil {
		return nil, errors.WrapResource("create", "genemap", "with custom options", err)
	}
	return gm, nil
}

// Shutdown performs graceful shutdown of the application.
// It releases source resources held by the genemap instance.
func (a *App) Shutdown(_ context.Context) error {
	a.mu.RLock()
	gm := a.genemap
	a.mu.RUnlock()

	if gm != nil {
		for _, src := range gm.Sources() {
			if err := src.Cleanup(); err != nil {
				a.logger.Error().Err(err).Str("source", string(src.ID())).Msg("Failed to clean up source during shutdown")
			}
		}
	}

	return nil
}

// buildGenemapOptions constructs genemap options from the app configuration.
func (a *App) buildGenemapOptions() []genemap.Option {
	var opts []genemap.Option

	// Add cache directory if configured
	if a.config.CacheDir != "" {
		opts = append(opts, genemap.WithCacheDir(a.config.CacheDir))
	}

	// Add merge concurrency if configured
	if a.config.Concurrency > 0 {
		opts = append(opts, genemap.WithConcurrency(a.config.Concurrency))
	}

	// Route library logging through the app logger
	opts = append(opts, genemap.WithLogger(a.logger))

	return opts
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithGenemap sets a custom genemap instance (useful for testing).
func WithGenemap(gm genemap.Genemap) Option {
	return func(a *App) error {
		a.genemap = gm
		return nil
	}
}
