// Package appcontext provides the shared application context interface
// used by all commands. This eliminates interface duplication across
// command packages and provides a single source of truth for app dependencies.
package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/neurocrista/genemap"
)

// Interface defines the application context interface that commands need.
// The App struct from cmd/genemap/app automatically implements this interface,
// providing dependency injection for commands while maintaining testability.
//
// Commands should accept this interface rather than the concrete App type,
// allowing for easier testing with mock implementations.
type Interface interface {
	// Genemap returns the default genemap instance, creating it lazily if needed.
	// This is thread-safe and ensures only one instance is created.
	Genemap() (genemap.Genemap, error)

	// GenemapWithOptions creates a new genemap instance with custom options.
	// Use this when a command needs specific configuration (e.g., a custom cache dir).
	GenemapWithOptions(...genemap.Option) (genemap.Genemap, error)

	// Logger returns the configured logger instance.
	// Commands should use this for all logging operations.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (json, yaml, table, etc).
	// Commands that support different output formats should use this.
	OutputFormat() string

	// StorePath returns the configured snapshot store path.
	// Commands that read or write pipeline history should use this as the default.
	StorePath() string

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
