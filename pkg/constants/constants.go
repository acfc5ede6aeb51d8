// Package constants provides shared constants used throughout the genemap codebase.
// This includes timeouts, limits, file permissions, and other configuration values
// that should be consistent across the application.
package constants

import "time"

// Timeout constants define various timeout durations used in the application
const (
	// DefaultTimeout is the standard timeout for general operations
	DefaultTimeout = 10 * time.Second

	// ReconcileTimeout is the timeout for a full collect-and-merge pass
	ReconcileTimeout = 2 * time.Minute

	// SourceLoadTimeout is the timeout for loading one source's cached contributions
	SourceLoadTimeout = 1 * time.Minute

	// CommandTimeout is the default timeout for CLI commands
	CommandTimeout = 10 * time.Minute
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Limit constants define various limits and capacities
const (
	// DefaultMergeWorkers is the default number of goroutines folding key groups
	DefaultMergeWorkers = 4

	// MaxConcurrentSources is the maximum number of sources to load concurrently
	MaxConcurrentSources = 6

	// ChannelBufferSize is the default buffer size for channels
	ChannelBufferSize = 100

	// WriteBufferSize is the default buffer size for write operations
	WriteBufferSize = 4096

	// MaxSymbolLength is the maximum allowed length for gene symbols
	MaxSymbolLength = 64

	// DefaultPageSize is the default number of items per page for paginated results
	DefaultPageSize = 100
)

// Format constants
const (
	// SnapshotDateFormat is the date key format for snapshot records
	SnapshotDateFormat = "2006-01-02"

	// TimeFormatISO8601 is the ISO 8601 time format
	TimeFormatISO8601 = time.RFC3339

	// TimeFormatHuman is a human-readable time format
	TimeFormatHuman = "Jan 2, 2006 at 3:04pm MST"

	// TimeFormatFilename is the format used in generated filenames
	TimeFormatFilename = "20060102-150405"
)

// Path constants
const (
	// DefaultCacheDir is the default directory for source cache files
	DefaultCacheDir = "data/cache"

	// DefaultSnapshotDB is the default path for the snapshot history database
	DefaultSnapshotDB = "data/snapshots.db"

	// DefaultConfigPath is the default path for configuration files
	DefaultConfigPath = "~/.genemap.yaml"
)
