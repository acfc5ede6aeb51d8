// Package emoji provides symbol constants for CLI output.
// These symbols create a consistent visual language across all command-line commands.
package emoji

// Symbol constants for CLI output provide a consistent visual language across commands.
// These symbols are used for status indicators, alerts, and user feedback in terminal output.
const (
	// Success represents successful completion of an operation.
	// Used for: completed operations, source presence marks, passing checks.
	Success = "✓"

	// Error represents failures or missing required configuration.
	// Used for: failed operations, schema violations, validation errors.
	Error = "✗"

	// Warning represents warnings or non-critical issues.
	// Used for: data-quality findings, optional warnings.
	Warning = "!"

	// Info represents informational messages.
	// Used for: general information, tips, context.
	Info = "i"
)
