package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/neurocrista/genemap"
)

// Mock provides a mock implementation of Interface for testing.
// Each method can be customized by setting the corresponding function field.
// If a function field is nil, the method returns a default/zero value.
type Mock struct {
	GenemapFunc            func() (genemap.Genemap, error)
	GenemapWithOptionsFunc func(...genemap.Option) (genemap.Genemap, error)
	LoggerFunc             func() *zerolog.Logger
	OutputFormatFunc       func() string
	StorePathFunc          func() string
	VersionFunc            func() string
	CommitFunc             func() string
	DateFunc               func() string
	BuiltByFunc            func() string
}

// Genemap returns a genemap using the mock function or nil.
func (m *Mock) Genemap() (genemap.Genemap, error) {
	if m.GenemapFunc != nil {
		return m.GenemapFunc()
	}
	return nil, nil
}

// GenemapWithOptions returns a genemap using the mock function or nil.
func (m *Mock) GenemapWithOptions(opts ...genemap.Option) (genemap.Genemap, error) {
	if m.GenemapWithOptionsFunc != nil {
		return m.GenemapWithOptionsFunc(opts...)
	}
	return nil, nil
}

// Logger returns a logger using the mock function or a no-op logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	logger := zerolog.Nop()
	return &logger
}

// OutputFormat returns the format using the mock function or "table".
func (m *Mock) OutputFormat() string {
	if m.OutputFormatFunc != nil {
		return m.OutputFormatFunc()
	}
	return "table"
}

// StorePath returns the store path using the mock function or empty.
func (m *Mock) StorePath() string {
	if m.StorePathFunc != nil {
		return m.StorePathFunc()
	}
	return ""
}

// Version returns version using the mock function or "dev".
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "dev"
}

// Commit returns commit using the mock function or "unknown".
func (m *Mock) Commit() string {
	if m.CommitFunc != nil {
		return m.CommitFunc()
	}
	return "unknown"
}

// Date returns date using the mock function or "unknown".
func (m *Mock) Date() string {
	if m.DateFunc != nil {
		return m.DateFunc()
	}
	return "unknown"
}

// BuiltBy returns builtBy using the mock function or "test".
func (m *Mock) BuiltBy() string {
	if m.BuiltByFunc != nil {
		return m.BuiltByFunc()
	}
	return "test"
}

// Ensure Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
