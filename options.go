package genemap

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/neurocrista/genemap/pkg/constants"
	"github.com/neurocrista/genemap/pkg/errors"
	"github.com/neurocrista/genemap/pkg/facts"
	"github.com/neurocrista/genemap/pkg/genes"
	"github.com/neurocrista/genemap/pkg/query"
	"github.com/neurocrista/genemap/pkg/sources"
)

// config holds the settings a Genemap instance is built from.
type config struct {
	registry      *genes.Registry
	sources       []sources.Source
	contributions []facts.Contribution
	symbols       []genes.Symbol
	definitions   []query.Definition
	workers       int
	logger        *zerolog.Logger
}

func defaultConfig() *config {
	return &config{
		registry: genes.Default(),
		workers:  constants.DefaultMergeWorkers,
	}
}

// Option is a function that configures a Genemap instance
type Option func(*config) error

// WithRegistry sets the gene universe the client reconciles over.
// Defaults to the canonical registry.
func WithRegistry(r *genes.Registry) Option {
	return func(c *config) error {
		if r == nil {
			return &errors.ConfigError{
				Component: "genemap",
				Message:   "registry must not be nil",
			}
		}
		c.registry = r
		return nil
	}
}

// WithSources appends contribution sources consulted on Reconcile, in
// the order given.
func WithSources(srcs ...sources.Source) Option {
	return func(c *config) error {
		for i, src := range srcs {
			if src == nil {
				return &errors.ConfigError{
					Component: "genemap",
					Message:   fmt.Sprintf("source %d must not be nil", i),
				}
			}
		}
		c.sources = append(c.sources, srcs...)
		return nil
	}
}

// WithCacheDir registers one cache-backed source per fact namespace,
// reading fetcher output files under dir.
func WithCacheDir(dir string) Option {
	return func(c *config) error {
		cd, err := sources.NewCacheDir(dir)
		if err != nil {
			return err
		}
		c.sources = append(c.sources, cd.Sources()...)
		return nil
	}
}

// WithContributions seeds a fixed contribution collection merged on
// every Reconcile, ahead of anything the sources produce. Useful for
// fixtures and curated corrections.
func WithContributions(contributions ...facts.Contribution) Option {
	return func(c *config) error {
		c.contributions = append(c.contributions, contributions...)
		return nil
	}
}

// WithSymbols restricts source fetches to the given symbols. Genes
// outside the slice still materialize with defaults.
func WithSymbols(symbols ...genes.Symbol) Option {
	return func(c *config) error {
		c.symbols = append(c.symbols, symbols...)
		return nil
	}
}

// WithConcurrency bounds how many genes fold in parallel during
// Reconcile.
func WithConcurrency(n int) Option {
	return func(c *config) error {
		if n < 1 {
			return &errors.ConfigError{
				Component: "genemap",
				Message:   fmt.Sprintf("concurrency must be at least 1, got %d", n),
			}
		}
		c.workers = n
		return nil
	}
}

// WithLogger routes reconcile logging through the given logger instead
// of the package default.
func WithLogger(logger *zerolog.Logger) Option {
	return func(c *config) error {
		c.logger = logger
		return nil
	}
}

// WithDefinitions replaces the built-in projection set served by Query.
func WithDefinitions(defs ...query.Definition) Option {
	return func(c *config) error {
		c.definitions = defs
		return nil
	}
}
