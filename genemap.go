// Package genemap reconciles per-source gene facts into one merged view
// of the neural crest gene universe and serves projections over it.
//
// A client is built with New, fed contributions either directly or from
// configured sources, and queried through named projections:
//
//	gm, err := genemap.New(genemap.WithCacheDir("data"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := gm.Reconcile(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	report, err := gm.Query("gap_report", nil)
//
// Reconcile swaps in a fresh merged set atomically; queries running
// against the previous set keep their consistent view.
package genemap

import (
	"context"
	"fmt"
	"sync"

	"github.com/neurocrista/genemap/pkg/facts"
	"github.com/neurocrista/genemap/pkg/genes"
	"github.com/neurocrista/genemap/pkg/logging"
	"github.com/neurocrista/genemap/pkg/merge"
	"github.com/neurocrista/genemap/pkg/query"
	"github.com/neurocrista/genemap/pkg/sources"
)

// Genemap reconciles gene facts and serves projections over the result.
type Genemap interface {
	// Registry returns the gene universe the client reconciles over.
	Registry() *genes.Registry

	// Reconcile collects contributions from the configured sources and
	// merges them into a fresh entity set.
	Reconcile(ctx context.Context) error

	// Entities returns the current merged entity set.
	Entities() *merge.Set

	// Query runs a named projection against the current entity set.
	Query(name string, params map[string]any) (query.Report, error)

	// Definitions returns the registered projection definitions sorted
	// by name.
	Definitions() []query.Definition

	// Sources returns the configured contribution sources.
	Sources() []sources.Source
}

// genemap is the internal implementation of the Genemap interface.
type genemap struct {
	mu     sync.RWMutex
	set    *merge.Set
	facade *query.Facade

	config *config
	merger *merge.Merger
}

// New creates a client with the given options. Fixed contributions are
// merged immediately, so fixture-backed clients serve queries before
// the first Reconcile; source data arrives on Reconcile.
func New(opts ...Option) (Genemap, error) {
	c := defaultConfig()
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("applying options: %w", err)
		}
	}

	merger, err := merge.New(
		merge.WithRegistry(c.registry),
		merge.WithConcurrency(c.workers),
	)
	if err != nil {
		return nil, err
	}

	gm := &genemap{config: c, merger: merger}

	// Materialize the universe up front so every registry gene is
	// queryable before the first Reconcile call.
	set, err := merger.Merge(context.Background(), c.contributions)
	if err != nil {
		return nil, err
	}
	if err := gm.swap(set); err != nil {
		return nil, err
	}
	return gm, nil
}

// Registry implements Genemap.
func (g *genemap) Registry() *genes.Registry {
	return g.config.registry
}

// Sources implements Genemap.
func (g *genemap) Sources() []sources.Source {
	out := make([]sources.Source, len(g.config.sources))
	copy(out, g.config.sources)
	return out
}

// Reconcile implements Genemap: it gathers contributions from every
// configured source plus any fixed collection, merges them, and swaps
// the merged set in atomically.
func (g *genemap) Reconcile(ctx context.Context) error {
	if g.config.logger != nil {
		ctx = logging.WithLogger(ctx, g.config.logger)
	}
	logger := logging.FromContext(ctx)

	contributions := make([]facts.Contribution, 0, len(g.config.contributions))
	contributions = append(contributions, g.config.contributions...)

	fetchOpts := []sources.Option{sources.WithRegistry(g.config.registry)}
	if len(g.config.symbols) > 0 {
		fetchOpts = append(fetchOpts, sources.WithSymbols(g.config.symbols...))
	}
	for _, src := range g.config.sources {
		fetched, err := src.Fetch(ctx, fetchOpts...)
		if err != nil {
			return fmt.Errorf("fetching %s: %w", src.ID(), err)
		}
		contributions = append(contributions, fetched...)
	}

	set, err := g.merger.Merge(ctx, contributions)
	if err != nil {
		return err
	}
	if err := g.swap(set); err != nil {
		return err
	}

	logger.Info().
		Int("contributions", len(contributions)).
		Int("genes", set.Len()).
		Int("sources", len(g.config.sources)).
		Msg("Reconciled gene facts")
	return nil
}

// Entities implements Genemap.
func (g *genemap) Entities() *merge.Set {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.set
}

// Query implements Genemap.
func (g *genemap) Query(name string, params map[string]any) (query.Report, error) {
	g.mu.RLock()
	facade := g.facade
	g.mu.RUnlock()
	return facade.Query(name, params)
}

// Definitions implements Genemap.
func (g *genemap) Definitions() []query.Definition {
	g.mu.RLock()
	facade := g.facade
	g.mu.RUnlock()
	return facade.Definitions()
}

// swap installs a freshly merged set and its facade.
func (g *genemap) swap(set *merge.Set) error {
	defs := g.config.definitions
	if defs == nil {
		defs = query.Defaults(g.config.registry)
	}
	facade, err := query.New(set, defs...)
	if err != nil {
		return err
	}

	g.mu.Lock()
	g.set = set
	g.facade = facade
	g.mu.Unlock()
	return nil
}

// Compile-time interface check.
var _ Genemap = (*genemap)(nil)
