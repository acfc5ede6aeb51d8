// Package merge folds per-source contributions into a reconciled, total
// view of the gene universe.
//
// The fold treats every (symbol, source) pair as a join: presence flags
// are OR'd, while native identifiers and fact records must agree
// wherever two contributions both assert them. Disagreement is never
// resolved by precedence or recency. It aborts the fold with a
// MergeError naming the symbol, source, and first differing attribute,
// so the defect can be fixed in the upstream normalizer rather than
// papered over. Shuffling or duplicating the input never changes the
// outcome.
//
// Every gene in the registry materializes in the result even when no
// source mentions it, so downstream projections never distinguish a
// missing gene from a gene with no data.
package merge

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"sync"

	"github.com/neurocrista/genemap/pkg/constants"
	"github.com/neurocrista/genemap/pkg/errors"
	"github.com/neurocrista/genemap/pkg/facts"
	"github.com/neurocrista/genemap/pkg/genes"
	"github.com/neurocrista/genemap/pkg/logging"
)

// Merger folds contributions against a fixed gene registry.
type Merger struct {
	registry *genes.Registry
	workers  int
}

// Option configures a Merger.
type Option func(*Merger) error

// WithRegistry sets the gene universe the fold validates against and
// materializes. Defaults to the canonical registry.
func WithRegistry(r *genes.Registry) Option {
	return func(m *Merger) error {
		if r == nil {
			return &errors.ConfigError{
				Component: "merger",
				Message:   "registry must not be nil",
			}
		}
		m.registry = r
		return nil
	}
}

// WithConcurrency bounds how many genes fold in parallel.
func WithConcurrency(n int) Option {
	return func(m *Merger) error {
		if n < 1 {
			return &errors.ConfigError{
				Component: "merger",
				Message:   fmt.Sprintf("concurrency must be at least 1, got %d", n),
			}
		}
		m.workers = n
		return nil
	}
}

// New creates a Merger. Without options it folds against the canonical
// registry with the default worker count.
func New(opts ...Option) (*Merger, error) {
	m := &Merger{
		registry: genes.Default(),
		workers:  constants.DefaultMergeWorkers,
	}
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Registry returns the gene universe this merger folds against.
func (m *Merger) Registry() *genes.Registry {
	return m.registry
}

// foldResult carries one gene's fold outcome back from a worker.
type foldResult struct {
	symbol genes.Symbol
	entity *Entity
	err    *errors.MergeError
}

// Merge folds contributions into one entity per registry gene. Genes no
// source mentioned still materialize with defaults and empty coverage.
// A contribution for a symbol outside the registry, or two
// contributions from one source that disagree on a native identifier or
// attribute value, abort the fold with a MergeError.
func (m *Merger) Merge(ctx context.Context, contributions []facts.Contribution) (*Set, error) {
	groups := make(map[genes.Symbol][]facts.Contribution)
	for _, c := range contributions {
		if !m.registry.Has(c.Symbol()) {
			return nil, &errors.MergeError{
				Symbol:  c.Symbol().String(),
				Source:  c.Source().String(),
				Message: "symbol not in gene registry",
			}
		}
		groups[c.Symbol()] = append(groups[c.Symbol()], c)
	}

	logging.FromContext(ctx).Debug().
		Int("contributions", len(contributions)).
		Int("genes", m.registry.Len()).
		Int("workers", m.workers).
		Msg("Folding contributions")

	symbols := m.registry.Symbols()
	jobs := make(chan genes.Symbol)
	results := make(chan foldResult, len(symbols))

	var wg sync.WaitGroup
	for i := 0; i < m.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for symbol := range jobs {
				entity, err := foldSymbol(symbol, groups[symbol])
				results <- foldResult{symbol: symbol, entity: entity, err: err}
			}
		}()
	}

feed:
	for _, symbol := range symbols {
		select {
		case jobs <- symbol:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()
	close(results)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entities := make(map[genes.Symbol]*Entity, len(symbols))
	failed := make(map[genes.Symbol]*errors.MergeError)
	for r := range results {
		if r.err != nil {
			failed[r.symbol] = r.err
			continue
		}
		entities[r.symbol] = r.entity
	}

	// Workers finish in arbitrary order, so pick the error for the
	// smallest symbol to keep failures deterministic.
	if len(failed) > 0 {
		first := genes.Symbol("")
		for symbol := range failed {
			if first == "" || symbol < first {
				first = symbol
			}
		}
		return nil, failed[first]
	}

	return newSet(entities), nil
}

// accumulator joins every contribution one source made for one gene.
type accumulator struct {
	present  bool
	nativeID string
	payload  facts.Payload
}

// foldSymbol reduces one gene's contributions to an entity. Presence is
// OR'd. A native identifier or fact record is adopted when first
// asserted and must be matched by every later assertion from the same
// source.
func foldSymbol(symbol genes.Symbol, group []facts.Contribution) (*Entity, *errors.MergeError) {
	entity := newEntity(symbol)
	accums := make(map[facts.SourceID]*accumulator)

	for _, c := range group {
		acc := accums[c.Source()]
		if acc == nil {
			acc = &accumulator{}
			accums[c.Source()] = acc
		}

		acc.present = acc.present || c.Present()

		if id := c.NativeID(); id != "" {
			if acc.nativeID != "" && acc.nativeID != id {
				return nil, &errors.MergeError{
					Symbol:    symbol.String(),
					Source:    c.Source().String(),
					Attribute: "native_id",
					Message:   fmt.Sprintf("%q vs %q", acc.nativeID, id),
				}
			}
			acc.nativeID = id
		}

		if p := c.Payload(); p != nil {
			if acc.payload == nil {
				acc.payload = p
				continue
			}
			if attr, detail, ok := firstDisagreement(acc.payload, p); ok {
				return nil, &errors.MergeError{
					Symbol:    symbol.String(),
					Source:    c.Source().String(),
					Attribute: attr,
					Message:   detail,
				}
			}
		}
	}

	for _, src := range facts.AllSources() {
		acc := accums[src]
		if acc == nil {
			continue
		}
		if acc.present {
			entity.markPresent(src)
		}
		if acc.nativeID != "" {
			entity.setNativeID(src, acc.nativeID)
		}
		if acc.payload != nil {
			entity.setPayload(acc.payload)
		}
	}

	return entity, nil
}

// firstDisagreement compares two same-source fact records attribute by
// attribute. It returns the name of the first differing attribute in
// sorted order along with both values, or ok=false when the records
// agree on everything.
func firstDisagreement(a, b facts.Payload) (attr, detail string, ok bool) {
	av, bv := facts.Fields(a), facts.Fields(b)
	names := make([]string, 0, len(av))
	for name := range av {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if !reflect.DeepEqual(av[name], bv[name]) {
			return name, fmt.Sprintf("%v vs %v", av[name], bv[name]), true
		}
	}
	return "", "", false
}
