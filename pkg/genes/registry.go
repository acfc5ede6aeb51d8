package genes

import (
	"fmt"
	"sort"
	"sync"

	"github.com/neurocrista/genemap/pkg/errors"
)

// Registry is an immutable set of genes keyed by symbol. It defines the
// entity universe: merge materializes one record per registry symbol and
// rejects contributions for symbols outside it.
type Registry struct {
	bySymbol  map[Symbol]Gene
	byNCBI    map[string]Symbol
	byUniProt map[string]Symbol
	byOMIM    map[string]Symbol
	symbols   []Symbol // sorted
}

// NewRegistry builds a registry from the given genes. It rejects invalid
// symbols, duplicate symbols, and duplicate cross-reference IDs.
func NewRegistry(list ...Gene) (*Registry, error) {
	r := &Registry{
		bySymbol:  make(map[Symbol]Gene, len(list)),
		byNCBI:    make(map[string]Symbol, len(list)),
		byUniProt: make(map[string]Symbol, len(list)),
		byOMIM:    make(map[string]Symbol, len(list)),
	}

	for _, g := range list {
		if !g.Symbol.IsValid() {
			return nil, &errors.ConfigError{
				Component: "registry",
				Message:   fmt.Sprintf("invalid gene symbol %q", g.Symbol),
			}
		}
		if _, exists := r.bySymbol[g.Symbol]; exists {
			return nil, &errors.ConfigError{
				Component: "registry",
				Message:   fmt.Sprintf("duplicate gene symbol %q", g.Symbol),
			}
		}
		r.bySymbol[g.Symbol] = g

		if g.NCBI != "" {
			if prev, exists := r.byNCBI[g.NCBI]; exists {
				return nil, &errors.ConfigError{
					Component: "registry",
					Message:   fmt.Sprintf("NCBI ID %q assigned to both %q and %q", g.NCBI, prev, g.Symbol),
				}
			}
			r.byNCBI[g.NCBI] = g.Symbol
		}
		if g.UniProt != "" {
			if prev, exists := r.byUniProt[g.UniProt]; exists {
				return nil, &errors.ConfigError{
					Component: "registry",
					Message:   fmt.Sprintf("UniProt accession %q assigned to both %q and %q", g.UniProt, prev, g.Symbol),
				}
			}
			r.byUniProt[g.UniProt] = g.Symbol
		}
		if g.OMIM != "" {
			if prev, exists := r.byOMIM[g.OMIM]; exists {
				return nil, &errors.ConfigError{
					Component: "registry",
					Message:   fmt.Sprintf("OMIM number %q assigned to both %q and %q", g.OMIM, prev, g.Symbol),
				}
			}
			r.byOMIM[g.OMIM] = g.Symbol
		}
	}

	r.symbols = make([]Symbol, 0, len(r.bySymbol))
	for s := range r.bySymbol {
		r.symbols = append(r.symbols, s)
	}
	sort.Slice(r.symbols, func(i, j int) bool { return r.symbols[i] < r.symbols[j] })

	return r, nil
}

// Get returns the gene for the given symbol.
func (r *Registry) Get(symbol Symbol) (Gene, bool) {
	g, ok := r.bySymbol[symbol]
	return g, ok
}

// Has reports whether the symbol is in the registry.
func (r *Registry) Has(symbol Symbol) bool {
	_, ok := r.bySymbol[symbol]
	return ok
}

// Len returns the number of registered genes.
func (r *Registry) Len() int {
	return len(r.bySymbol)
}

// Symbols returns all registered symbols in sorted order.
func (r *Registry) Symbols() []Symbol {
	out := make([]Symbol, len(r.symbols))
	copy(out, r.symbols)
	return out
}

// ForEach calls fn for each gene in sorted symbol order. Iteration stops
// early if fn returns false.
func (r *Registry) ForEach(fn func(Gene) bool) {
	for _, s := range r.symbols {
		if !fn(r.bySymbol[s]) {
			return
		}
	}
}

// ByNCBI resolves an NCBI Gene ID back to its registry entry.
func (r *Registry) ByNCBI(id string) (Gene, bool) {
	s, ok := r.byNCBI[id]
	if !ok {
		return Gene{}, false
	}
	return r.bySymbol[s], true
}

// ByUniProt resolves a UniProt accession back to its registry entry.
func (r *Registry) ByUniProt(accession string) (Gene, bool) {
	s, ok := r.byUniProt[accession]
	if !ok {
		return Gene{}, false
	}
	return r.bySymbol[s], true
}

// ByOMIM resolves an OMIM number back to its registry entry.
func (r *Registry) ByOMIM(number string) (Gene, bool) {
	s, ok := r.byOMIM[number]
	if !ok {
		return Gene{}, false
	}
	return r.bySymbol[s], true
}

// ByRole returns all genes with the given role in sorted symbol order.
func (r *Registry) ByRole(role Role) []Gene {
	var out []Gene
	for _, s := range r.symbols {
		if g := r.bySymbol[s]; g.Role == role {
			out = append(out, g)
		}
	}
	return out
}

// Singleton for the canonical registry to avoid repeated construction.
var (
	defaultRegistryOnce sync.Once
	defaultRegistry     *Registry
)

// Default returns the canonical neural crest gene registry embedded in the
// binary. The canonical table is validated at build time by tests, so
// construction cannot fail here.
func Default() *Registry {
	defaultRegistryOnce.Do(func() {
		r, err := NewRegistry(canonical...)
		if err != nil {
			panic(fmt.Sprintf("genes: canonical registry invalid: %v", err))
		}
		defaultRegistry = r
	})
	return defaultRegistry
}
