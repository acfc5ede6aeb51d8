package sources

import (
	"sort"

	"github.com/neurocrista/genemap/pkg/genes"
)

// Options configures a fetch operation.
type Options struct {
	// Registry is the gene universe fetchers draw cross-reference IDs
	// from. Defaults to the canonical registry.
	Registry *genes.Registry

	// Symbols restricts the fetch to a subset of the universe.
	// Empty means every registry symbol.
	Symbols []genes.Symbol
}

// Option is a function that configures fetch options.
type Option func(*Options)

// WithRegistry sets the gene universe for the fetch.
func WithRegistry(registry *genes.Registry) Option {
	return func(o *Options) {
		o.Registry = registry
	}
}

// WithSymbols restricts the fetch to the given symbols.
func WithSymbols(symbols ...genes.Symbol) Option {
	return func(o *Options) {
		o.Symbols = symbols
	}
}

// NewOptions creates Options with defaults applied.
func NewOptions(opts ...Option) *Options {
	options := &Options{}
	for _, opt := range opts {
		opt(options)
	}
	if options.Registry == nil {
		options.Registry = genes.Default()
	}
	return options
}

// Universe returns the symbols the fetch covers, sorted: the restricted
// subset when one was given, otherwise every registry symbol.
func (o *Options) Universe() []genes.Symbol {
	if len(o.Symbols) == 0 {
		return o.Registry.Symbols()
	}
	out := make([]genes.Symbol, len(o.Symbols))
	copy(out, o.Symbols)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
