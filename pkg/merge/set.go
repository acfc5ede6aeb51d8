package merge

import (
	"sort"

	"github.com/neurocrista/genemap/pkg/genes"
)

// Set is a reconciled snapshot of the whole gene universe. Lookups are
// by symbol and iteration is always in sorted symbol order, so any
// report derived from a Set is deterministic for the same input.
type Set struct {
	entities map[genes.Symbol]*Entity
	symbols  []genes.Symbol
}

// newSet wraps folded entities in a Set with a sorted symbol index.
func newSet(entities map[genes.Symbol]*Entity) *Set {
	symbols := make([]genes.Symbol, 0, len(entities))
	for symbol := range entities {
		symbols = append(symbols, symbol)
	}
	sort.Slice(symbols, func(i, j int) bool { return symbols[i] < symbols[j] })
	return &Set{entities: entities, symbols: symbols}
}

// Get returns the entity for a symbol.
func (s *Set) Get(symbol genes.Symbol) (*Entity, bool) {
	e, ok := s.entities[symbol]
	return e, ok
}

// Len returns the number of entities in the set.
func (s *Set) Len() int {
	return len(s.entities)
}

// Symbols returns all symbols in sorted order.
func (s *Set) Symbols() []genes.Symbol {
	out := make([]genes.Symbol, len(s.symbols))
	copy(out, s.symbols)
	return out
}

// Entities returns all entities in sorted symbol order.
func (s *Set) Entities() []*Entity {
	out := make([]*Entity, 0, len(s.symbols))
	for _, symbol := range s.symbols {
		out = append(out, s.entities[symbol])
	}
	return out
}

// ForEach calls fn for each entity in sorted symbol order. Iteration
// stops early if fn returns false.
func (s *Set) ForEach(fn func(*Entity) bool) {
	for _, symbol := range s.symbols {
		if !fn(s.entities[symbol]) {
			return
		}
	}
}
