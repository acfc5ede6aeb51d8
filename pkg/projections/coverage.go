package projections

import (
	"github.com/neurocrista/genemap/pkg/facts"
	"github.com/neurocrista/genemap/pkg/merge"
)

// Coverage reports every gene's per-source presence flags plus
// per-source coverage counts, computed in one pass over the set.
func Coverage(set *merge.Set) Report {
	perGene := make(map[string]map[string]bool, set.Len())
	counts := make(map[string]int, len(facts.AllSources()))
	for _, src := range facts.AllSources() {
		counts[src.PresenceFlag()] = 0
	}

	set.ForEach(func(e *merge.Entity) bool {
		flags := e.Presence()
		perGene[e.Symbol().String()] = flags
		for flag, present := range flags {
			if present {
				counts[flag]++
			}
		}
		return true
	})

	return Report{
		"genes":         perGene,
		"source_counts": counts,
		"total":         set.Len(),
	}
}

// Covered reports whether every source in subset covers the gene.
func Covered(e *merge.Entity, subset ...facts.SourceID) bool {
	for _, src := range subset {
		if !e.In(src) {
			return false
		}
	}
	return true
}
