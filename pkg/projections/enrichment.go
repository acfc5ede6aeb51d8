package projections

import (
	"github.com/neurocrista/genemap/pkg/merge"
)

// Enrichment buckets genes by how many sources cover them: a tier per
// gene and the tier size distribution.
func Enrichment(set *merge.Set) Report {
	tiers := make(map[string]int, set.Len())
	distribution := make(map[int]int)

	set.ForEach(func(e *merge.Entity) bool {
		tier := e.InCount()
		tiers[e.Symbol().String()] = tier
		distribution[tier]++
		return true
	})

	return Report{
		"tiers":        tiers,
		"distribution": distribution,
		"total":        set.Len(),
	}
}
