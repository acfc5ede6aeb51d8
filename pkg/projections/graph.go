package projections

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/neurocrista/genemap/pkg/facts"
	"github.com/neurocrista/genemap/pkg/genes"
	"github.com/neurocrista/genemap/pkg/merge"
)

// Graph builds the Cytoscape-style gene landscape: one node per gene
// colored by developmental role and sized by publication volume, with
// edges for shared phenotypes, shared syndromes, shared GO biological
// processes, and STRING interactions inside the universe. The registry
// supplies each gene's role.
func Graph(set *merge.Set, registry *genes.Registry) Report {
	nodes := graphNodes(set, registry)

	edges := phenotypeEdges(set)
	edges = append(edges, syndromeEdges(set)...)
	edges = append(edges, pathwayEdges(set)...)
	edges = append(edges, ppiEdges(set)...)

	sourceLabels := make([]string, 0, len(facts.AllSources()))
	for _, src := range facts.AllSources() {
		sourceLabels = append(sourceLabels, src.Label())
	}
	roleLabels := make(map[string]string, len(genes.AllRoles()))
	for _, role := range genes.AllRoles() {
		roleLabels[string(role)] = role.Label()
	}

	return Report{
		"nodes": nodes,
		"edges": edges,
		"metadata": Report{
			"title":      "genemap: Neural Crest Gene Reconciliation",
			"gene_count": len(nodes),
			"edge_count": len(edges),
			"sources":    sourceLabels,
			"roles":      roleLabels,
		},
	}
}

// graphNodes sizes each gene by log-scaled publication count (10-35px)
// and classifies its publication trend from the recent/total ratio.
func graphNodes(set *merge.Set, registry *genes.Registry) []map[string]any {
	nodes := make([]map[string]any, 0, set.Len())
	set.ForEach(func(e *merge.Entity) bool {
		var role genes.Role
		if gene, ok := registry.Get(e.Symbol()); ok {
			role = gene.Role
		}

		pubTotal := e.PubMed.Total
		pubRecent := e.PubMed.Recent
		size := 10 + math.Min(25, math.Log(1+float64(pubTotal))*4)

		// Velocity is rounded to two decimals before banding, so a
		// ratio of 0.501 lands in "stable", not "rising".
		velocity := 0.0
		trend := "none"
		if pubTotal > 0 {
			velocity = math.Round(float64(pubRecent)/float64(pubTotal)*100) / 100
			switch {
			case velocity > 0.5:
				trend = "rising"
			case velocity > 0.2:
				trend = "stable"
			default:
				trend = "declining"
			}
		}

		nodes = append(nodes, map[string]any{
			"data": map[string]any{
				"id":           e.Symbol().String(),
				"label":        e.Symbol().String(),
				"type":         string(role),
				"role_label":   role.Label(),
				"source_count": e.InCount(),
				"pub_count":    pubTotal,
				"pub_recent":   pubRecent,
				"velocity":     velocity,
				"trend":        trend,
				"color":        role.Color(),
				"size":         int(math.Round(size)),
			},
		})
		return true
	})
	return nodes
}

// phenotypeEdges links genes sharing an HPO phenotype, skipping
// near-universal phenotypes (more than 5 carriers) to avoid edge
// explosion.
func phenotypeEdges(set *merge.Set) []map[string]any {
	index := make(map[string][]string)
	set.ForEach(func(e *merge.Entity) bool {
		for _, p := range e.HPO.Phenotypes {
			index[p] = appendUnique(index[p], e.Symbol().String())
		}
		return true
	})
	return pairEdges(index, "shared_phenotype", 2, 5)
}

// syndromeEdges links genes sharing an OMIM syndrome. Syndrome names
// are matched with the MIM number suffix stripped at the first comma.
func syndromeEdges(set *merge.Set) []map[string]any {
	index := make(map[string][]string)
	set.ForEach(func(e *merge.Entity) bool {
		for _, s := range e.OMIM.Syndromes {
			name := s
			if i := strings.Index(s, ","); i >= 0 {
				name = strings.TrimSpace(s[:i])
			}
			index[name] = appendUnique(index[name], e.Symbol().String())
		}
		return true
	})
	return pairEdges(index, "shared_syndrome", 2, 0)
}

// pathwayEdges links genes sharing a GO biological process term.
func pathwayEdges(set *merge.Set) []map[string]any {
	index := make(map[string][]string)
	set.ForEach(func(e *merge.Entity) bool {
		for _, term := range e.GO.Terms {
			if term.Aspect != facts.AspectProcess || term.Name == "" {
				continue
			}
			index[term.Name] = appendUnique(index[term.Name], e.Symbol().String())
		}
		return true
	})
	return pairEdges(index, "shared_pathway", 2, 8)
}

// ppiEdges links genes whose STRING interaction partner is also in the
// universe. The label keeps the discovering gene first; endpoints are
// sorted for deduplication.
func ppiEdges(set *merge.Set) []map[string]any {
	edges := make([]map[string]any, 0)
	seen := make(map[edgeKey]bool)

	set.ForEach(func(e *merge.Entity) bool {
		symbol := e.Symbol().String()
		for _, partner := range e.STRING.Partners {
			if partner.Symbol == "" {
				continue
			}
			if _, ok := set.Get(genes.Symbol(partner.Symbol)); !ok {
				continue
			}
			a, b := symbol, partner.Symbol
			if b < a {
				a, b = b, a
			}
			key := edgeKey{source: a, target: b, kind: "ppi"}
			if seen[key] {
				continue
			}
			seen[key] = true

			label := fmt.Sprintf("%s-%s", symbol, partner.Symbol)
			if partner.Score != 0 {
				label = fmt.Sprintf("%s (%v)", label, partner.Score)
			}
			edges = append(edges, map[string]any{
				"data": map[string]any{
					"source": a,
					"target": b,
					"type":   "ppi",
					"label":  label,
				},
			})
		}
		return true
	})
	return edges
}

type edgeKey struct {
	source string
	target string
	kind   string
}

// pairEdges expands a term index into deduplicated pair edges for terms
// shared by minShared to maxShared genes (maxShared 0 = unbounded). The
// first term to produce a pair, in sorted term order, keeps its label.
func pairEdges(index map[string][]string, kind string, minShared, maxShared int) []map[string]any {
	terms := make([]string, 0, len(index))
	for term := range index {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	edges := make([]map[string]any, 0)
	seen := make(map[edgeKey]bool)
	for _, term := range terms {
		members := index[term]
		if len(members) < minShared || (maxShared > 0 && len(members) > maxShared) {
			continue
		}
		for i := 0; i < len(members); i++ {
			for j := i + 1; j < len(members); j++ {
				key := edgeKey{source: members[i], target: members[j], kind: kind}
				if seen[key] {
					continue
				}
				seen[key] = true
				edges = append(edges, map[string]any{
					"data": map[string]any{
						"source": members[i],
						"target": members[j],
						"type":   kind,
						"label":  term,
					},
				})
			}
		}
	}
	return edges
}

// appendUnique appends s unless already present. Member lists stay tiny
// so a linear scan beats a per-term set.
func appendUnique(list []string, s string) []string {
	for _, v := range list {
		if v == s {
			return list
		}
	}
	return append(list, s)
}
