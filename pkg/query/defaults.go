package query

import (
	"github.com/neurocrista/genemap/pkg/facts"
	"github.com/neurocrista/genemap/pkg/genes"
	"github.com/neurocrista/genemap/pkg/merge"
	"github.com/neurocrista/genemap/pkg/projections"
)

// Defaults returns definitions for the built-in projections. The registry
// supplies role and cross-reference annotations for the graph and detail
// projections; nil selects the default registry.
func Defaults(registry *genes.Registry) []Definition {
	if registry == nil {
		registry = genes.Default()
	}
	sourceIDs := sourceEnum()

	return []Definition{
		{
			Name:        "gene_sources",
			Description: "Per-gene source presence flags with per-source coverage counts.",
			Run: func(set *merge.Set, _ map[string]any) (Report, error) {
				return projections.Coverage(set), nil
			},
		},
		{
			Name:        "enrichment",
			Description: "Source-count tiers showing how deeply each gene is annotated.",
			Run: func(set *merge.Set, _ map[string]any) (Report, error) {
				return projections.Enrichment(set), nil
			},
		},
		{
			Name:        "gap_report",
			Description: "Genes present in one source but absent from another.",
			Params: []ParamSpec{
				{
					Name:        "require",
					Type:        TypeString,
					Default:     string(facts.SourceIDOMIM),
					Enum:        sourceIDs,
					Description: "Source the gene must appear in.",
				},
				{
					Name:        "absent",
					Type:        TypeString,
					Default:     string(facts.SourceIDFaceBase),
					Enum:        sourceIDs,
					Description: "Source the gene must be missing from.",
				},
			},
			Run: func(set *merge.Set, params map[string]any) (Report, error) {
				gp := projections.GapParams{
					Require: facts.SourceID(params["require"].(string)),
					Absent:  facts.SourceID(params["absent"].(string)),
				}
				return projections.Gaps(set, gp)
			},
		},
		{
			Name:        "weighted_gaps",
			Description: "Priority-scored research gap ranking with component breakdowns.",
			Run: func(set *merge.Set, _ map[string]any) (Report, error) {
				return projections.WeightedGaps(set), nil
			},
		},
		{
			Name:        "funding_gaps",
			Description: "Disease genes with no active funding, scored by urgency.",
			Run: func(set *merge.Set, _ map[string]any) (Report, error) {
				return projections.FundingGaps(set), nil
			},
		},
		{
			Name:        "anomalies",
			Description: "Cross-source inconsistencies worth a curator's attention.",
			Run: func(set *merge.Set, _ map[string]any) (Report, error) {
				return projections.Anomalies(set), nil
			},
		},
		{
			Name:        "graph",
			Description: "Gene relationship graph with phenotype, syndrome, pathway, and interaction edges.",
			Run: func(set *merge.Set, _ map[string]any) (Report, error) {
				return projections.Graph(set, registry), nil
			},
		},
		{
			Name:        "gene_detail",
			Description: "Everything known about one gene across all sources.",
			Params: []ParamSpec{
				{
					Name:        "symbol",
					Type:        TypeString,
					Required:    true,
					Description: "HGNC symbol, case-sensitive.",
				},
			},
			Run: func(set *merge.Set, params map[string]any) (Report, error) {
				return projections.Detail(set, registry, genes.Symbol(params["symbol"].(string)))
			},
		},
	}
}

func sourceEnum() []string {
	all := facts.AllSources()
	ids := make([]string, len(all))
	for i, id := range all {
		ids[i] = string(id)
	}
	return ids
}
