package list

import (
	"github.com/neurocrista/genemap/pkg/facts"
	"github.com/neurocrista/genemap/pkg/genes"
	"github.com/neurocrista/genemap/pkg/merge"
)

// GeneRow is the machine-readable form of one coverage matrix row.
type GeneRow struct {
	Symbol      string          `json:"symbol" yaml:"symbol"`
	Role        string          `json:"role" yaml:"role"`
	Sources     []string        `json:"sources" yaml:"sources"`
	SourceCount int             `json:"source_count" yaml:"source_count"`
	Presence    map[string]bool `json:"presence" yaml:"presence"`
}

// GeneDetail is the machine-readable form of one gene's full record:
// registry identity plus everything the sources contributed.
type GeneDetail struct {
	Symbol      string            `json:"symbol" yaml:"symbol"`
	Role        string            `json:"role" yaml:"role"`
	NCBI        string            `json:"ncbi,omitempty" yaml:"ncbi,omitempty"`
	UniProt     string            `json:"uniprot,omitempty" yaml:"uniprot,omitempty"`
	OMIM        string            `json:"omim,omitempty" yaml:"omim,omitempty"`
	Sources     []string          `json:"sources" yaml:"sources"`
	SourceCount int               `json:"source_count" yaml:"source_count"`
	NativeIDs   map[string]string `json:"native_ids,omitempty" yaml:"native_ids,omitempty"`
	Fields      map[string]any    `json:"fields" yaml:"fields"`
}

// SourceRow is the machine-readable form of one source roster entry.
type SourceRow struct {
	ID       string `json:"id" yaml:"id"`
	Label    string `json:"label" yaml:"label"`
	URL      string `json:"url" yaml:"url"`
	Coverage int    `json:"coverage" yaml:"coverage"`
	Total    int    `json:"total" yaml:"total"`
}

// geneRows converts entities to serializable matrix rows.
func geneRows(entities []*merge.Entity, registry *genes.Registry) []GeneRow {
	rows := make([]GeneRow, 0, len(entities))
	for _, entity := range entities {
		role := ""
		if gene, ok := registry.Get(entity.Symbol()); ok {
			role = gene.Role.String()
		}
		rows = append(rows, GeneRow{
			Symbol:      entity.Symbol().String(),
			Role:        role,
			Sources:     sourceStrings(entity.Sources()),
			SourceCount: entity.InCount(),
			Presence:    entity.Presence(),
		})
	}
	return rows
}

// geneDetail converts one gene and its merged entity to the full record.
func geneDetail(gene genes.Gene, entity *merge.Entity) GeneDetail {
	nativeIDs := make(map[string]string)
	for id, nativeID := range entity.NativeIDs() {
		nativeIDs[string(id)] = nativeID
	}

	return GeneDetail{
		Symbol:      gene.Symbol.String(),
		Role:        gene.Role.String(),
		NCBI:        gene.NCBI,
		UniProt:     gene.UniProt,
		OMIM:        gene.OMIM,
		Sources:     sourceStrings(entity.Sources()),
		SourceCount: entity.InCount(),
		NativeIDs:   nativeIDs,
		Fields:      entity.Fields(),
	}
}

// sourceRows converts the source roster with coverage counts to rows.
func sourceRows(set *merge.Set) []SourceRow {
	total := set.Len()
	rows := make([]SourceRow, 0, len(facts.AllSources()))
	for _, id := range facts.AllSources() {
		count := 0
		set.ForEach(func(entity *merge.Entity) bool {
			if entity.In(id) {
				count++
			}
			return true
		})
		rows = append(rows, SourceRow{
			ID:       string(id),
			Label:    id.Label(),
			URL:      id.URL(),
			Coverage: count,
			Total:    total,
		})
	}
	return rows
}

// sourceStrings converts source IDs to plain strings for serialization.
func sourceStrings(ids []facts.SourceID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = string(id)
	}
	return out
}
