package projections

import (
	"github.com/neurocrista/genemap/pkg/errors"
	"github.com/neurocrista/genemap/pkg/genes"
	"github.com/neurocrista/genemap/pkg/merge"
)

// Detail reports everything reconciled for one gene: its registry
// entry, presence flags, native identifiers, and every canonical
// attribute. Attributes owned by absent sources appear with defaults.
func Detail(set *merge.Set, registry *genes.Registry, symbol genes.Symbol) (Report, error) {
	e, ok := set.Get(symbol)
	if !ok {
		return nil, errors.NewNotFoundError("gene", symbol.String())
	}

	report := Report{
		"symbol":       symbol.String(),
		"sources":      e.Presence(),
		"source_count": e.InCount(),
	}
	if gene, ok := registry.Get(symbol); ok {
		report["role"] = string(gene.Role)
		report["role_label"] = gene.Role.Label()
		report["ncbi_id"] = gene.NCBI
		report["uniprot_id"] = gene.UniProt
		report["omim_id"] = gene.OMIM
	}
	for name, value := range e.Fields() {
		report[name] = value
	}

	native := make(map[string]string, len(e.NativeIDs()))
	for src, id := range e.NativeIDs() {
		native[string(src)] = id
	}
	report["native_ids"] = native

	return report, nil
}
