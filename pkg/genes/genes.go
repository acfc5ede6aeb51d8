// Package genes defines the canonical gene registry for the genemap system.
// The registry is the fixed universe of entity keys: every merged record,
// projection, and report is keyed by an HGNC symbol drawn from it. Each entry
// carries the cross-reference IDs fetchers need to query their sources
// (NCBI Gene ID, UniProt accession, OMIM number) and the gene's developmental
// role in the neural crest gene regulatory network.
package genes

import "strings"

// Symbol is a case-sensitive HGNC gene symbol used as the entity key
// throughout the system.
type Symbol string

// String returns the string representation of a Symbol.
func (s Symbol) String() string {
	return string(s)
}

// IsValid reports whether the symbol is usable as an entity key.
// Symbols are non-empty and contain no whitespace.
func (s Symbol) IsValid() bool {
	if s == "" {
		return false
	}
	return !strings.ContainsAny(string(s), " \t\n\r")
}

// Gene is a registry entry: the HGNC symbol, the source-native
// cross-reference IDs used by fetchers to construct queries, and the
// gene's developmental role.
type Gene struct {
	Symbol  Symbol `json:"symbol" yaml:"symbol"`
	NCBI    string `json:"ncbi,omitempty" yaml:"ncbi,omitempty"`       // NCBI Gene ID (human)
	UniProt string `json:"uniprot,omitempty" yaml:"uniprot,omitempty"` // UniProt canonical accession (human)
	OMIM    string `json:"omim,omitempty" yaml:"omim,omitempty"`       // OMIM gene/locus MIM number
	Role    Role   `json:"role" yaml:"role"`
}
