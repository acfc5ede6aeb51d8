package facts

import (
	"fmt"
	"sync"

	"github.com/neurocrista/genemap/pkg/errors"
)

// Kind classifies an attribute's value type and fixes its default. Defaults
// keep merge total: a gene with no contribution from a source still has a
// value for every attribute that source owns.
type Kind string

// Attribute kind constants.
const (
	KindString        Kind = "string"
	KindInt           Kind = "int"
	KindFloat         Kind = "float"
	KindOptionalFloat Kind = "optional_float" // nil means unset, distinct from 0
	KindStringList    Kind = "string_list"
	KindRecordList    Kind = "record_list"
)

// IsValid reports whether the kind is one of the defined constants.
func (k Kind) IsValid() bool {
	switch k {
	case KindString, KindInt, KindFloat, KindOptionalFloat, KindStringList, KindRecordList:
		return true
	}
	return false
}

// Default returns the kind's default value.
func (k Kind) Default() any {
	switch k {
	case KindString:
		return ""
	case KindInt:
		return 0
	case KindFloat:
		return 0.0
	case KindOptionalFloat:
		return nil
	case KindStringList:
		return []string{}
	case KindRecordList:
		return []any{}
	default:
		return nil
	}
}

// Attribute declares one entry of the field ownership table: a name, the
// single source that owns it, and its value kind.
type Attribute struct {
	Name  string   `json:"name" yaml:"name"`
	Owner SourceID `json:"owner" yaml:"owner"`
	Kind  Kind     `json:"kind" yaml:"kind"`
}

// Schema is a validated field ownership table. Attribute names are unique
// across all sources, so merging contributions is conflict-free by
// construction.
type Schema struct {
	byName  map[string]Attribute
	ordered []Attribute
}

// NewSchema builds a schema from the given attributes. Two attributes with
// the same name are rejected even under the same owner: ownership must be
// unambiguous.
func NewSchema(attrs ...Attribute) (*Schema, error) {
	s := &Schema{
		byName:  make(map[string]Attribute, len(attrs)),
		ordered: make([]Attribute, 0, len(attrs)),
	}
	for _, a := range attrs {
		if a.Name == "" {
			return nil, &errors.ConfigError{
				Component: "schema",
				Message:   "attribute with empty name",
			}
		}
		if !a.Owner.IsValid() {
			return nil, &errors.ConfigError{
				Component: "schema",
				Message:   fmt.Sprintf("attribute %q has unknown owner %q", a.Name, a.Owner),
			}
		}
		if !a.Kind.IsValid() {
			return nil, &errors.ConfigError{
				Component: "schema",
				Message:   fmt.Sprintf("attribute %q has unknown kind %q", a.Name, a.Kind),
			}
		}
		if prev, exists := s.byName[a.Name]; exists {
			return nil, &errors.ConfigError{
				Component: "schema",
				Message: fmt.Sprintf("attribute %q claimed by both %q and %q",
					a.Name, prev.Owner, a.Owner),
			}
		}
		s.byName[a.Name] = a
		s.ordered = append(s.ordered, a)
	}
	return s, nil
}

// Attributes returns all attributes in declaration order (grouped by source).
func (s *Schema) Attributes() []Attribute {
	out := make([]Attribute, len(s.ordered))
	copy(out, s.ordered)
	return out
}

// ByName returns the attribute with the given name.
func (s *Schema) ByName(name string) (Attribute, bool) {
	a, ok := s.byName[name]
	return a, ok
}

// BySource returns the attributes owned by the given source, in declaration
// order. Presence-only sources return an empty slice.
func (s *Schema) BySource(id SourceID) []Attribute {
	var out []Attribute
	for _, a := range s.ordered {
		if a.Owner == id {
			out = append(out, a)
		}
	}
	return out
}

// Len returns the number of declared attributes.
func (s *Schema) Len() int {
	return len(s.byName)
}

// declared is the field ownership table for the twelve sources. FaceBase is
// presence-only and owns no attributes.
var declared = []Attribute{
	{Name: "go_terms", Owner: SourceIDGO, Kind: KindRecordList},
	{Name: "omim_syndromes", Owner: SourceIDOMIM, Kind: KindStringList},
	{Name: "phenotypes", Owner: SourceIDHPO, Kind: KindStringList},
	{Name: "protein_name", Owner: SourceIDUniProt, Kind: KindString},
	{Name: "clinvar_gene_id", Owner: SourceIDClinVar, Kind: KindString},
	{Name: "pathogenic_count", Owner: SourceIDClinVar, Kind: KindInt},
	{Name: "clinvar_variants", Owner: SourceIDClinVar, Kind: KindRecordList},
	{Name: "pubmed_total", Owner: SourceIDPubMed, Kind: KindInt},
	{Name: "pubmed_recent", Owner: SourceIDPubMed, Kind: KindInt},
	{Name: "pubmed_papers", Owner: SourceIDPubMed, Kind: KindRecordList},
	{Name: "pli_score", Owner: SourceIDGnomAD, Kind: KindOptionalFloat},
	{Name: "loeuf_score", Owner: SourceIDGnomAD, Kind: KindOptionalFloat},
	{Name: "active_grant_count", Owner: SourceIDNIHReporter, Kind: KindInt},
	{Name: "nih_reporter_projects", Owner: SourceIDNIHReporter, Kind: KindRecordList},
	{Name: "gtex_id", Owner: SourceIDGTEx, Kind: KindString},
	{Name: "top_tissues", Owner: SourceIDGTEx, Kind: KindRecordList},
	{Name: "craniofacial_expression", Owner: SourceIDGTEx, Kind: KindFloat},
	{Name: "active_trial_count", Owner: SourceIDClinicalTrials, Kind: KindInt},
	{Name: "string_partners", Owner: SourceIDSTRING, Kind: KindRecordList},
}

// Singleton for the declared schema to avoid repeated construction.
var (
	defaultSchemaOnce sync.Once
	defaultSchema     *Schema
)

// DefaultSchema returns the declared field ownership table. The table is
// validated at build time by tests, so construction cannot fail here.
func DefaultSchema() *Schema {
	defaultSchemaOnce.Do(func() {
		s, err := NewSchema(declared...)
		if err != nil {
			panic(fmt.Sprintf("facts: declared schema invalid: %v", err))
		}
		defaultSchema = s
	})
	return defaultSchema
}
