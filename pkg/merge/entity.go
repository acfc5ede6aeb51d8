package merge

import (
	"github.com/neurocrista/genemap/pkg/facts"
	"github.com/neurocrista/genemap/pkg/genes"
)

// Entity is the reconciled view of a single gene: one fact record per
// source namespace plus the presence flags and native identifiers
// accumulated during the fold. Records for sources that never mentioned
// the gene stay at their zero value, so every attribute reads as its
// declared default and callers never need a nil check.
type Entity struct {
	symbol genes.Symbol

	GO             facts.GOFacts
	OMIM           facts.OMIMFacts
	HPO            facts.HPOFacts
	UniProt        facts.UniProtFacts
	FaceBase       facts.FaceBaseFacts
	ClinVar        facts.ClinVarFacts
	PubMed         facts.PubMedFacts
	GnomAD         facts.GnomADFacts
	NIHReporter    facts.NIHReporterFacts
	GTEx           facts.GTExFacts
	ClinicalTrials facts.ClinicalTrialsFacts
	STRING         facts.STRINGFacts

	present   map[facts.SourceID]bool
	nativeIDs map[facts.SourceID]string
}

// newEntity creates an empty entity for a symbol.
func newEntity(symbol genes.Symbol) *Entity {
	return &Entity{
		symbol:    symbol,
		present:   make(map[facts.SourceID]bool),
		nativeIDs: make(map[facts.SourceID]string),
	}
}

// Symbol returns the HGNC symbol this entity reconciles.
func (e *Entity) Symbol() genes.Symbol {
	return e.symbol
}

// In reports whether the source asserted presence for this gene.
func (e *Entity) In(source facts.SourceID) bool {
	return e.present[source]
}

// InCount returns the number of sources covering this gene.
func (e *Entity) InCount() int {
	return len(e.present)
}

// Sources returns the covering sources in canonical order.
func (e *Entity) Sources() []facts.SourceID {
	var out []facts.SourceID
	for _, src := range facts.AllSources() {
		if e.present[src] {
			out = append(out, src)
		}
	}
	return out
}

// Presence returns the coverage map keyed by presence flag name
// (in_go, in_omim, and so on). All twelve flags are always present.
func (e *Entity) Presence() map[string]bool {
	all := facts.AllSources()
	out := make(map[string]bool, len(all))
	for _, src := range all {
		out[src.PresenceFlag()] = e.present[src]
	}
	return out
}

// NativeID returns the identifier the source uses for this gene, or the
// empty string when no contribution asserted one.
func (e *Entity) NativeID(source facts.SourceID) string {
	return e.nativeIDs[source]
}

// NativeIDs returns every asserted native identifier keyed by source.
func (e *Entity) NativeIDs() map[facts.SourceID]string {
	out := make(map[facts.SourceID]string, len(e.nativeIDs))
	for src, id := range e.nativeIDs {
		out[src] = id
	}
	return out
}

// Payload returns the reconciled fact record for one source namespace.
// Absent sources yield the zero record. Unknown sources yield nil.
func (e *Entity) Payload(source facts.SourceID) facts.Payload {
	switch source {
	case facts.SourceIDGO:
		return e.GO
	case facts.SourceIDOMIM:
		return e.OMIM
	case facts.SourceIDHPO:
		return e.HPO
	case facts.SourceIDUniProt:
		return e.UniProt
	case facts.SourceIDFaceBase:
		return e.FaceBase
	case facts.SourceIDClinVar:
		return e.ClinVar
	case facts.SourceIDPubMed:
		return e.PubMed
	case facts.SourceIDGnomAD:
		return e.GnomAD
	case facts.SourceIDNIHReporter:
		return e.NIHReporter
	case facts.SourceIDGTEx:
		return e.GTEx
	case facts.SourceIDClinicalTrials:
		return e.ClinicalTrials
	case facts.SourceIDSTRING:
		return e.STRING
	}
	return nil
}

// Field resolves a canonical attribute by name. Attributes owned by
// absent sources carry their declared defaults. The second return is
// false for names the schema does not declare.
func (e *Entity) Field(name string) (any, bool) {
	attr, ok := facts.DefaultSchema().ByName(name)
	if !ok {
		return nil, false
	}
	return facts.Fields(e.Payload(attr.Owner))[name], true
}

// Fields returns every canonical attribute for this gene keyed by name.
func (e *Entity) Fields() map[string]any {
	out := make(map[string]any, facts.DefaultSchema().Len())
	for _, src := range facts.AllSources() {
		for name, value := range facts.Fields(e.Payload(src)) {
			out[name] = value
		}
	}
	return out
}

// markPresent records source coverage for this gene.
func (e *Entity) markPresent(source facts.SourceID) {
	e.present[source] = true
}

// setNativeID records the source's identifier for this gene.
func (e *Entity) setNativeID(source facts.SourceID, id string) {
	e.nativeIDs[source] = id
}

// setPayload stores a reconciled fact record in its namespace slot.
func (e *Entity) setPayload(p facts.Payload) {
	switch v := p.(type) {
	case facts.GOFacts:
		e.GO = v
	case facts.OMIMFacts:
		e.OMIM = v
	case facts.HPOFacts:
		e.HPO = v
	case facts.UniProtFacts:
		e.UniProt = v
	case facts.FaceBaseFacts:
		e.FaceBase = v
	case facts.ClinVarFacts:
		e.ClinVar = v
	case facts.PubMedFacts:
		e.PubMed = v
	case facts.GnomADFacts:
		e.GnomAD = v
	case facts.NIHReporterFacts:
		e.NIHReporter = v
	case facts.GTExFacts:
		e.GTEx = v
	case facts.ClinicalTrialsFacts:
		e.ClinicalTrials = v
	case facts.STRINGFacts:
		e.STRING = v
	}
}
