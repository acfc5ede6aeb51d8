// Package facts defines the source namespaces and typed fact records that
// feed the merge engine. Each upstream source owns a disjoint set of
// attributes (enforced at construction, never at merge) and contributes
// immutable per-gene records. The attribute schema is the single declared
// table of names, owners, and defaults shared by merge and projections.
package facts

// SourceID identifies an upstream data source for compile-time safety.
type SourceID string

// String returns the string representation of a SourceID.
func (id SourceID) String() string {
	return string(id)
}

// Source ID constants for compile-time safety and consistency.
const (
	SourceIDGO             SourceID = "go"
	SourceIDOMIM           SourceID = "omim"
	SourceIDHPO            SourceID = "hpo"
	SourceIDUniProt        SourceID = "uniprot"
	SourceIDFaceBase       SourceID = "facebase"
	SourceIDClinVar        SourceID = "clinvar"
	SourceIDPubMed         SourceID = "pubmed"
	SourceIDGnomAD         SourceID = "gnomad"
	SourceIDNIHReporter    SourceID = "nih_reporter"
	SourceIDGTEx           SourceID = "gtex"
	SourceIDClinicalTrials SourceID = "clinicaltrials"
	SourceIDSTRING         SourceID = "string"
)

// AllSources returns all source IDs in canonical display order.
func AllSources() []SourceID {
	return []SourceID{
		SourceIDGO,
		SourceIDOMIM,
		SourceIDHPO,
		SourceIDUniProt,
		SourceIDFaceBase,
		SourceIDClinVar,
		SourceIDPubMed,
		SourceIDGnomAD,
		SourceIDNIHReporter,
		SourceIDGTEx,
		SourceIDClinicalTrials,
		SourceIDSTRING,
	}
}

// IsValid reports whether the source ID is one of the defined constants.
func (id SourceID) IsValid() bool {
	switch id {
	case SourceIDGO, SourceIDOMIM, SourceIDHPO, SourceIDUniProt,
		SourceIDFaceBase, SourceIDClinVar, SourceIDPubMed, SourceIDGnomAD,
		SourceIDNIHReporter, SourceIDGTEx, SourceIDClinicalTrials,
		SourceIDSTRING:
		return true
	}
	return false
}

// sourceLabels maps each source to its human-readable display name.
var sourceLabels = map[SourceID]string{
	SourceIDGO:             "Gene Ontology",
	SourceIDOMIM:           "OMIM",
	SourceIDHPO:            "HPO",
	SourceIDUniProt:        "UniProt",
	SourceIDFaceBase:       "FaceBase",
	SourceIDClinVar:        "ClinVar",
	SourceIDPubMed:         "PubMed",
	SourceIDGnomAD:         "gnomAD",
	SourceIDNIHReporter:    "NIH Reporter",
	SourceIDGTEx:           "GTEx",
	SourceIDClinicalTrials: "ClinicalTrials",
	SourceIDSTRING:         "STRING",
}

// sourceURLs maps each source to its provider home page.
var sourceURLs = map[SourceID]string{
	SourceIDGO:             "http://geneontology.org/",
	SourceIDOMIM:           "https://www.omim.org/",
	SourceIDHPO:            "https://hpo.jax.org/",
	SourceIDUniProt:        "https://www.uniprot.org/",
	SourceIDFaceBase:       "https://www.facebase.org/",
	SourceIDClinVar:        "https://www.ncbi.nlm.nih.gov/clinvar/",
	SourceIDPubMed:         "https://pubmed.ncbi.nlm.nih.gov/",
	SourceIDGnomAD:         "https://gnomad.broadinstitute.org/",
	SourceIDNIHReporter:    "https://reporter.nih.gov/",
	SourceIDGTEx:           "https://gtexportal.org/",
	SourceIDClinicalTrials: "https://clinicaltrials.gov/",
	SourceIDSTRING:         "https://string-db.org/",
}

// Label returns the human-readable display name for the source.
func (id SourceID) Label() string {
	if label, ok := sourceLabels[id]; ok {
		return label
	}
	return string(id)
}

// URL returns the provider home page for the source.
func (id SourceID) URL() string {
	return sourceURLs[id]
}

// PresenceFlag returns the per-source presence flag name used in reports,
// e.g. "in_omim".
func (id SourceID) PresenceFlag() string {
	return "in_" + string(id)
}
