package facts

// Payload is one source's typed fact record for one gene. Each source
// namespace has exactly one record type; the type system keeps attribute
// ownership disjoint across sources.
type Payload interface {
	// Source returns the namespace that owns every attribute in the record.
	Source() SourceID
}

// GO aspect codes as used by the Gene Ontology annotation files.
const (
	AspectProcess   = "P" // biological process
	AspectFunction  = "F" // molecular function
	AspectComponent = "C" // cellular component
)

// GOTerm is one Gene Ontology annotation.
type GOTerm struct {
	ID     string `json:"term_id" yaml:"term_id"`
	Name   string `json:"term_name" yaml:"term_name"`
	Aspect string `json:"aspect" yaml:"aspect"` // P, F, or C
}

// GOFacts holds Gene Ontology annotations for one gene.
type GOFacts struct {
	Terms []GOTerm `json:"go_terms" yaml:"go_terms"`
}

// Source implements Payload.
func (GOFacts) Source() SourceID { return SourceIDGO }

// OMIMFacts holds OMIM disease associations for one gene. Syndrome entries
// are "Name, MIM number" strings as OMIM lists them.
type OMIMFacts struct {
	Syndromes []string `json:"omim_syndromes" yaml:"omim_syndromes"`
}

// Source implements Payload.
func (OMIMFacts) Source() SourceID { return SourceIDOMIM }

// HPOFacts holds Human Phenotype Ontology terms for one gene.
type HPOFacts struct {
	Phenotypes []string `json:"phenotypes" yaml:"phenotypes"`
}

// Source implements Payload.
func (HPOFacts) Source() SourceID { return SourceIDHPO }

// UniProtFacts holds protein annotations for one gene.
type UniProtFacts struct {
	ProteinName string `json:"protein_name" yaml:"protein_name"`
}

// Source implements Payload.
func (UniProtFacts) Source() SourceID { return SourceIDUniProt }

// FaceBaseFacts is the presence-only FaceBase record. The dataset accession
// travels as the contribution's native ID; there are no owned attributes.
type FaceBaseFacts struct{}

// Source implements Payload.
func (FaceBaseFacts) Source() SourceID { return SourceIDFaceBase }

// Variant is one ClinVar variant summary.
type Variant struct {
	Name                 string `json:"name" yaml:"name"`
	ClinicalSignificance string `json:"clinical_significance" yaml:"clinical_significance"`
	Condition            string `json:"condition" yaml:"condition"`
}

// ClinVarFacts holds pathogenic variant data for one gene. Variants carries
// the top entries by clinical significance, not the full set.
type ClinVarFacts struct {
	GeneID          string    `json:"clinvar_gene_id" yaml:"clinvar_gene_id"`
	PathogenicCount int       `json:"pathogenic_count" yaml:"pathogenic_count"`
	Variants        []Variant `json:"clinvar_variants" yaml:"clinvar_variants"`
}

// Source implements Payload.
func (ClinVarFacts) Source() SourceID { return SourceIDClinVar }

// Paper is one PubMed citation.
type Paper struct {
	PMID  string `json:"pmid" yaml:"pmid"`
	Title string `json:"title" yaml:"title"`
	Year  int    `json:"year" yaml:"year"`
}

// PubMedFacts holds publication counts for one gene. Recent counts
// publications from the last five years.
type PubMedFacts struct {
	Total  int     `json:"pubmed_total" yaml:"pubmed_total"`
	Recent int     `json:"pubmed_recent" yaml:"pubmed_recent"`
	Papers []Paper `json:"pubmed_papers" yaml:"pubmed_papers"`
}

// Source implements Payload.
func (PubMedFacts) Source() SourceID { return SourceIDPubMed }

// GnomADFacts holds constraint scores for one gene. Scores are optional:
// nil means gnomAD has no score for the gene, which is distinct from 0.
type GnomADFacts struct {
	PLI   *float64 `json:"pli_score" yaml:"pli_score"`
	LOEUF *float64 `json:"loeuf_score" yaml:"loeuf_score"`
}

// Source implements Payload.
func (GnomADFacts) Source() SourceID { return SourceIDGnomAD }

// Project is one NIH Reporter funded project.
type Project struct {
	Number     string `json:"number" yaml:"number"`
	Title      string `json:"title" yaml:"title"`
	FiscalYear int    `json:"fiscal_year" yaml:"fiscal_year"`
}

// NIHReporterFacts holds active grant data for one gene.
type NIHReporterFacts struct {
	ActiveGrantCount int       `json:"active_grant_count" yaml:"active_grant_count"`
	Projects         []Project `json:"nih_reporter_projects" yaml:"nih_reporter_projects"`
}

// Source implements Payload.
func (NIHReporterFacts) Source() SourceID { return SourceIDNIHReporter }

// TissueExpression is one GTEx tissue expression row.
type TissueExpression struct {
	Tissue    string  `json:"tissue" yaml:"tissue"`
	MedianTPM float64 `json:"median_tpm" yaml:"median_tpm"`
}

// GTExFacts holds tissue expression data for one gene. TopTissues carries
// the top tissues by median TPM; CraniofacialExpression is the average TPM
// across craniofacial-relevant tissues.
type GTExFacts struct {
	GTExID                 string             `json:"gtex_id" yaml:"gtex_id"` // Ensembl gene ID
	TopTissues             []TissueExpression `json:"top_tissues" yaml:"top_tissues"`
	CraniofacialExpression float64            `json:"craniofacial_expression" yaml:"craniofacial_expression"`
}

// Source implements Payload.
func (GTExFacts) Source() SourceID { return SourceIDGTEx }

// ClinicalTrialsFacts holds active trial counts for one gene.
type ClinicalTrialsFacts struct {
	ActiveTrialCount int `json:"active_trial_count" yaml:"active_trial_count"`
}

// Source implements Payload.
func (ClinicalTrialsFacts) Source() SourceID { return SourceIDClinicalTrials }

// Partner is one STRING protein-protein interaction partner.
type Partner struct {
	Symbol string  `json:"symbol" yaml:"symbol"`
	Score  float64 `json:"score" yaml:"score"`
}

// STRINGFacts holds protein-protein interaction partners for one gene.
type STRINGFacts struct {
	Partners []Partner `json:"string_partners" yaml:"string_partners"`
}

// Source implements Payload.
func (STRINGFacts) Source() SourceID { return SourceIDSTRING }

// Fields returns the payload's attributes keyed by declared attribute name.
// List-valued attributes are always non-nil so reports serialize as empty
// lists rather than nulls.
func Fields(p Payload) map[string]any {
	switch facts := p.(type) {
	case GOFacts:
		return map[string]any{"go_terms": orEmpty(facts.Terms)}
	case OMIMFacts:
		return map[string]any{"omim_syndromes": orEmpty(facts.Syndromes)}
	case HPOFacts:
		return map[string]any{"phenotypes": orEmpty(facts.Phenotypes)}
	case UniProtFacts:
		return map[string]any{"protein_name": facts.ProteinName}
	case FaceBaseFacts:
		return map[string]any{}
	case ClinVarFacts:
		return map[string]any{
			"clinvar_gene_id":  facts.GeneID,
			"pathogenic_count": facts.PathogenicCount,
			"clinvar_variants": orEmpty(facts.Variants),
		}
	case PubMedFacts:
		return map[string]any{
			"pubmed_total":  facts.Total,
			"pubmed_recent": facts.Recent,
			"pubmed_papers": orEmpty(facts.Papers),
		}
	case GnomADFacts:
		return map[string]any{
			"pli_score":   facts.PLI,
			"loeuf_score": facts.LOEUF,
		}
	case NIHReporterFacts:
		return map[string]any{
			"active_grant_count":    facts.ActiveGrantCount,
			"nih_reporter_projects": orEmpty(facts.Projects),
		}
	case GTExFacts:
		return map[string]any{
			"gtex_id":                 facts.GTExID,
			"top_tissues":             orEmpty(facts.TopTissues),
			"craniofacial_expression": facts.CraniofacialExpression,
		}
	case ClinicalTrialsFacts:
		return map[string]any{"active_trial_count": facts.ActiveTrialCount}
	case STRINGFacts:
		return map[string]any{"string_partners": orEmpty(facts.Partners)}
	default:
		return map[string]any{}
	}
}

// orEmpty replaces a nil slice with an empty one.
func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// knownPayload reports whether p is one of the declared fact record types.
func knownPayload(p Payload) bool {
	switch p.(type) {
	case GOFacts, OMIMFacts, HPOFacts, UniProtFacts, FaceBaseFacts,
		ClinVarFacts, PubMedFacts, GnomADFacts, NIHReporterFacts,
		GTExFacts, ClinicalTrialsFacts, STRINGFacts:
		return true
	}
	return false
}
