package sources

import (
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/neurocrista/genemap/pkg/facts"
	"github.com/neurocrista/genemap/pkg/genes"
)

// record is one decoded cache entry: the payload the file asserted plus
// the source-native ID, when the file carries one.
type record struct {
	nativeID string
	payload  facts.Payload
}

// decodeRecords parses a cache file for the given namespace. Every cache
// file is a map keyed by HGNC symbol; the value shape is per-source.
// JSON files decode through the same path since JSON is a YAML subset.
func decodeRecords(id facts.SourceID, data []byte) (map[genes.Symbol]record, error) {
	switch id {
	case facts.SourceIDGO:
		return decodeAs(data, func(r struct {
			NativeID string        `yaml:"native_id"`
			Terms    []facts.GOTerm `yaml:"go_terms"`
		}) record {
			return record{nativeID: r.NativeID, payload: facts.GOFacts{Terms: r.Terms}}
		})
	case facts.SourceIDOMIM:
		return decodeAs(data, func(r struct {
			NativeID  string   `yaml:"native_id"`
			Syndromes []string `yaml:"omim_syndromes"`
		}) record {
			return record{nativeID: r.NativeID, payload: facts.OMIMFacts{Syndromes: r.Syndromes}}
		})
	case facts.SourceIDHPO:
		return decodeAs(data, func(r struct {
			NativeID   string   `yaml:"native_id"`
			Phenotypes []string `yaml:"phenotypes"`
		}) record {
			return record{nativeID: r.NativeID, payload: facts.HPOFacts{Phenotypes: r.Phenotypes}}
		})
	case facts.SourceIDUniProt:
		return decodeAs(data, func(r struct {
			NativeID    string `yaml:"native_id"`
			ProteinName string `yaml:"protein_name"`
		}) record {
			return record{nativeID: r.NativeID, payload: facts.UniProtFacts{ProteinName: r.ProteinName}}
		})
	case facts.SourceIDFaceBase:
		return decodeAs(data, func(r struct {
			NativeID string `yaml:"native_id"`
		}) record {
			return record{nativeID: r.NativeID, payload: facts.FaceBaseFacts{}}
		})
	case facts.SourceIDClinVar:
		// ClinVar caches use the fetcher's working shape: a bare count
		// plus the top variants under "variants". The gene ID is filled
		// from the registry cross-references.
		return decodeAs(data, func(r struct {
			PathogenicCount int             `yaml:"pathogenic_count"`
			Variants        []facts.Variant `yaml:"variants"`
		}) record {
			return record{payload: facts.ClinVarFacts{
				PathogenicCount: r.PathogenicCount,
				Variants:        r.Variants,
			}}
		})
	case facts.SourceIDPubMed:
		return decodeAs(data, func(r struct {
			Total  int           `yaml:"pubmed_total"`
			Recent int           `yaml:"pubmed_recent"`
			Papers []facts.Paper `yaml:"pubmed_papers"`
		}) record {
			return record{payload: facts.PubMedFacts{Total: r.Total, Recent: r.Recent, Papers: r.Papers}}
		})
	case facts.SourceIDGnomAD:
		return decodeAs(data, func(r struct {
			PLI   *float64 `yaml:"pli_score"`
			LOEUF *float64 `yaml:"loeuf_score"`
		}) record {
			return record{payload: facts.GnomADFacts{PLI: r.PLI, LOEUF: r.LOEUF}}
		})
	case facts.SourceIDNIHReporter:
		return decodeAs(data, func(r struct {
			ActiveGrantCount int             `yaml:"active_grant_count"`
			Projects         []facts.Project `yaml:"nih_reporter_projects"`
		}) record {
			return record{payload: facts.NIHReporterFacts{
				ActiveGrantCount: r.ActiveGrantCount,
				Projects:         r.Projects,
			}}
		})
	case facts.SourceIDGTEx:
		// GTEx caches key the record by Ensembl ID, which doubles as the
		// source-native identifier.
		return decodeAs(data, func(r struct {
			EnsemblID              string                   `yaml:"ensembl_id"`
			TopTissues             []facts.TissueExpression `yaml:"top_tissues"`
			CraniofacialExpression float64                  `yaml:"craniofacial_expression"`
		}) record {
			return record{nativeID: r.EnsemblID, payload: facts.GTExFacts{
				GTExID:                 r.EnsemblID,
				TopTissues:             r.TopTissues,
				CraniofacialExpression: r.CraniofacialExpression,
			}}
		})
	case facts.SourceIDClinicalTrials:
		return decodeAs(data, func(r struct {
			ActiveTrialCount int `yaml:"active_trial_count"`
		}) record {
			return record{payload: facts.ClinicalTrialsFacts{ActiveTrialCount: r.ActiveTrialCount}}
		})
	case facts.SourceIDSTRING:
		return decodeAs(data, func(r struct {
			Partners []facts.Partner `yaml:"string_partners"`
		}) record {
			return record{payload: facts.STRINGFacts{Partners: r.Partners}}
		})
	}
	return nil, fmt.Errorf("no cache decoder for source %q", id)
}

// decodeAs unmarshals a symbol-keyed map of T and converts each value.
func decodeAs[T any](data []byte, convert func(T) record) (map[genes.Symbol]record, error) {
	var raw map[genes.Symbol]T
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	out := make(map[genes.Symbol]record, len(raw))
	for symbol, rec := range raw {
		out[symbol] = convert(rec)
	}
	return out, nil
}
