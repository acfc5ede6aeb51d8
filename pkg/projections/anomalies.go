package projections

import (
	"fmt"
	"sort"

	"github.com/neurocrista/genemap/pkg/errors"
	"github.com/neurocrista/genemap/pkg/merge"
)

// AnomalyRule is a named cross-source consistency check. Detect returns
// an evidence snapshot when the entity trips the rule. Rules are
// independent of each other; an entity may match any subset.
type AnomalyRule struct {
	Name   string
	Detect func(*merge.Entity) (map[string]any, bool)
}

// AnomalyRules returns the production rule set.
func AnomalyRules() []AnomalyRule {
	return []AnomalyRule{
		{
			Name: "pathogenic_no_phenotype",
			Detect: func(e *merge.Entity) (map[string]any, bool) {
				if e.ClinVar.PathogenicCount > 0 && len(e.HPO.Phenotypes) == 0 {
					return map[string]any{
						"pathogenic_count": e.ClinVar.PathogenicCount,
						"phenotype_count":  0,
					}, true
				}
				return nil, false
			},
		},
		{
			Name: "constrained_no_trials",
			Detect: func(e *merge.Entity) (map[string]any, bool) {
				if e.GnomAD.PLI != nil && *e.GnomAD.PLI >= 0.9 && e.ClinicalTrials.ActiveTrialCount == 0 {
					return map[string]any{
						"pli_score":          *e.GnomAD.PLI,
						"active_trial_count": 0,
					}, true
				}
				return nil, false
			},
		},
		{
			Name: "funded_no_recent_publications",
			Detect: func(e *merge.Entity) (map[string]any, bool) {
				if e.NIHReporter.ActiveGrantCount > 0 && e.PubMed.Recent == 0 {
					return map[string]any{
						"active_grant_count": e.NIHReporter.ActiveGrantCount,
						"pubmed_recent":      0,
					}, true
				}
				return nil, false
			},
		},
		{
			Name: "hub_without_function",
			Detect: func(e *merge.Entity) (map[string]any, bool) {
				if len(e.STRING.Partners) >= 5 && len(e.GO.Terms) == 0 {
					return map[string]any{
						"partner_count": len(e.STRING.Partners),
						"go_term_count": 0,
					}, true
				}
				return nil, false
			},
		},
	}
}

// Anomalies scans the set with the production rules.
func Anomalies(set *merge.Set) Report {
	report, err := ScanAnomalies(set, AnomalyRules())
	if err != nil {
		panic(fmt.Sprintf("projections: production anomaly rules invalid: %v", err))
	}
	return report
}

// ScanAnomalies runs a rule set over every entity. Each match emits a
// (symbol, rule, evidence) triple, sorted by symbol then rule name;
// counts cover every rule, including those with zero matches. Matches
// are findings, not failures: the scan never aborts on a match.
func ScanAnomalies(set *merge.Set, rules []AnomalyRule) (Report, error) {
	seen := make(map[string]bool, len(rules))
	for _, r := range rules {
		if r.Name == "" {
			return nil, &errors.ConfigError{
				Component: "anomaly scan",
				Message:   "rule with empty name",
			}
		}
		if r.Detect == nil {
			return nil, &errors.ConfigError{
				Component: "anomaly scan",
				Message:   fmt.Sprintf("rule %q has no detect function", r.Name),
			}
		}
		if seen[r.Name] {
			return nil, &errors.ConfigError{
				Component: "anomaly scan",
				Message:   fmt.Sprintf("duplicate rule %q", r.Name),
			}
		}
		seen[r.Name] = true
	}

	type match struct {
		symbol   string
		rule     string
		evidence map[string]any
	}
	var matches []match
	counts := make(map[string]int, len(rules))
	for _, r := range rules {
		counts[r.Name] = 0
	}

	set.ForEach(func(e *merge.Entity) bool {
		for _, r := range rules {
			evidence, ok := r.Detect(e)
			if !ok {
				continue
			}
			counts[r.Name]++
			matches = append(matches, match{
				symbol:   e.Symbol().String(),
				rule:     r.Name,
				evidence: evidence,
			})
		}
		return true
	})
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].symbol != matches[j].symbol {
			return matches[i].symbol < matches[j].symbol
		}
		return matches[i].rule < matches[j].rule
	})

	triples := make([]map[string]any, 0, len(matches))
	for _, m := range matches {
		triples = append(triples, map[string]any{
			"symbol":   m.symbol,
			"rule":     m.rule,
			"evidence": m.evidence,
		})
	}

	return Report{
		"anomalies": triples,
		"counts":    counts,
		"total":     len(triples),
	}, nil
}
