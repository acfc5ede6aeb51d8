package projections

import (
	"fmt"
	"sort"
	"sync"

	"github.com/neurocrista/genemap/pkg/facts"
	"github.com/neurocrista/genemap/pkg/merge"
)

var (
	fundingOnce    sync.Once
	fundingFormula *Formula
)

// FundingFormula returns the production translational-neglect score:
// how badly a disease gene lacks funding and trial activity.
func FundingFormula() *Formula {
	fundingOnce.Do(func() {
		f, err := NewFormula("funding_gaps",
			Component{
				Name: "disease_burden",
				Cap:  20,
				Points: func(e *merge.Entity) float64 {
					return 4 * float64(len(e.OMIM.Syndromes))
				},
			},
			Component{
				Name: "unfunded",
				Points: func(e *merge.Entity) float64 {
					if e.NIHReporter.ActiveGrantCount == 0 {
						return 8
					}
					return 0
				},
			},
			Component{
				Name: "untrialed",
				Points: func(e *merge.Entity) float64 {
					if e.ClinicalTrials.ActiveTrialCount == 0 {
						return 4
					}
					return 0
				},
			},
			Component{
				Name: "constrained",
				Points: func(e *merge.Entity) float64 {
					if e.GnomAD.PLI != nil && *e.GnomAD.PLI >= 0.9 {
						return 5
					}
					return 0
				},
			},
		)
		if err != nil {
			panic(fmt.Sprintf("projections: funding formula invalid: %v", err))
		}
		fundingFormula = f
	})
	return fundingFormula
}

// CriticalGap reports whether a gene is a critical funding gap: disease
// association on record, no experimental dataset, zero active grants.
func CriticalGap(e *merge.Entity) bool {
	return e.In(facts.SourceIDOMIM) &&
		!e.In(facts.SourceIDFaceBase) &&
		e.NIHReporter.ActiveGrantCount == 0
}

// FundingGaps assesses translational neglect across the whole universe
// and flags the critical funding gaps, each with its evidence and score
// breakdown, ordered by descending score.
func FundingGaps(set *merge.Set) Report {
	formula := FundingFormula()

	type flagged struct {
		entity *merge.Entity
		score  float64
		parts  map[string]float64
	}
	var critical []flagged
	set.ForEach(func(e *merge.Entity) bool {
		if !CriticalGap(e) {
			return true
		}
		score, parts := formula.Score(e)
		critical = append(critical, flagged{entity: e, score: score, parts: parts})
		return true
	})
	sort.Slice(critical, func(i, j int) bool {
		if critical[i].score != critical[j].score {
			return critical[i].score > critical[j].score
		}
		return critical[i].entity.Symbol() < critical[j].entity.Symbol()
	})

	entries := make([]map[string]any, 0, len(critical))
	for _, c := range critical {
		syndromes, _ := c.entity.Field("omim_syndromes")
		entries = append(entries, map[string]any{
			"symbol":             c.entity.Symbol().String(),
			"syndromes":          syndromes,
			"pli_score":          c.entity.GnomAD.PLI,
			"active_trial_count": c.entity.ClinicalTrials.ActiveTrialCount,
			"funding_score":      c.score,
			"components":         c.parts,
		})
	}

	return Report{
		"genes_assessed": set.Len(),
		"critical":       entries,
		"summary": Report{
			"critical_count": len(entries),
		},
	}
}
