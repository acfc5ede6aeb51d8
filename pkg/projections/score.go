package projections

import (
	"fmt"
	"sort"
	"sync"

	"github.com/neurocrista/genemap/pkg/errors"
	"github.com/neurocrista/genemap/pkg/facts"
	"github.com/neurocrista/genemap/pkg/merge"
)

// Component is one named term of a score formula. Points computes the
// term's contribution for an entity. A non-zero Cap clamps the computed
// points to that magnitude, preserving sign.
type Component struct {
	Name   string
	Points func(*merge.Entity) float64
	Cap    float64
}

// Formula is a named additive score over merged entities. Scoring is
// total: every entity gets a score, and every component's points are
// reported alongside the sum so no term hides behind the final scalar.
//
// Numeric policy: ratio components use real float64 division with a
// zero denominator yielding zero, and caps apply to the computed points
// of each component, not to its inputs.
type Formula struct {
	name       string
	components []Component
}

// NewFormula validates and builds a scoring formula. Component names
// must be unique and non-empty; caps are magnitudes and must not be
// negative.
func NewFormula(name string, components ...Component) (*Formula, error) {
	if name == "" {
		return nil, &errors.ConfigError{
			Component: "score formula",
			Message:   "formula name must not be empty",
		}
	}
	if len(components) == 0 {
		return nil, &errors.ConfigError{
			Component: "score formula",
			Message:   fmt.Sprintf("formula %q has no components", name),
		}
	}
	seen := make(map[string]bool, len(components))
	for _, c := range components {
		if c.Name == "" {
			return nil, &errors.ConfigError{
				Component: "score formula",
				Message:   fmt.Sprintf("formula %q has an unnamed component", name),
			}
		}
		if seen[c.Name] {
			return nil, &errors.ConfigError{
				Component: "score formula",
				Message:   fmt.Sprintf("formula %q declares component %q twice", name, c.Name),
			}
		}
		if c.Points == nil {
			return nil, &errors.ConfigError{
				Component: "score formula",
				Message:   fmt.Sprintf("formula %q component %q has no points function", name, c.Name),
			}
		}
		if c.Cap < 0 {
			return nil, &errors.ConfigError{
				Component: "score formula",
				Message:   fmt.Sprintf("formula %q component %q has a negative cap", name, c.Name),
			}
		}
		seen[c.Name] = true
	}
	return &Formula{name: name, components: components}, nil
}

// Name returns the formula name.
func (f *Formula) Name() string {
	return f.name
}

// Score computes the total and per-component breakdown for one entity.
func (f *Formula) Score(e *merge.Entity) (float64, map[string]float64) {
	breakdown := make(map[string]float64, len(f.components))
	var total float64
	for _, c := range f.components {
		points := c.Points(e)
		if c.Cap > 0 {
			if points > c.Cap {
				points = c.Cap
			} else if points < -c.Cap {
				points = -c.Cap
			}
		}
		breakdown[c.Name] = points
		total += points
	}
	return total, breakdown
}

// Ranked is one entity's score with its component breakdown.
type Ranked struct {
	Symbol     string
	Score      float64
	Components map[string]float64
}

// Rank scores every entity in the set, ordered by descending score with
// ties broken by symbol.
func (f *Formula) Rank(set *merge.Set) []Ranked {
	out := make([]Ranked, 0, set.Len())
	set.ForEach(func(e *merge.Entity) bool {
		score, parts := f.Score(e)
		out = append(out, Ranked{
			Symbol:     e.Symbol().String(),
			Score:      score,
			Components: parts,
		})
		return true
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Symbol < out[j].Symbol
	})
	return out
}

var (
	priorityOnce    sync.Once
	priorityFormula *Formula
)

// PriorityFormula returns the production research-priority score:
// disease burden and evidence gaps push a gene up, active funding pulls
// it down.
func PriorityFormula() *Formula {
	priorityOnce.Do(func() {
		f, err := NewFormula("weighted_gaps",
			Component{
				Name: "syndromes",
				Points: func(e *merge.Entity) float64 {
					return 5 * float64(len(e.OMIM.Syndromes))
				},
			},
			Component{
				Name: "no_experiment",
				Points: func(e *merge.Entity) float64 {
					if !e.In(facts.SourceIDFaceBase) {
						return 10
					}
					return 0
				},
			},
			Component{
				Name: "phenotype_breadth",
				Points: func(e *merge.Entity) float64 {
					if len(e.HPO.Phenotypes) > 10 {
						return 3
					}
					return 0
				},
			},
			Component{
				Name: "variant_burden",
				Cap:  10,
				Points: func(e *merge.Entity) float64 {
					return 2 * float64(e.ClinVar.PathogenicCount) / 50
				},
			},
			Component{
				Name: "active_funding",
				Cap:  10,
				Points: func(e *merge.Entity) float64 {
					return -2 * float64(e.NIHReporter.ActiveGrantCount)
				},
			},
			Component{
				Name: "low_publication",
				Points: func(e *merge.Entity) float64 {
					if e.PubMed.Total < 50 {
						return 1
					}
					return 0
				},
			},
		)
		if err != nil {
			panic(fmt.Sprintf("projections: priority formula invalid: %v", err))
		}
		priorityFormula = f
	})
	return priorityFormula
}

// WeightedGaps ranks every gene by the production priority formula.
func WeightedGaps(set *merge.Set) Report {
	formula := PriorityFormula()
	ranked := formula.Rank(set)

	scores := make([]map[string]any, 0, len(ranked))
	for _, r := range ranked {
		scores = append(scores, map[string]any{
			"symbol":         r.Symbol,
			"priority_score": r.Score,
			"components":     r.Components,
		})
	}

	return Report{
		"scores": scores,
		"summary": Report{
			"total":   set.Len(),
			"formula": formula.Name(),
		},
	}
}
