package projections

import (
	"fmt"

	"github.com/neurocrista/genemap/pkg/errors"
	"github.com/neurocrista/genemap/pkg/facts"
	"github.com/neurocrista/genemap/pkg/genes"
	"github.com/neurocrista/genemap/pkg/merge"
)

// GapParams selects the gap predicate pair: a gap is a gene where the
// required source is present and the absent source is missing.
type GapParams struct {
	Require facts.SourceID
	Absent  facts.SourceID
}

// DefaultGapParams returns the production predicate pair: disease
// association on record (omim) but no experimental dataset (facebase).
func DefaultGapParams() GapParams {
	return GapParams{
		Require: facts.SourceIDOMIM,
		Absent:  facts.SourceIDFaceBase,
	}
}

// Gaps reports the genes matching the required/absent predicate pair,
// each with its syndrome list for display, plus per-source missing
// counts across the whole universe. The missing counts come from the
// same pass as the gap list, so the cost stays one scan of the set.
func Gaps(set *merge.Set, params GapParams) (Report, error) {
	if !params.Require.IsValid() {
		return nil, &errors.ConfigError{
			Component: "gap projection",
			Message:   fmt.Sprintf("unknown required source %q", string(params.Require)),
		}
	}
	if !params.Absent.IsValid() {
		return nil, &errors.ConfigError{
			Component: "gap projection",
			Message:   fmt.Sprintf("unknown absent source %q", string(params.Absent)),
		}
	}

	all := facts.AllSources()
	missing := make(map[facts.SourceID]int, len(all))
	gaps := make([]map[string]any, 0)

	set.ForEach(func(e *merge.Entity) bool {
		for _, src := range all {
			if !e.In(src) {
				missing[src]++
			}
		}
		if e.In(params.Require) && !e.In(params.Absent) {
			syndromes, _ := e.Field("omim_syndromes")
			gaps = append(gaps, map[string]any{
				"symbol":    e.Symbol().String(),
				"syndromes": syndromes,
			})
		}
		return true
	})

	summary := Report{
		"total":     set.Len(),
		"gap_count": len(gaps),
	}
	for _, src := range all {
		summary[fmt.Sprintf("missing_%s_count", src)] = missing[src]
	}

	return Report{
		"research_gaps": gaps,
		"summary":       summary,
	}, nil
}

// Missing lists the genes a source does not cover, in sorted order.
func Missing(set *merge.Set, source facts.SourceID) ([]genes.Symbol, error) {
	if !source.IsValid() {
		return nil, &errors.ConfigError{
			Component: "gap projection",
			Message:   fmt.Sprintf("unknown source %q", string(source)),
		}
	}
	out := make([]genes.Symbol, 0)
	set.ForEach(func(e *merge.Entity) bool {
		if !e.In(source) {
			out = append(out, e.Symbol())
		}
		return true
	})
	return out, nil
}
