// Package snapshot records daily pipeline state and computes the
// change digests between runs. A snapshot is a compact summary of one
// reconciled set: how many genes, which of them are critical funding
// gaps, and which have experimental coverage. Re-capturing the same
// date replaces that day's record, so repeated runs stay idempotent.
package snapshot

import (
	"time"

	"github.com/neurocrista/genemap/pkg/facts"
	"github.com/neurocrista/genemap/pkg/merge"
	"github.com/neurocrista/genemap/pkg/projections"
)

// DateLayout is the canonical snapshot date format.
const DateLayout = "2006-01-02"

// Record is one day's pipeline state.
type Record struct {
	Date            string   `json:"date"`
	TotalGenes      int      `json:"total_genes"`
	CriticalCount   int      `json:"critical_count"`
	GapSymbols      []string `json:"gap_symbols"`
	FacebaseSymbols []string `json:"facebase_symbols"`
}

// Capture summarizes a reconciled set as of the given day.
func Capture(set *merge.Set, day time.Time) Record {
	gaps := make([]string, 0)
	facebase := make([]string, 0)
	set.ForEach(func(e *merge.Entity) bool {
		if projections.CriticalGap(e) {
			gaps = append(gaps, e.Symbol().String())
		}
		if e.In(facts.SourceIDFaceBase) {
			facebase = append(facebase, e.Symbol().String())
		}
		return true
	})

	return Record{
		Date:            day.Format(DateLayout),
		TotalGenes:      set.Len(),
		CriticalCount:   len(gaps),
		GapSymbols:      gaps,
		FacebaseSymbols: facebase,
	}
}

// Digest is the difference between two snapshots: which gaps opened or
// closed, and where experimental coverage appeared or disappeared.
type Digest struct {
	Since          string   `json:"since"`
	Date           string   `json:"date"`
	GapsOpened     []string `json:"gaps_opened"`
	GapsClosed     []string `json:"gaps_closed"`
	FacebaseGained []string `json:"facebase_gained"`
	FacebaseLost   []string `json:"facebase_lost"`
	TotalBefore    int      `json:"total_before"`
	TotalAfter     int      `json:"total_after"`
}

// Diff computes the digest from prev to curr.
func Diff(prev, curr Record) Digest {
	return Digest{
		Since:          prev.Date,
		Date:           curr.Date,
		GapsOpened:     difference(curr.GapSymbols, prev.GapSymbols),
		GapsClosed:     difference(prev.GapSymbols, curr.GapSymbols),
		FacebaseGained: difference(curr.FacebaseSymbols, prev.FacebaseSymbols),
		FacebaseLost:   difference(prev.FacebaseSymbols, curr.FacebaseSymbols),
		TotalBefore:    prev.TotalGenes,
		TotalAfter:     curr.TotalGenes,
	}
}

// Changed reports whether the digest records any movement at all.
func (d Digest) Changed() bool {
	return len(d.GapsOpened) > 0 || len(d.GapsClosed) > 0 ||
		len(d.FacebaseGained) > 0 || len(d.FacebaseLost) > 0 ||
		d.TotalBefore != d.TotalAfter
}

// difference returns the sorted elements of a that are not in b.
func difference(a, b []string) []string {
	drop := make(map[string]bool, len(b))
	for _, s := range b {
		drop[s] = true
	}
	out := make([]string, 0)
	for _, s := range a {
		if !drop[s] {
			out = append(out, s)
		}
	}
	return out
}
