package digest

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	md "github.com/nao1215/markdown"

	"github.com/neurocrista/genemap/pkg/facts"
	"github.com/neurocrista/genemap/pkg/merge"
	"github.com/neurocrista/genemap/pkg/snapshot"
)

// Render writes the digest document. Coverage and gap figures come from
// the reconciled set; the changes section diffs the history records,
// which must be date-ascending as returned by the store.
func Render(w io.Writer, set *merge.Set, history []snapshot.Record, today time.Time) error {
	date := today.Format(snapshot.DateLayout)
	total := set.Len()
	all := facts.AllSources()

	counts := make(map[facts.SourceID]int, len(all))
	gapCount := 0
	set.ForEach(func(e *merge.Entity) bool {
		for _, src := range all {
			if e.In(src) {
				counts[src]++
			}
		}
		if e.In(facts.SourceIDOMIM) && !e.In(facts.SourceIDFaceBase) {
			gapCount++
		}
		return true
	})

	doc := md.NewMarkdown(w)

	doc.H2("Weekly Pipeline Digest — " + date).LF()
	doc.PlainTextf("%s across %s",
		md.Bold(fmt.Sprintf("%d genes", total)),
		md.Bold(fmt.Sprintf("%d sources", len(all)))).LF()

	doc.H3("Source Coverage").LF()
	doc.PlainText("| Source | Coverage | % |")
	doc.PlainText("|--------|----------|---|")
	for _, src := range all {
		count := counts[src]
		pct := 0
		if total > 0 {
			pct = count * 100 / total
		}
		bar := strings.Repeat("█", pct/10)
		doc.PlainTextf("| %s | %d/%d | %s %d%% |", src.Label(), count, total, bar, pct)
	}
	doc.LF()

	doc.H3("Gaps").LF()
	doc.PlainTextf("%s genes with OMIM disease association but no FaceBase experimental data.",
		md.Bold(strconv.Itoa(gapCount))).LF()

	renderChanges(doc, history)

	doc.H3("Missing Data").LF()
	missing := missingSources(counts, total, all)
	if len(missing) > 0 {
		items := make([]string, len(missing))
		for i, m := range missing {
			items[i] = fmt.Sprintf("%s: %d genes missing", md.Bold(string(m.id)), m.count)
		}
		doc.BulletList(items...)
	} else {
		doc.PlainText("All sources have complete coverage.")
	}
	doc.LF()

	doc.HorizontalRule()
	doc.PlainText(md.Italic("Generated by " + md.Code("genemap digest") + " on " + date))

	return doc.Build()
}

// renderChanges writes the snapshot diff section. With fewer than two
// records there is nothing to diff yet.
func renderChanges(doc *md.Markdown, history []snapshot.Record) {
	if len(history) < 2 {
		doc.H3("Changes").LF()
		doc.PlainText("First snapshot recorded. Diffs will appear after the next run.").LF()
		return
	}

	prev, curr := history[0], history[1]
	diff := snapshot.Diff(prev, curr)

	doc.H3("Changes Since " + prev.Date).LF()

	if len(diff.GapsClosed) > 0 {
		doc.PlainTextf("%s %s",
			md.Bold(fmt.Sprintf("Gaps closed (%d):", len(diff.GapsClosed))),
			codeList(diff.GapsClosed))
	}
	if len(diff.GapsOpened) > 0 {
		doc.PlainTextf("%s %s",
			md.Bold(fmt.Sprintf("Gaps opened (%d):", len(diff.GapsOpened))),
			codeList(diff.GapsOpened))
	}
	if len(diff.FacebaseGained) > 0 {
		doc.PlainTextf("%s %s",
			md.Bold(fmt.Sprintf("New FaceBase coverage (%d):", len(diff.FacebaseGained))),
			codeList(diff.FacebaseGained))
	}
	if len(diff.FacebaseLost) > 0 {
		doc.PlainTextf("%s %s",
			md.Bold(fmt.Sprintf("Lost FaceBase coverage (%d):", len(diff.FacebaseLost))),
			codeList(diff.FacebaseLost))
	}
	if len(diff.GapsClosed) == 0 && len(diff.GapsOpened) == 0 &&
		len(diff.FacebaseGained) == 0 && len(diff.FacebaseLost) == 0 {
		doc.PlainText("No changes detected since last snapshot.")
	}

	if diff.TotalBefore != diff.TotalAfter {
		sign := ""
		if diff.TotalAfter > diff.TotalBefore {
			sign = "+"
		}
		doc.LF()
		doc.PlainTextf("Gene count: %d → %d (%s%d)",
			diff.TotalBefore, diff.TotalAfter, sign, diff.TotalAfter-diff.TotalBefore)
	}
	doc.LF()
}

// missingSource pairs a source with how many genes it does not cover.
type missingSource struct {
	id    facts.SourceID
	count int
}

// missingSources lists sources with incomplete coverage, largest gap
// first, ties in lexicographic id order.
func missingSources(counts map[facts.SourceID]int, total int, all []facts.SourceID) []missingSource {
	out := make([]missingSource, 0, len(all))
	for _, src := range all {
		if missing := total - counts[src]; missing > 0 {
			out = append(out, missingSource{id: src, count: missing})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].count != out[j].count {
			return out[i].count > out[j].count
		}
		return out[i].id < out[j].id
	})
	return out
}

// codeList renders symbols as comma-separated inline code spans.
func codeList(symbols []string) string {
	parts := make([]string, len(symbols))
	for i, s := range symbols {
		parts[i] = md.Code(s)
	}
	return strings.Join(parts, ", ")
}
