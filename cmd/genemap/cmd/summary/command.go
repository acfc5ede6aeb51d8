// Package summary implements the summary command, which renders the
// reconciled gene universe as a fixed-layout terminal report.
package summary

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/neurocrista/genemap"
	"github.com/neurocrista/genemap/pkg/facts"
	"github.com/neurocrista/genemap/pkg/merge"
	"github.com/neurocrista/genemap/pkg/projections"
)

// AppContext provides the dependencies the summary command needs.
type AppContext interface {
	Genemap() (genemap.Genemap, error)
	Logger() *zerolog.Logger
}

// NewCommand creates the summary command using the app context.
func NewCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:     "summary",
		GroupID: "core",
		Short:   "Print the reconciliation report",
		Long: `Print a human-readable report of the reconciled gene universe.

The report opens with the gene and source totals, then shows coverage
tiers (how many genes sit at each source count), per-source coverage,
and the research gaps: genes with an OMIM disease association but no
FaceBase experimental data.`,
		Example: `  # Print the report for the default registry
  genemap summary`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gm, err := app.Genemap()
			if err != nil {
				return err
			}
			if err := gm.Reconcile(cmd.Context()); err != nil {
				return err
			}
			return Render(os.Stdout, gm.Entities())
		},
	}
}

// Render writes the report for a reconciled set. Sections appear in a
// fixed order: banner, totals, coverage tiers, source coverage, gaps.
func Render(w io.Writer, set *merge.Set) error {
	total := set.Len()
	all := facts.AllSources()

	distribution := make(map[int]int)
	counts := make(map[facts.SourceID]int, len(all))
	set.ForEach(func(e *merge.Entity) bool {
		distribution[e.InCount()]++
		for _, src := range all {
			if e.In(src) {
				counts[src]++
			}
		}
		return true
	})

	rule := strings.Repeat("=", 60)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "  genemap: Neural Crest Gene Reconciliation")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "\n%d genes unified across %d sources\n\n", total, len(all))

	fmt.Fprintln(w, "Coverage Tiers:")
	tiers := make([]int, 0, len(distribution))
	for tier := range distribution {
		tiers = append(tiers, tier)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(tiers)))
	for _, tier := range tiers {
		count := distribution[tier]
		noun := "genes"
		if count == 1 {
			noun = "gene"
		}
		fmt.Fprintf(w, "  %2d sources:  %2d %s\n", tier, count, noun)
	}

	fmt.Fprintln(w, "\nSource Coverage:")
	for _, src := range all {
		count := counts[src]
		pct := 0
		if total > 0 {
			pct = count * 100 / total
		}
		fmt.Fprintf(w, "  %-15s  %2d/%d (%d%%)\n", src.Label(), count, total, pct)
	}

	report, err := projections.Gaps(set, projections.DefaultGapParams())
	if err != nil {
		return err
	}
	gaps, _ := report["research_gaps"].([]map[string]any)
	if len(gaps) > 0 {
		fmt.Fprintf(w, "\nResearch Gaps (OMIM disease but no FaceBase data): %d\n", len(gaps))
		for _, gap := range gaps {
			symbol, _ := gap["symbol"].(string)
			fmt.Fprintf(w, "  %-8s  %s\n", symbol, syndromeSummary(gap["syndromes"]))
		}
	}

	return nil
}

// syndromeSummary joins the first three syndromes for one gap line.
func syndromeSummary(value any) string {
	syndromes, _ := value.([]string)
	if len(syndromes) == 0 {
		return "no syndromes listed"
	}
	if len(syndromes) > 3 {
		syndromes = syndromes[:3]
	}
	return strings.Join(syndromes, ", ")
}
