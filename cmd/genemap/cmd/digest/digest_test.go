package digest

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/neurocrista/genemap/pkg/facts"
	"github.com/neurocrista/genemap/pkg/genes"
	"github.com/neurocrista/genemap/pkg/merge"
	"github.com/neurocrista/genemap/pkg/snapshot"
)

func testSet(t *testing.T) *merge.Set {
	t.Helper()

	registry, err := genes.NewRegistry(
		genes.Gene{Symbol: "PAX3", NCBI: "5077", UniProt: "P23760", OMIM: "606597", Role: genes.RoleBorderSpec},
		genes.Gene{Symbol: "SOX10", NCBI: "6663", UniProt: "P56693", OMIM: "602229", Role: genes.RoleNCSpecifier},
		genes.Gene{Symbol: "TFAP2A", NCBI: "7020", UniProt: "P05549", OMIM: "107580", Role: genes.RoleNCSpecifier},
	)
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}

	var contribs []facts.Contribution
	add := func(source facts.SourceID, symbol genes.Symbol) {
		c, err := facts.New(source, symbol)
		if err != nil {
			t.Fatalf("contribution for %s/%s failed: %v", source, symbol, err)
		}
		contribs = append(contribs, c)
	}
	add(facts.SourceIDOMIM, "PAX3")
	add(facts.SourceIDOMIM, "SOX10")
	add(facts.SourceIDGO, "PAX3")
	add(facts.SourceIDFaceBase, "SOX10")

	merger, err := merge.New(merge.WithRegistry(registry))
	if err != nil {
		t.Fatalf("merge.New failed: %v", err)
	}
	set, err := merger.Merge(context.Background(), contribs)
	if err != nil {
		t.Fatalf("Merge failed: %v", err)
	}
	return set
}

func renderDigest(t *testing.T, history []snapshot.Record) string {
	t.Helper()
	var buf bytes.Buffer
	today := time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)
	if err := Render(&buf, testSet(t), history, today); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	return buf.String()
}

func TestRenderHeader(t *testing.T) {
	out := renderDigest(t, nil)

	if !strings.Contains(out, "## Weekly Pipeline Digest — 2026-08-23") {
		t.Errorf("missing header in:\n%s", out)
	}
	if !strings.Contains(out, "**3 genes** across **12 sources**") {
		t.Errorf("missing totals line in:\n%s", out)
	}
}

func TestRenderSourceCoverageTable(t *testing.T) {
	out := renderDigest(t, nil)

	if !strings.Contains(out, "| Source | Coverage | % |") {
		t.Error("missing coverage table header")
	}
	if !strings.Contains(out, "|--------|----------|---|") {
		t.Error("missing coverage table separator")
	}
	// 2/3 is 66 percent, six filled blocks.
	if !strings.Contains(out, "| OMIM | 2/3 | ██████ 66% |") {
		t.Errorf("missing OMIM row in:\n%s", out)
	}
	// Uncovered sources keep the bar empty.
	if !strings.Contains(out, "| HPO | 0/3 |  0% |") {
		t.Errorf("missing HPO row in:\n%s", out)
	}
}

func TestRenderGaps(t *testing.T) {
	out := renderDigest(t, nil)

	// PAX3 has OMIM but no FaceBase.
	if !strings.Contains(out, "**1** genes with OMIM disease association but no FaceBase experimental data.") {
		t.Errorf("missing gaps line in:\n%s", out)
	}
}

func TestRenderFirstSnapshot(t *testing.T) {
	history := []snapshot.Record{
		{Date: "2026-08-23", TotalGenes: 3},
	}
	out := renderDigest(t, history)

	if !strings.Contains(out, "### Changes") {
		t.Error("missing changes section")
	}
	if !strings.Contains(out, "First snapshot recorded. Diffs will appear after the next run.") {
		t.Errorf("missing first-snapshot notice in:\n%s", out)
	}
	if strings.Contains(out, "Changes Since") {
		t.Error("diff heading should not appear with a single record")
	}
}

func TestRenderDiff(t *testing.T) {
	history := []snapshot.Record{
		{
			Date:            "2026-08-16",
			TotalGenes:      3,
			GapSymbols:      []string{"PAX3", "TCOF1"},
			FacebaseSymbols: []string{"SOX10"},
		},
		{
			Date:            "2026-08-23",
			TotalGenes:      3,
			GapSymbols:      []string{"PAX3"},
			FacebaseSymbols: []string{"SOX10", "TCOF1"},
		},
	}
	out := renderDigest(t, history)

	if !strings.Contains(out, "### Changes Since 2026-08-16") {
		t.Errorf("missing diff heading in:\n%s", out)
	}
	if !strings.Contains(out, "**Gaps closed (1):** `TCOF1`") {
		t.Errorf("missing gaps closed line in:\n%s", out)
	}
	if !strings.Contains(out, "**New FaceBase coverage (1):** `TCOF1`") {
		t.Errorf("missing facebase gained line in:\n%s", out)
	}
	if strings.Contains(out, "Gaps opened") {
		t.Error("gaps opened line should be absent")
	}
	if strings.Contains(out, "Lost FaceBase coverage") {
		t.Error("facebase lost line should be absent")
	}
	if strings.Contains(out, "Gene count:") {
		t.Error("gene count line should be absent when totals match")
	}
}

func TestRenderDiffNoChanges(t *testing.T) {
	record := snapshot.Record{
		Date:            "2026-08-16",
		TotalGenes:      3,
		GapSymbols:      []string{"PAX3"},
		FacebaseSymbols: []string{"SOX10"},
	}
	later := record
	later.Date = "2026-08-23"
	out := renderDigest(t, []snapshot.Record{record, later})

	if !strings.Contains(out, "No changes detected since last snapshot.") {
		t.Errorf("missing no-changes notice in:\n%s", out)
	}
}

func TestRenderDiffGeneCountDelta(t *testing.T) {
	history := []snapshot.Record{
		{Date: "2026-08-16", TotalGenes: 95},
		{Date: "2026-08-23", TotalGenes: 96},
	}
	out := renderDigest(t, history)

	if !strings.Contains(out, "Gene count: 95 → 96 (+1)") {
		t.Errorf("missing gene count delta in:\n%s", out)
	}

	shrunk := []snapshot.Record{
		{Date: "2026-08-16", TotalGenes: 96},
		{Date: "2026-08-23", TotalGenes: 95},
	}
	out = renderDigest(t, shrunk)
	if !strings.Contains(out, "Gene count: 96 → 95 (-1)") {
		t.Errorf("missing negative delta in:\n%s", out)
	}
}

func TestRenderMissingData(t *testing.T) {
	out := renderDigest(t, nil)

	if !strings.Contains(out, "### Missing Data") {
		t.Error("missing section heading")
	}
	if !strings.Contains(out, "**omim**: 1 genes missing") {
		t.Errorf("missing omim bullet in:\n%s", out)
	}

	// Largest gaps first; equal counts fall back to id order.
	clinicaltrials := strings.Index(out, "**clinicaltrials**: 3 genes missing")
	clinvar := strings.Index(out, "**clinvar**: 3 genes missing")
	facebase := strings.Index(out, "**facebase**: 2 genes missing")
	omim := strings.Index(out, "**omim**: 1 genes missing")
	if clinicaltrials < 0 || clinvar < 0 || facebase < 0 || omim < 0 {
		t.Fatalf("missing data bullets absent in:\n%s", out)
	}
	if !(clinicaltrials < clinvar && clinvar < facebase && facebase < omim) {
		t.Errorf("missing data bullets out of order in:\n%s", out)
	}
}

func TestRenderFooter(t *testing.T) {
	out := renderDigest(t, nil)

	if !strings.Contains(out, "*Generated by `genemap digest` on 2026-08-23*") {
		t.Errorf("missing footer in:\n%s", out)
	}
}

func TestMissingSources(t *testing.T) {
	all := facts.AllSources()
	counts := make(map[facts.SourceID]int, len(all))
	for _, src := range all {
		counts[src] = 10
	}
	counts[facts.SourceIDGO] = 7
	counts[facts.SourceIDOMIM] = 9
	counts[facts.SourceIDSTRING] = 7

	missing := missingSources(counts, 10, all)
	if len(missing) != 3 {
		t.Fatalf("got %d missing sources, want 3", len(missing))
	}
	// go and string tie at 3 missing; go sorts first.
	if missing[0].id != facts.SourceIDGO || missing[0].count != 3 {
		t.Errorf("missing[0] = %v", missing[0])
	}
	if missing[1].id != facts.SourceIDSTRING {
		t.Errorf("missing[1] = %v", missing[1])
	}
	if missing[2].id != facts.SourceIDOMIM || missing[2].count != 1 {
		t.Errorf("missing[2] = %v", missing[2])
	}
}

func TestCodeList(t *testing.T) {
	if got := codeList([]string{"PAX3", "SOX10"}); got != "`PAX3`, `SOX10`" {
		t.Errorf("codeList = %q", got)
	}
	if got := codeList(nil); got != "" {
		t.Errorf("codeList(nil) = %q", got)
	}
}

func TestNewCommand(t *testing.T) {
	cmd := NewCommand(nil)
	if cmd.Use != "digest" {
		t.Errorf("Use = %q, want digest", cmd.Use)
	}
	if cmd.GroupID != "management" {
		t.Errorf("GroupID = %q, want management", cmd.GroupID)
	}
	if cmd.Flags().Lookup("db") == nil {
		t.Error("db flag not registered")
	}
	if cmd.Flags().Lookup("file") == nil {
		t.Error("file flag not registered")
	}
}
