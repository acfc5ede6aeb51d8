package summary

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/neurocrista/genemap/pkg/facts"
	"github.com/neurocrista/genemap/pkg/genes"
	"github.com/neurocrista/genemap/pkg/merge"
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

	contribs := []facts.Contribution{
		mustContribution(t, facts.SourceIDOMIM, "PAX3",
			facts.WithNativeID("606597"),
			facts.WithPayload(facts.OMIMFacts{Syndromes: []string{
				"Waardenburg syndrome, type 1, 193500",
				"Waardenburg syndrome, type 3, 148820",
				"Rhabdomyosarcoma 2, 268220",
				"Craniofacial-deafness-hand syndrome, 122880",
			}})),
		mustContribution(t, facts.SourceIDOMIM, "SOX10",
			facts.WithNativeID("602229"),
			facts.WithPayload(facts.OMIMFacts{Syndromes: []string{"Waardenburg syndrome, type 4C, 613266"}})),
		mustContribution(t, facts.SourceIDGO, "PAX3"),
		mustContribution(t, facts.SourceIDFaceBase, "SOX10", facts.WithNativeID("FB00000861")),
	}

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

func mustContribution(t *testing.T, source facts.SourceID, symbol genes.Symbol, opts ...facts.ContributionOption) facts.Contribution {
	t.Helper()
	c, err := facts.New(source, symbol, opts...)
	if err != nil {
		t.Fatalf("contribution for %s/%s failed: %v", source, symbol, err)
	}
	return c
}

func TestRender(t *testing.T) {
	set := testSet(t)

	var buf bytes.Buffer
	if err := Render(&buf, set); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "genemap: Neural Crest Gene Reconciliation") {
		t.Error("missing banner")
	}
	if !strings.Contains(out, "3 genes unified across 12 sources") {
		t.Errorf("missing totals line in:\n%s", out)
	}
	if !strings.Contains(out, "Coverage Tiers:") {
		t.Error("missing coverage tiers section")
	}
	if !strings.Contains(out, "Source Coverage:") {
		t.Error("missing source coverage section")
	}
}

func TestRenderTierLines(t *testing.T) {
	set := testSet(t)

	var buf bytes.Buffer
	if err := Render(&buf, set); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	out := buf.String()

	// PAX3 has two sources, SOX10 has two, TFAP2A has none.
	if !strings.Contains(out, "   2 sources:   2 genes") {
		t.Errorf("missing two-source tier in:\n%s", out)
	}
	if !strings.Contains(out, "   0 sources:   1 gene\n") {
		t.Errorf("missing zero-source tier with singular noun in:\n%s", out)
	}

	// Higher tiers print before lower ones.
	twoIdx := strings.Index(out, "2 sources:")
	zeroIdx := strings.Index(out, "0 sources:")
	if twoIdx < 0 || zeroIdx < 0 || twoIdx > zeroIdx {
		t.Errorf("tier order wrong in:\n%s", out)
	}
}

func TestRenderSourceCoverage(t *testing.T) {
	set := testSet(t)

	var buf bytes.Buffer
	if err := Render(&buf, set); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "OMIM              2/3 (66%)") {
		t.Errorf("missing OMIM coverage line in:\n%s", out)
	}
	if !strings.Contains(out, "FaceBase          1/3 (33%)") {
		t.Errorf("missing FaceBase coverage line in:\n%s", out)
	}
	if !strings.Contains(out, "Gene Ontology     1/3 (33%)") {
		t.Errorf("missing Gene Ontology coverage line in:\n%s", out)
	}
}

func TestRenderResearchGaps(t *testing.T) {
	set := testSet(t)

	var buf bytes.Buffer
	if err := Render(&buf, set); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	out := buf.String()

	// PAX3 has OMIM but no FaceBase; SOX10 has both, so only one gap.
	if !strings.Contains(out, "Research Gaps (OMIM disease but no FaceBase data): 1") {
		t.Errorf("missing research gaps header in:\n%s", out)
	}
	if !strings.Contains(out, "PAX3") {
		t.Error("missing gap symbol")
	}
	// Only the first three syndromes appear.
	if !strings.Contains(out, "Rhabdomyosarcoma") {
		t.Error("missing third syndrome")
	}
	if strings.Contains(out, "Craniofacial-deafness-hand") {
		t.Error("fourth syndrome should be truncated")
	}
}

func TestRenderEmptySet(t *testing.T) {
	registry, err := genes.NewRegistry(
		genes.Gene{Symbol: "PAX3", NCBI: "5077", UniProt: "P23760", OMIM: "606597", Role: genes.RoleBorderSpec},
	)
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}
	merger, err := merge.New(merge.WithRegistry(registry))
	if err != nil {
		t.Fatalf("merge.New failed: %v", err)
	}
	set, err := merger.Merge(context.Background(), nil)
	if err != nil {
		t.Fatalf("Merge failed: %v", err)
	}

	var buf bytes.Buffer
	if err := Render(&buf, set); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "1 genes unified across 12 sources") {
		t.Errorf("missing totals line in:\n%s", out)
	}
	if strings.Contains(out, "Research Gaps") {
		t.Error("research gaps section should be absent when there are no gaps")
	}
}

func TestSyndromeSummary(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected string
	}{
		{"nil", nil, "no syndromes listed"},
		{"empty", []string{}, "no syndromes listed"},
		{"one", []string{"a"}, "a"},
		{"three", []string{"a", "b", "c"}, "a, b, c"},
		{"four truncates", []string{"a", "b", "c", "d"}, "a, b, c"},
		{"wrong type", 42, "no syndromes listed"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := syndromeSummary(test.value); got != test.expected {
				t.Errorf("syndromeSummary(%v) = %q, want %q", test.value, got, test.expected)
			}
		})
	}
}

func TestNewCommand(t *testing.T) {
	cmd := NewCommand(nil)
	if cmd.Use != "summary" {
		t.Errorf("Use = %q, want summary", cmd.Use)
	}
	if cmd.GroupID != "core" {
		t.Errorf("GroupID = %q, want core", cmd.GroupID)
	}
	if cmd.RunE == nil {
		t.Error("RunE not set")
	}
}
