package list

import (
	"context"
	"testing"

	"github.com/neurocrista/genemap"
	"github.com/neurocrista/genemap/internal/appcontext"
	"github.com/neurocrista/genemap/pkg/errors"
	"github.com/neurocrista/genemap/pkg/facts"
	"github.com/neurocrista/genemap/pkg/genes"
	"github.com/neurocrista/genemap/pkg/merge"
)

func testApp(t *testing.T) (*appcontext.Mock, genemap.Genemap) {
	t.Helper()
	registry, err := genes.NewRegistry(
		genes.Gene{Symbol: "PAX3", NCBI: "5077", UniProt: "P23760", OMIM: "606597", Role: genes.RoleBorderSpec},
		genes.Gene{Symbol: "PAX7", NCBI: "5081", UniProt: "P23759", OMIM: "167410", Role: genes.RoleBorderSpec},
		genes.Gene{Symbol: "SOX10", NCBI: "6663", UniProt: "P56693", OMIM: "602229", Role: genes.RoleNCSpecifier},
	)
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}

	omim, err := facts.New(facts.SourceIDOMIM, "PAX3",
		facts.WithNativeID("606597"),
		facts.WithPayload(facts.OMIMFacts{Syndromes: []string{"Waardenburg syndrome, type 1, 193500"}}))
	if err != nil {
		t.Fatalf("facts.New() error = %v", err)
	}
	facebase, err := facts.New(facts.SourceIDFaceBase, "SOX10")
	if err != nil {
		t.Fatalf("facts.New() error = %v", err)
	}

	gm, err := genemap.New(
		genemap.WithRegistry(registry),
		genemap.WithContributions(omim, facebase),
	)
	if err != nil {
		t.Fatalf("genemap.New() error = %v", err)
	}
	mock := &appcontext.Mock{
		GenemapFunc: func() (genemap.Genemap, error) { return gm, nil },
	}
	return mock, gm
}

func testEntities(t *testing.T, gm genemap.Genemap) ([]*merge.Entity, *genes.Registry) {
	t.Helper()
	if err := gm.Reconcile(context.Background()); err != nil {
		t.Fatalf("Reconcile() error = %v", err)
	}
	return gm.Entities().Entities(), gm.Registry()
}

func TestGeneRows(t *testing.T) {
	_, gm := testApp(t)
	entities, registry := testEntities(t, gm)

	rows := geneRows(entities, registry)
	if len(rows) != 3 {
		t.Fatalf("geneRows() returned %d rows, want 3", len(rows))
	}

	bySymbol := make(map[string]GeneRow, len(rows))
	for _, row := range rows {
		bySymbol[row.Symbol] = row
	}

	pax3 := bySymbol["PAX3"]
	if pax3.SourceCount != 1 || !pax3.Presence["omim"] {
		t.Errorf("PAX3 row = %+v", pax3)
	}
	if pax3.Role != "border_spec" {
		t.Errorf("PAX3 role = %q", pax3.Role)
	}
	if pax7 := bySymbol["PAX7"]; pax7.SourceCount != 0 {
		t.Errorf("PAX7 SourceCount = %d, want 0", pax7.SourceCount)
	}
}

func TestGeneDetail(t *testing.T) {
	_, gm := testApp(t)
	_, registry := testEntities(t, gm)

	gene, ok := registry.Get("PAX3")
	if !ok {
		t.Fatal("PAX3 missing from registry")
	}
	entity, ok := gm.Entities().Get("PAX3")
	if !ok {
		t.Fatal("PAX3 missing from set")
	}

	detail := geneDetail(gene, entity)
	if detail.Symbol != "PAX3" || detail.NCBI != "5077" || detail.OMIM != "606597" {
		t.Errorf("detail identity = %+v", detail)
	}
	if detail.NativeIDs["omim"] != "606597" {
		t.Errorf("NativeIDs = %v", detail.NativeIDs)
	}
	syndromes, ok := detail.Fields["omim_syndromes"].([]string)
	if !ok || len(syndromes) != 1 {
		t.Errorf("omim_syndromes field = %v", detail.Fields["omim_syndromes"])
	}
}

func TestSourceRows(t *testing.T) {
	_, gm := testApp(t)
	testEntities(t, gm)

	rows := sourceRows(gm.Entities())
	if len(rows) != len(facts.AllSources()) {
		t.Fatalf("sourceRows() returned %d rows, want %d", len(rows), len(facts.AllSources()))
	}
	if rows[0].ID != "go" {
		t.Errorf("first row %q, want canonical order starting at go", rows[0].ID)
	}

	for _, row := range rows {
		switch row.ID {
		case "omim", "facebase":
			if row.Coverage != 1 {
				t.Errorf("%s coverage = %d, want 1", row.ID, row.Coverage)
			}
		default:
			if row.Coverage != 0 {
				t.Errorf("%s coverage = %d, want 0", row.ID, row.Coverage)
			}
		}
		if row.Total != 3 {
			t.Errorf("%s total = %d, want 3", row.ID, row.Total)
		}
	}
}

func TestGenesCommandMatchFilter(t *testing.T) {
	app, _ := testApp(t)
	cmd := NewGenesCommand(app)
	cmd.SetArgs([]string{"--match", "PAX*"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
}

func TestGenesCommandBadMatchPattern(t *testing.T) {
	app, _ := testApp(t)
	cmd := NewGenesCommand(app)
	cmd.SetArgs([]string{"--match", "[unclosed"})
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	err := cmd.Execute()
	if !errors.IsValidationError(err) {
		t.Fatalf("Execute() error = %v, want validation error", err)
	}
}

func TestGenesCommandUnknownSymbol(t *testing.T) {
	app, _ := testApp(t)
	cmd := NewGenesCommand(app)
	cmd.SetArgs([]string{"PAX33"})
	cmd.SilenceErrors = true
	err := cmd.Execute()
	if !errors.IsNotFound(err) {
		t.Fatalf("Execute() error = %v, want not found", err)
	}
}

func TestGenesCommandLimit(t *testing.T) {
	app, _ := testApp(t)
	cmd := NewGenesCommand(app)
	cmd.SetArgs([]string{"--limit", "2"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
}

func TestNewCommand(t *testing.T) {
	app, _ := testApp(t)
	cmd := NewCommand(app)
	if cmd.Use != "list [resource]" {
		t.Errorf("Use = %q", cmd.Use)
	}

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	want := map[string]bool{"genes": false, "sources": false}
	for _, name := range names {
		if _, ok := want[name]; ok {
			want[name] = true
		}
	}
	for name, seen := range want {
		if !seen {
			t.Errorf("subcommand %q not registered (have %v)", name, names)
		}
	}

	genesCmd, _, err := cmd.Find([]string{"genes"})
	if err != nil {
		t.Fatalf("Find(genes) error = %v", err)
	}
	for _, flag := range []string{"role", "match", "limit"} {
		if genesCmd.Flags().Lookup(flag) == nil {
			t.Errorf("genes command missing --%s flag", flag)
		}
	}
}
