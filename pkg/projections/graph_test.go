package projections

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neurocrista/genemap/pkg/facts"
	"github.com/neurocrista/genemap/pkg/genes"
)

func nodeByID(t *testing.T, report Report, id string) map[string]any {
	t.Helper()
	nodes, ok := report["nodes"].([]map[string]any)
	require.True(t, ok)
	for _, n := range nodes {
		data := n["data"].(map[string]any)
		if data["id"] == id {
			return data
		}
	}
	t.Fatalf("node %s not found", id)
	return nil
}

func edgesOfType(t *testing.T, report Report, kind string) []map[string]any {
	t.Helper()
	edges, ok := report["edges"].([]map[string]any)
	require.True(t, ok)
	var out []map[string]any
	for _, e := range edges {
		data := e["data"].(map[string]any)
		if data["type"] == kind {
			out = append(out, data)
		}
	}
	return out
}

func TestGraphNodes(t *testing.T) {
	reg, err := genes.NewRegistry(
		genes.Gene{Symbol: "VZERO", Role: genes.RoleMelanocyte},
		genes.Gene{Symbol: "VRISE", Role: genes.RoleBorderSpec},
		genes.Gene{Symbol: "VSTABLE", Role: genes.RoleSignaling},
		genes.Gene{Symbol: "VDECL", Role: genes.RoleCardiac},
	)
	require.NoError(t, err)

	set := buildSet(t, reg,
		contrib(t, facts.SourceIDPubMed, "VRISE",
			facts.WithPayload(facts.PubMedFacts{Total: 100, Recent: 60})),
		contrib(t, facts.SourceIDPubMed, "VSTABLE",
			facts.WithPayload(facts.PubMedFacts{Total: 1000, Recent: 501})),
		contrib(t, facts.SourceIDPubMed, "VDECL",
			facts.WithPayload(facts.PubMedFacts{Total: 100, Recent: 10})),
	)

	report := Graph(set, reg)

	zero := nodeByID(t, report, "VZERO")
	assert.Equal(t, "VZERO", zero["label"])
	assert.Equal(t, "melanocyte", zero["type"])
	assert.Equal(t, "Melanocyte", zero["role_label"])
	assert.Equal(t, "#db61a2", zero["color"])
	assert.Equal(t, 0, zero["source_count"])
	assert.Equal(t, 10, zero["size"], "no publications collapses to minimum size")
	assert.Equal(t, 0.0, zero["velocity"])
	assert.Equal(t, "none", zero["trend"])

	rise := nodeByID(t, report, "VRISE")
	assert.Equal(t, 28, rise["size"], "10 + ln(101)*4 rounds to 28")
	assert.Equal(t, 0.6, rise["velocity"])
	assert.Equal(t, "rising", rise["trend"])

	// 501/1000 rounds to 0.50 before banding, so not "rising".
	stable := nodeByID(t, report, "VSTABLE")
	assert.Equal(t, 0.5, stable["velocity"])
	assert.Equal(t, "stable", stable["trend"])

	decl := nodeByID(t, report, "VDECL")
	assert.Equal(t, 0.1, decl["velocity"])
	assert.Equal(t, "declining", decl["trend"])
}

func TestGraphPhenotypeEdges(t *testing.T) {
	reg, err := genes.NewRegistry(
		genes.Gene{Symbol: "PH1", Role: genes.RoleSignaling},
		genes.Gene{Symbol: "PH2", Role: genes.RoleSignaling},
		genes.Gene{Symbol: "PH3", Role: genes.RoleSignaling},
	)
	require.NoError(t, err)

	set := buildSet(t, reg,
		contrib(t, facts.SourceIDHPO, "PH1",
			facts.WithPayload(facts.HPOFacts{Phenotypes: []string{"Cleft palate", "Micrognathia"}})),
		contrib(t, facts.SourceIDHPO, "PH2",
			facts.WithPayload(facts.HPOFacts{Phenotypes: []string{"Cleft palate"}})),
		contrib(t, facts.SourceIDHPO, "PH3",
			facts.WithPayload(facts.HPOFacts{Phenotypes: []string{"Micrognathia"}})),
	)

	report := Graph(set, reg)
	edges := edgesOfType(t, report, "shared_phenotype")
	require.Len(t, edges, 2)

	assert.Equal(t, "PH1", edges[0]["source"])
	assert.Equal(t, "PH2", edges[0]["target"])
	assert.Equal(t, "Cleft palate", edges[0]["label"])
	assert.Equal(t, "PH1", edges[1]["source"])
	assert.Equal(t, "PH3", edges[1]["target"])
	assert.Equal(t, "Micrognathia", edges[1]["label"])
}

func TestGraphSkipsUniversalPhenotypes(t *testing.T) {
	list := []genes.Gene{}
	for _, s := range []genes.Symbol{"U1", "U2", "U3", "U4", "U5", "U6"} {
		list = append(list, genes.Gene{Symbol: s, Role: genes.RoleSignaling})
	}
	reg, err := genes.NewRegistry(list...)
	require.NoError(t, err)

	var contributions []facts.Contribution
	for _, s := range reg.Symbols() {
		contributions = append(contributions,
			contrib(t, facts.SourceIDHPO, s,
				facts.WithPayload(facts.HPOFacts{Phenotypes: []string{"Everywhere"}})))
	}

	report := Graph(buildSet(t, reg, contributions...), reg)
	assert.Empty(t, edgesOfType(t, report, "shared_phenotype"),
		"phenotypes on more than 5 genes produce no edges")
}

func TestGraphSyndromeEdges(t *testing.T) {
	reg, err := genes.NewRegistry(
		genes.Gene{Symbol: "SA", Role: genes.RoleMelanocyte},
		genes.Gene{Symbol: "SB", Role: genes.RoleMelanocyte},
	)
	require.NoError(t, err)

	// Same syndrome under different MIM numbers still matches.
	set := buildSet(t, reg,
		contrib(t, facts.SourceIDOMIM, "SA",
			facts.WithPayload(facts.OMIMFacts{Syndromes: []string{"Waardenburg syndrome, 277580"}})),
		contrib(t, facts.SourceIDOMIM, "SB",
			facts.WithPayload(facts.OMIMFacts{Syndromes: []string{"Waardenburg syndrome, 148820"}})),
	)

	report := Graph(set, reg)
	edges := edgesOfType(t, report, "shared_syndrome")
	require.Len(t, edges, 1)
	assert.Equal(t, "SA", edges[0]["source"])
	assert.Equal(t, "SB", edges[0]["target"])
	assert.Equal(t, "Waardenburg syndrome", edges[0]["label"])
}

func TestGraphPathwayEdges(t *testing.T) {
	reg, err := genes.NewRegistry(
		genes.Gene{Symbol: "PA", Role: genes.RoleEMTMigration},
		genes.Gene{Symbol: "PB", Role: genes.RoleEMTMigration},
	)
	require.NoError(t, err)

	set := buildSet(t, reg,
		contrib(t, facts.SourceIDGO, "PA",
			facts.WithPayload(facts.GOFacts{Terms: []facts.GOTerm{
				{ID: "GO:0001755", Name: "neural crest cell migration", Aspect: facts.AspectProcess},
				{ID: "GO:0003700", Name: "DNA-binding transcription factor activity", Aspect: facts.AspectFunction},
			}})),
		contrib(t, facts.SourceIDGO, "PB",
			facts.WithPayload(facts.GOFacts{Terms: []facts.GOTerm{
				{ID: "GO:0001755", Name: "neural crest cell migration", Aspect: facts.AspectProcess},
				{ID: "GO:0003700", Name: "DNA-binding transcription factor activity", Aspect: facts.AspectFunction},
			}})),
	)

	report := Graph(set, reg)
	edges := edgesOfType(t, report, "shared_pathway")
	require.Len(t, edges, 1, "only biological process terms produce edges")
	assert.Equal(t, "neural crest cell migration", edges[0]["label"])
}

func TestGraphPPIEdges(t *testing.T) {
	reg, err := genes.NewRegistry(
		genes.Gene{Symbol: "PPA", Role: genes.RoleEnteric},
		genes.Gene{Symbol: "PPB", Role: genes.RoleEnteric},
		genes.Gene{Symbol: "PPC", Role: genes.RoleEnteric},
	)
	require.NoError(t, err)

	set := buildSet(t, reg,
		contrib(t, facts.SourceIDSTRING, "PPA",
			facts.WithPayload(facts.STRINGFacts{Partners: []facts.Partner{
				{Symbol: "PPB", Score: 0.95},
				{Symbol: "PPC"},
				{Symbol: "OUTSIDER", Score: 0.99},
			}})),
		contrib(t, facts.SourceIDSTRING, "PPB",
			facts.WithPayload(facts.STRINGFacts{Partners: []facts.Partner{
				{Symbol: "PPA", Score: 0.95},
			}})),
	)

	report := Graph(set, reg)
	edges := edgesOfType(t, report, "ppi")
	require.Len(t, edges, 2, "reciprocal listings deduplicate, partners outside the universe drop")

	assert.Equal(t, "PPA", edges[0]["source"])
	assert.Equal(t, "PPB", edges[0]["target"])
	assert.Equal(t, "PPA-PPB (0.95)", edges[0]["label"])

	assert.Equal(t, "PPA", edges[1]["source"])
	assert.Equal(t, "PPC", edges[1]["target"])
	assert.Equal(t, "PPA-PPC", edges[1]["label"], "zero score omits the suffix")
}

func TestGraphMetadata(t *testing.T) {
	set := gapSet(t)
	report := Graph(set, gapRegistry(t))

	metadata, ok := report["metadata"].(Report)
	require.True(t, ok)
	assert.Equal(t, 3, metadata["gene_count"])
	assert.Equal(t, 0, metadata["edge_count"])

	sources, ok := metadata["sources"].([]string)
	require.True(t, ok)
	require.Len(t, sources, 12)
	assert.Equal(t, "Gene Ontology", sources[0])
	assert.Equal(t, "STRING", sources[11])

	roles, ok := metadata["roles"].(map[string]string)
	require.True(t, ok)
	assert.Len(t, roles, 8)
	assert.Equal(t, "Melanocyte", roles["melanocyte"])
	assert.Equal(t, "EMT / migration", roles["emt_migration"])
}
