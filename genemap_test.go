package genemap

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neurocrista/genemap/pkg/errors"
	"github.com/neurocrista/genemap/pkg/facts"
	"github.com/neurocrista/genemap/pkg/genes"
	"github.com/neurocrista/genemap/pkg/merge"
	"github.com/neurocrista/genemap/pkg/query"
)

func contrib(t *testing.T, source facts.SourceID, symbol genes.Symbol, opts ...facts.ContributionOption) facts.Contribution {
	t.Helper()
	c, err := facts.New(source, symbol, opts...)
	require.NoError(t, err)
	return c
}

func clientRegistry(t *testing.T) *genes.Registry {
	t.Helper()
	reg, err := genes.NewRegistry(
		genes.Gene{Symbol: "PAX3", NCBI: "5077", UniProt: "P23760", OMIM: "606597", Role: genes.RoleCraniofacial},
		genes.Gene{Symbol: "SOX10", NCBI: "6663", UniProt: "P56693", OMIM: "602229", Role: genes.RoleSignaling},
	)
	require.NoError(t, err)
	return reg
}

func TestNewDefaults(t *testing.T) {
	gm, err := New()
	require.NoError(t, err)

	reg := gm.Registry()
	require.NotNil(t, reg)
	assert.Equal(t, genes.Default().Len(), reg.Len())
	assert.Empty(t, gm.Sources())

	// Every registry gene materializes before the first Reconcile.
	set := gm.Entities()
	require.NotNil(t, set)
	assert.Equal(t, reg.Len(), set.Len())

	report, err := gm.Query("gene_sources", nil)
	require.NoError(t, err)
	assert.Equal(t, reg.Len(), report["total"])
}

func TestNewOptionErrors(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
	}{
		{name: "nil registry", opt: WithRegistry(nil)},
		{name: "nil source", opt: WithSources(nil)},
		{name: "zero concurrency", opt: WithConcurrency(0)},
		{name: "blank cache dir", opt: WithCacheDir("")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.opt)
			require.Error(t, err)
			assert.True(t, errors.IsConfigError(err))
		})
	}
}

func TestNewRejectsInvalidContribution(t *testing.T) {
	reg := clientRegistry(t)
	stray := contrib(t, facts.SourceIDOMIM, "NOTAGENE")

	gm, err := New(WithRegistry(reg), WithContributions(stray))
	require.Error(t, err)
	assert.Nil(t, gm)
	var merr *errors.MergeError
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, "NOTAGENE", merr.Symbol)
}

func TestReconcileWithContributions(t *testing.T) {
	reg := clientRegistry(t)
	gm, err := New(
		WithRegistry(reg),
		WithContributions(
			contrib(t, facts.SourceIDOMIM, "PAX3",
				facts.WithNativeID("606597"),
				facts.WithPayload(facts.OMIMFacts{
					Syndromes: []string{"Waardenburg syndrome, type 1, 193500"},
				})),
			contrib(t, facts.SourceIDFaceBase, "PAX3"),
		),
	)
	require.NoError(t, err)
	require.NoError(t, gm.Reconcile(context.Background()))

	entity, ok := gm.Entities().Get("PAX3")
	require.True(t, ok)
	assert.True(t, entity.In(facts.SourceIDOMIM))
	assert.True(t, entity.In(facts.SourceIDFaceBase))
	assert.Equal(t, "606597", entity.NativeID(facts.SourceIDOMIM))

	report, err := gm.Query("gap_report", nil)
	require.NoError(t, err)
	assert.Equal(t, 0, report["gap_count"])
}

func TestReconcileFromCacheDir(t *testing.T) {
	dir := t.TempDir()
	omimDir := filepath.Join(dir, "omim")
	require.NoError(t, os.MkdirAll(omimDir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(omimDir, "omim_cache.yaml"), []byte(`
SOX10:
  omim_syndromes:
    - "Waardenburg syndrome, type 2E, 611584"
`), 0o600))

	reg := clientRegistry(t)
	gm, err := New(WithRegistry(reg), WithCacheDir(dir))
	require.NoError(t, err)
	assert.Len(t, gm.Sources(), len(facts.AllSources()))

	require.NoError(t, gm.Reconcile(context.Background()))

	entity, ok := gm.Entities().Get("SOX10")
	require.True(t, ok)
	assert.True(t, entity.In(facts.SourceIDOMIM))
	assert.Equal(t, "602229", entity.NativeID(facts.SourceIDOMIM))

	pax3, ok := gm.Entities().Get("PAX3")
	require.True(t, ok)
	assert.False(t, pax3.In(facts.SourceIDOMIM))
}

func TestContributionsAvailableBeforeReconcile(t *testing.T) {
	gm, err := New(
		WithRegistry(clientRegistry(t)),
		WithContributions(contrib(t, facts.SourceIDFaceBase, "PAX3",
			facts.WithNativeID("FB00000861"))),
	)
	require.NoError(t, err)

	entity, ok := gm.Entities().Get("PAX3")
	require.True(t, ok)
	assert.True(t, entity.In(facts.SourceIDFaceBase))
	assert.Equal(t, "FB00000861", entity.NativeID(facts.SourceIDFaceBase))
}

func TestReconcileSwapsSnapshot(t *testing.T) {
	dir := t.TempDir()
	gm, err := New(WithRegistry(clientRegistry(t)), WithCacheDir(dir))
	require.NoError(t, err)

	before := gm.Entities()
	entity, ok := before.Get("PAX3")
	require.True(t, ok)
	assert.False(t, entity.In(facts.SourceIDFaceBase))

	// Cache data lands after construction.
	fbDir := filepath.Join(dir, "facebase")
	require.NoError(t, os.MkdirAll(fbDir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(fbDir, "facebase_cache.json"),
		[]byte(`{"PAX3": {"native_id": "FB00000861"}}`), 0o600))

	require.NoError(t, gm.Reconcile(context.Background()))

	// The earlier snapshot keeps its consistent view.
	entity, ok = before.Get("PAX3")
	require.True(t, ok)
	assert.False(t, entity.In(facts.SourceIDFaceBase))

	entity, ok = gm.Entities().Get("PAX3")
	require.True(t, ok)
	assert.True(t, entity.In(facts.SourceIDFaceBase))
}

func TestReconcileFetchFailure(t *testing.T) {
	dir := t.TempDir()
	hpoDir := filepath.Join(dir, "hpo")
	require.NoError(t, os.MkdirAll(hpoDir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(hpoDir, "hpo_cache.yaml"), []byte("SOX10: [not: a, mapping\n"), 0o600))

	gm, err := New(WithRegistry(clientRegistry(t)), WithCacheDir(dir))
	require.NoError(t, err)

	err = gm.Reconcile(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hpo")

	// A failed reconcile leaves the previous snapshot in place.
	assert.Equal(t, 2, gm.Entities().Len())
}

func TestQueryUnknownProjection(t *testing.T) {
	gm, err := New(WithRegistry(clientRegistry(t)))
	require.NoError(t, err)

	_, err = gm.Query("nonsense", nil)
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestWithDefinitions(t *testing.T) {
	reg := clientRegistry(t)
	gm, err := New(
		WithRegistry(reg),
		WithDefinitions(query.Definition{
			Name: "gene_total",
			Run: func(set *merge.Set, _ map[string]any) (query.Report, error) {
				return query.Report{"total": set.Len()}, nil
			},
		}),
	)
	require.NoError(t, err)

	report, err := gm.Query("gene_total", nil)
	require.NoError(t, err)
	assert.Equal(t, 2, report["total"])

	// Built-ins are replaced, not extended.
	_, err = gm.Query("gap_report", nil)
	assert.True(t, errors.IsNotFound(err))
}

func TestConcurrentQueryAndReconcile(t *testing.T) {
	reg := clientRegistry(t)
	gm, err := New(
		WithRegistry(reg),
		WithContributions(contrib(t, facts.SourceIDOMIM, "PAX3")),
		WithConcurrency(2),
	)
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 4; j++ {
				if _, qerr := gm.Query("gene_sources", nil); qerr != nil {
					errs <- qerr
					return
				}
			}
		}()
	}
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if rerr := gm.Reconcile(context.Background()); rerr != nil {
				errs <- rerr
			}
		}()
	}
	wg.Wait()
	close(errs)
	for e := range errs {
		require.NoError(t, e)
	}
}
