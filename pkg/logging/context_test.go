package logging_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/neurocrista/genemap/pkg/logging"
)

func TestContextFunctions(t *testing.T) {
	t.Run("WithSource adds source to context", func(t *testing.T) {
		tl := logging.NewTestLogger(t)
		ctx := logging.WithLogger(context.Background(), tl.Logger)
		ctx = logging.WithSource(ctx, "clinvar")

		logging.FromContext(ctx).Info().Msg("fetch complete")
		tl.AssertContains(t, `"source":"clinvar"`)
	})

	t.Run("WithSymbol adds symbol to context", func(t *testing.T) {
		tl := logging.NewTestLogger(t)
		ctx := logging.WithLogger(context.Background(), tl.Logger)
		ctx = logging.WithSymbol(ctx, "SOX10")

		logging.FromContext(ctx).Info().Msg("entity merged")
		tl.AssertContains(t, `"symbol":"SOX10"`)
	})

	t.Run("WithOperation adds operation to context", func(t *testing.T) {
		ctx := context.Background()
		ctx = logging.WithOperation(ctx, "reconcile")

		logger := logging.FromContext(ctx)
		assert.NotNil(t, logger)
	})

	t.Run("WithFields adds custom fields to context", func(t *testing.T) {
		ctx := context.Background()
		fields := map[string]any{
			"run_id": "2026-08-23",
			"genes":  95,
		}
		ctx = logging.WithFields(ctx, fields)

		logger := logging.FromContext(ctx)
		assert.NotNil(t, logger)
	})

	t.Run("WithError ignores nil errors", func(t *testing.T) {
		ctx := context.Background()
		assert.Equal(t, ctx, logging.WithError(ctx, nil))
	})

	t.Run("FromContext returns default for nil context", func(t *testing.T) {
		logger := logging.FromContext(nil) //nolint:staticcheck // verifying nil fallback
		assert.NotNil(t, logger)
	})

	t.Run("FromContext returns logger from context", func(t *testing.T) {
		ctx := context.Background()

		logger1 := logging.FromContext(ctx)
		assert.NotNil(t, logger1)

		ctx = logging.WithSource(ctx, "pubmed")
		logger2 := logging.FromContext(ctx)
		assert.NotNil(t, logger2)
	})

	t.Run("Ctx extracts logger from context", func(t *testing.T) {
		ctx := context.Background()
		ctx = logging.WithSource(ctx, "gnomad")

		logger := logging.Ctx(ctx)
		assert.NotNil(t, logger)
	})

	t.Run("chaining context functions", func(t *testing.T) {
		tl := logging.NewTestLogger(t)
		ctx := logging.WithLogger(context.Background(), tl.Logger)
		ctx = logging.WithOperation(ctx, "reconcile")
		ctx = logging.WithSource(ctx, "omim")
		ctx = logging.WithSymbol(ctx, "PAX3")

		logging.FromContext(ctx).Info().Msg("contribution applied")
		if !tl.ContainsAll(`"operation":"reconcile"`, `"source":"omim"`, `"symbol":"PAX3"`) {
			t.Errorf("missing chained fields in output: %s", tl.Output())
		}
	})
}
