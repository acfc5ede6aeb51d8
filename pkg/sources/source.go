// Package sources defines the contract between the reconciliation core
// and the fact fetchers that feed it. A Source produces contributions
// for one namespace; it owns its caching, retries, and rate limiting,
// and may only assert attributes the schema assigns to it (contribution
// construction enforces this).
//
// The package ships one concrete implementation: CacheDir, which
// assembles contributions from the per-source cache files that
// out-of-process fetchers leave behind. No source in this module
// performs network I/O.
package sources

import (
	"context"

	"github.com/neurocrista/genemap/pkg/facts"
)

// Source produces contributions for exactly one source namespace.
type Source interface {
	// ID returns the namespace this source contributes to.
	ID() facts.SourceID

	// Fetch retrieves the source's contributions. A gene the source has
	// nothing for simply yields no contribution; fetch-level failures for
	// individual genes must not surface as errors.
	Fetch(ctx context.Context, opts ...Option) ([]facts.Contribution, error)

	// Cleanup releases any resources after all Fetch calls complete.
	Cleanup() error
}
