package sources

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/neurocrista/genemap/pkg/errors"
	"github.com/neurocrista/genemap/pkg/facts"
	"github.com/neurocrista/genemap/pkg/genes"
	"github.com/neurocrista/genemap/pkg/logging"
)

// cacheExtensions are tried in order when resolving a source's cache file.
var cacheExtensions = []string{"yaml", "yml", "json"}

// CacheDir assembles contributions from the cache files out-of-process
// fetchers write under <dir>/<source>/<source>_cache.yaml (or .yml/.json).
// A missing cache file means the source contributed nothing this run; a
// file that exists but does not parse is an error.
type CacheDir struct {
	dir     string
	sources []Source
}

// NewCacheDir builds a cache-dir loader rooted at dir with one source
// per namespace.
func NewCacheDir(dir string) (*CacheDir, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, &errors.ConfigError{
			Component: "cache dir",
			Message:   "directory is required",
		}
	}
	c := &CacheDir{dir: dir}
	for _, id := range facts.AllSources() {
		c.sources = append(c.sources, &cacheSource{id: id, dir: dir})
	}
	return c, nil
}

// Dir returns the root directory the loader reads from.
func (c *CacheDir) Dir() string { return c.dir }

// Sources returns one Source per namespace, in canonical order.
func (c *CacheDir) Sources() []Source {
	out := make([]Source, len(c.sources))
	copy(out, c.sources)
	return out
}

// loadResult carries one source's fetch outcome back from its goroutine.
type loadResult struct {
	id            facts.SourceID
	contributions []facts.Contribution
	err           error
}

// Load fetches every source concurrently and returns the combined
// contribution collection in canonical source order. When several
// sources fail, the error for the first namespace in canonical order is
// returned so repeated runs fail the same way.
func (c *CacheDir) Load(ctx context.Context, opts ...Option) ([]facts.Contribution, error) {
	logger := logging.FromContext(ctx)

	var wg sync.WaitGroup
	results := make(chan loadResult, len(c.sources))
	for _, src := range c.sources {
		wg.Add(1)
		go func(src Source) {
			defer wg.Done()
			contributions, err := src.Fetch(ctx, opts...)
			results <- loadResult{id: src.ID(), contributions: contributions, err: err}
		}(src)
	}
	wg.Wait()
	close(results)

	byID := make(map[facts.SourceID][]facts.Contribution, len(c.sources))
	failures := make(map[facts.SourceID]error)
	for res := range results {
		if res.err != nil {
			failures[res.id] = res.err
			continue
		}
		byID[res.id] = res.contributions
	}
	if len(failures) > 0 {
		for _, id := range facts.AllSources() {
			if err, ok := failures[id]; ok {
				return nil, err
			}
		}
	}

	var all []facts.Contribution
	for _, id := range facts.AllSources() {
		all = append(all, byID[id]...)
	}
	logger.Debug().
		Str("dir", c.dir).
		Int("sources", len(c.sources)).
		Int("contributions", len(all)).
		Msg("Loaded contributions from cache dir")
	return all, nil
}

// Cleanup calls Cleanup on every source.
func (c *CacheDir) Cleanup() error {
	var first error
	for _, src := range c.sources {
		if err := src.Cleanup(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// cacheSource reads one namespace's cache file.
type cacheSource struct {
	id  facts.SourceID
	dir string
}

// ID implements Source.
func (s *cacheSource) ID() facts.SourceID { return s.id }

// Cleanup implements Source. Cache files are read-only here.
func (s *cacheSource) Cleanup() error { return nil }

// Fetch implements Source: it decodes the namespace's cache file and
// yields one present contribution per cached gene in the universe.
// Cached strays outside the universe are skipped, matching how fetchers
// only ever consult the registry's symbols.
func (s *cacheSource) Fetch(ctx context.Context, opts ...Option) ([]facts.Contribution, error) {
	options := NewOptions(opts...)

	path, format, ok := s.resolve()
	if !ok {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}

	entries, err := decodeRecords(s.id, data)
	if err != nil {
		return nil, errors.NewParseError(format, path, err.Error(), err)
	}

	var contributions []facts.Contribution
	for _, symbol := range options.Universe() {
		entry, cached := entries[symbol]
		if !cached {
			continue
		}
		s.fillCrossRefs(&entry, symbol, options)

		var copts []facts.ContributionOption
		if entry.nativeID != "" {
			copts = append(copts, facts.WithNativeID(entry.nativeID))
		}
		if entry.payload != nil {
			copts = append(copts, facts.WithPayload(entry.payload))
		}
		contribution, err := facts.New(s.id, symbol, copts...)
		if err != nil {
			return nil, fmt.Errorf("cache entry %s/%s: %w", s.id, symbol, err)
		}
		contributions = append(contributions, contribution)
	}

	logging.FromContext(ctx).Debug().
		Str("source", s.id.String()).
		Str("file", path).
		Int("cached", len(entries)).
		Int("contributions", len(contributions)).
		Msg("Loaded source cache")
	return contributions, nil
}

// resolve finds the namespace's cache file, trying each extension.
func (s *cacheSource) resolve() (path, format string, ok bool) {
	base := filepath.Join(s.dir, s.id.String(), s.id.String()+"_cache.")
	for _, ext := range cacheExtensions {
		candidate := base + ext
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			format = ext
			if format == "yml" {
				format = "yaml"
			}
			return candidate, format, true
		}
	}
	return "", "", false
}

// fillCrossRefs backfills native IDs the cache file does not carry from
// the registry's cross-reference table. ClinVar records are keyed by
// NCBI Gene ID, OMIM by MIM number, UniProt by accession.
func (s *cacheSource) fillCrossRefs(entry *record, symbol genes.Symbol, options *Options) {
	gene, found := options.Registry.Get(symbol)
	if !found {
		return
	}
	switch p := entry.payload.(type) {
	case facts.ClinVarFacts:
		if p.GeneID == "" {
			p.GeneID = gene.NCBI
			entry.payload = p
		}
		if entry.nativeID == "" {
			entry.nativeID = gene.NCBI
		}
	case facts.OMIMFacts:
		if entry.nativeID == "" {
			entry.nativeID = gene.OMIM
		}
	case facts.UniProtFacts:
		if entry.nativeID == "" {
			entry.nativeID = gene.UniProt
		}
	}
}
