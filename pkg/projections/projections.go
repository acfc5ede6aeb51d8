// Package projections derives named reports from a reconciled gene set.
//
// Every projection is a pure function over the full universe: the same
// set always yields the same report, and no state is shared between
// runs, so any number of projections may execute concurrently against
// one set. Reports are plain maps, slices, and primitives ready for
// direct serialization by any presentation layer.
//
// Projections that take configuration (gap predicates, score formulas,
// anomaly rules) validate it up front and fail with a ConfigError
// before touching a single entity. Data-quality findings (gaps,
// anomalies, zero-coverage genes) are report content, never errors.
package projections

// Report is a serializable projection result: nested maps, slices, and
// primitives only.
type Report map[string]any
