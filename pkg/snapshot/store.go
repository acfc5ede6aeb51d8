package snapshot

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite" // pure go sqlite driver

	"github.com/neurocrista/genemap/pkg/errors"
)

// DefaultStorePath is used when Open is called with an empty path.
const DefaultStorePath = "genemap.db"

// Store persists snapshot history in a single SQLite table, one row per
// date. Symbol lists are stored as JSON payloads.
type Store struct {
	db   *sql.DB
	path string
	mu   sync.Mutex
}

// Open creates or opens a snapshot store at the given path, creating
// parent directories as needed.
func Open(path string) (*Store, error) {
	if path == "" {
		path = DefaultStorePath
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, errors.WrapIO("create", dir, err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS snapshots (
		date TEXT PRIMARY KEY,
		total_genes INTEGER NOT NULL,
		critical_count INTEGER NOT NULL,
		gap_symbols BLOB NOT NULL,
		facebase_symbols BLOB NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create snapshots table: %w", err)
	}
	return &Store{db: db, path: path}, nil
}

// Path returns the database path the store was opened with.
func (s *Store) Path() string { return s.path }

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save upserts one record. Saving a date that already exists replaces
// that day's row.
func (s *Store) Save(ctx context.Context, rec Record) error {
	if _, err := time.Parse(DateLayout, rec.Date); err != nil {
		return &errors.ValidationError{
			Field:   "date",
			Value:   rec.Date,
			Message: "must be formatted YYYY-MM-DD",
		}
	}

	gaps, err := json.Marshal(emptyIfNil(rec.GapSymbols))
	if err != nil {
		return fmt.Errorf("encode gap symbols: %w", err)
	}
	facebase, err := json.Marshal(emptyIfNil(rec.FacebaseSymbols))
	if err != nil {
		return fmt.Errorf("encode facebase symbols: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	_, err = s.db.ExecContext(ctx, `INSERT INTO snapshots
		(date, total_genes, critical_count, gap_symbols, facebase_symbols)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET
			total_genes = excluded.total_genes,
			critical_count = excluded.critical_count,
			gap_symbols = excluded.gap_symbols,
			facebase_symbols = excluded.facebase_symbols`,
		rec.Date, rec.TotalGenes, rec.CriticalCount, gaps, facebase)
	if err != nil {
		return fmt.Errorf("upsert snapshot %s: %w", rec.Date, err)
	}
	return nil
}

// List returns all saved records in date-ascending order.
func (s *Store) List(ctx context.Context) ([]Record, error) {
	return s.query(ctx, `SELECT date, total_genes, critical_count,
		gap_symbols, facebase_symbols FROM snapshots ORDER BY date ASC`)
}

// Latest returns up to n of the most recent records, date-ascending, so
// Latest(ctx, 2) yields [previous, current] when two or more exist.
func (s *Store) Latest(ctx context.Context, n int) ([]Record, error) {
	if n < 1 {
		return []Record{}, nil
	}
	recs, err := s.query(ctx, `SELECT date, total_genes, critical_count,
		gap_symbols, facebase_symbols FROM snapshots ORDER BY date DESC LIMIT ?`, n)
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(recs)-1; i < j; i, j = i+1, j-1 {
		recs[i], recs[j] = recs[j], recs[i]
	}
	return recs, nil
}

func (s *Store) query(ctx context.Context, q string, args ...any) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("select snapshots: %w", err)
	}
	defer func() { _ = rows.Close() }()

	recs := make([]Record, 0)
	for rows.Next() {
		var rec Record
		var gaps, facebase []byte
		if err := rows.Scan(&rec.Date, &rec.TotalGenes, &rec.CriticalCount, &gaps, &facebase); err != nil {
			return nil, fmt.Errorf("scan snapshot: %w", err)
		}
		if err := json.Unmarshal(gaps, &rec.GapSymbols); err != nil {
			return nil, errors.WrapParse("json", s.path, err)
		}
		if err := json.Unmarshal(facebase, &rec.FacebaseSymbols); err != nil {
			return nil, errors.WrapParse("json", s.path, err)
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate snapshots: %w", err)
	}
	return recs, nil
}

func emptyIfNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
