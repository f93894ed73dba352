// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package cache keeps materialized arXiv result lists in SQLite so that a
// repeated query within the TTL does not call the API again.
package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/arxivsearch/pkg/types"
)

const (
	// DefaultPath is the database location when the config leaves it empty.
	DefaultPath = ".cache/arxivsearch.db"

	// DefaultTTL is how long an entry stays fresh.
	DefaultTTL = time.Hour
)

// Store manages the cache database.
type Store struct {
	db  *sql.DB
	ttl time.Duration
	now func() time.Time
}

// NewStore opens or creates the cache database at cfg.Path and creates the
// schema if it does not exist.
func NewStore(cfg types.CacheConfig) (*Store, error) {
	path := cfg.Path
	if path == "" {
		path = DefaultPath
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating cache directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening cache database: %w", err)
	}

	s := &Store{db: db, ttl: ttl, now: time.Now}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS results (
			query TEXT NOT NULL,
			max_results INTEGER NOT NULL,
			payload TEXT NOT NULL,
			fetched_at INTEGER NOT NULL,
			PRIMARY KEY (query, max_results)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_results_fetched_at ON results(fetched_at)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Get returns the cached results for (query, maxResults) when a fresh entry
// exists. The boolean is false on a miss or an expired entry.
func (s *Store) Get(ctx context.Context, query string, maxResults int) ([]types.SearchResult, bool, error) {
	var payload string
	var fetchedAt int64
	err := s.db.QueryRowContext(ctx,
		`SELECT payload, fetched_at FROM results WHERE query = ? AND max_results = ?`,
		cacheKey(query), maxResults,
	).Scan(&payload, &fetchedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading cache entry: %w", err)
	}

	if s.now().Sub(time.Unix(0, fetchedAt)) > s.ttl {
		return nil, false, nil
	}

	var results []types.SearchResult
	if err := json.Unmarshal([]byte(payload), &results); err != nil {
		return nil, false, fmt.Errorf("decoding cache entry: %w", err)
	}
	return results, true, nil
}

// Put stores results for (query, maxResults), replacing any previous entry.
func (s *Store) Put(ctx context.Context, query string, maxResults int, results []types.SearchResult) error {
	payload, err := json.Marshal(results)
	if err != nil {
		return fmt.Errorf("encoding cache entry: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO results (query, max_results, payload, fetched_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(query, max_results) DO UPDATE SET payload = excluded.payload, fetched_at = excluded.fetched_at`,
		cacheKey(query), maxResults, string(payload), s.now().UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("writing cache entry: %w", err)
	}
	return nil
}

// Prune deletes expired entries and returns how many were removed.
func (s *Store) Prune(ctx context.Context) (int64, error) {
	cutoff := s.now().Add(-s.ttl).UnixNano()
	res, err := s.db.ExecContext(ctx, `DELETE FROM results WHERE fetched_at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("pruning cache: %w", err)
	}
	return res.RowsAffected()
}

// cacheKey folds case and whitespace so trivially different spellings of a
// query share an entry.
func cacheKey(query string) string {
	return strings.ToLower(strings.Join(strings.Fields(query), " "))
}
