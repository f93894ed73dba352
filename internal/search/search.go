// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search runs a query against the search collaborator and
// materializes its results once, so that emptiness checks and formatting
// read the same list.
package search

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pdiddy/arxivsearch/pkg/types"
)

// DefaultMaxResults is the number of records the chat command requests.
const DefaultMaxResults = 50

var (
	// ErrNoResults is returned when the collaborator finds nothing. It is a
	// normal outcome, not a failure.
	ErrNoResults = errors.New("no results")

	// ErrEmptyQuery is returned for a blank query string.
	ErrEmptyQuery = errors.New("query is empty: provide search terms")

	// ErrInvalidMaxResults is returned when maxResults is not positive.
	ErrInvalidMaxResults = errors.New("max results must be positive")
)

// Searcher is the search collaborator. Implementations return records in
// relevance order.
type Searcher interface {
	Search(ctx context.Context, query string, maxResults int) ([]types.SearchResult, error)
}

// SearcherFunc adapts a function to the Searcher interface.
type SearcherFunc func(ctx context.Context, query string, maxResults int) ([]types.SearchResult, error)

// Search calls f.
func (f SearcherFunc) Search(ctx context.Context, query string, maxResults int) ([]types.SearchResult, error) {
	return f(ctx, query, maxResults)
}

// Execute calls s exactly once and returns at most maxResults records in the
// order s produced them. It returns ErrNoResults when s finds nothing.
// Collaborator errors are wrapped and returned; Execute never retries.
func Execute(ctx context.Context, s Searcher, query string, maxResults int) ([]types.SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}
	if maxResults <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidMaxResults, maxResults)
	}

	results, err := s.Search(ctx, query, maxResults)
	if err != nil {
		return nil, fmt.Errorf("searching for %q: %w", query, err)
	}
	if len(results) == 0 {
		return nil, ErrNoResults
	}
	if len(results) > maxResults {
		results = results[:maxResults]
	}
	return results, nil
}
