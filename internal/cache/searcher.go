// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cache

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/pdiddy/arxivsearch/internal/search"
	"github.com/pdiddy/arxivsearch/pkg/types"
)

// Searcher serves results from the Store and falls through to Next on a
// miss. Cache read and write failures are logged and never fail the query.
// Empty result lists are not cached.
type Searcher struct {
	Store  *Store
	Next   search.Searcher
	Logger zerolog.Logger
}

var _ search.Searcher = (*Searcher)(nil)

// Search implements search.Searcher.
func (c *Searcher) Search(ctx context.Context, query string, maxResults int) ([]types.SearchResult, error) {
	results, ok, err := c.Store.Get(ctx, query, maxResults)
	if err != nil {
		c.Logger.Warn().Err(err).Str("query", query).Msg("cache read failed")
	}
	if ok {
		c.Logger.Debug().Str("query", query).Int("results", len(results)).Msg("cache hit")
		return results, nil
	}

	results, err = c.Next.Search(ctx, query, maxResults)
	if err != nil {
		return nil, err
	}
	if len(results) > 0 {
		if err := c.Store.Put(ctx, query, maxResults, results); err != nil {
			c.Logger.Warn().Err(err).Str("query", query).Msg("cache write failed")
		}
	}
	return results, nil
}
