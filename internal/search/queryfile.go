// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/arxivsearch/pkg/types"
)

// QueryFile is the on-disk representation of a query and its results. A
// saved search can be rendered again later without calling arXiv.
type QueryFile struct {
	Query   string               `yaml:"query"`
	Config  QueryFileConfig      `yaml:"config"`
	Results []types.SearchResult `yaml:"results"`
	Summary QuerySummary         `yaml:"summary"`
}

// QueryFileConfig stores the settings that produced the results.
type QueryFileConfig struct {
	MaxResults int `yaml:"max_results"`
}

// QuerySummary stores result statistics and a timestamp.
type QuerySummary struct {
	Total     int       `yaml:"total"`
	Timestamp time.Time `yaml:"timestamp"`
}

// WriteQueryFile saves the query and its results to a YAML file.
func WriteQueryFile(path, query string, maxResults int, results []types.SearchResult) error {
	qf := QueryFile{
		Query:   query,
		Config:  QueryFileConfig{MaxResults: maxResults},
		Results: results,
		Summary: QuerySummary{
			Total:     len(results),
			Timestamp: time.Now().UTC(),
		},
	}

	data, err := yaml.Marshal(&qf)
	if err != nil {
		return fmt.Errorf("marshaling query file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadQueryFile loads a previously saved query file from disk.
func ReadQueryFile(path string) (*QueryFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading query file: %w", err)
	}
	var qf QueryFile
	if err := yaml.Unmarshal(data, &qf); err != nil {
		return nil, fmt.Errorf("parsing query file: %w", err)
	}
	if qf.Query == "" {
		return nil, fmt.Errorf("query file %s has no query", path)
	}
	return &qf, nil
}

// Searcher returns a collaborator that replays the saved results instead of
// calling arXiv. It honours maxResults like a live search would.
func (qf *QueryFile) Searcher() Searcher {
	return SearcherFunc(func(_ context.Context, _ string, maxResults int) ([]types.SearchResult, error) {
		results := qf.Results
		if maxResults > 0 && len(results) > maxResults {
			results = results[:maxResults]
		}
		return results, nil
	})
}
