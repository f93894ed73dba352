// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/arxivsearch/pkg/types"
)

// --- mock searcher ---

type mockSearcher struct {
	results []types.SearchResult
	err     error
	calls   int
	gotMax  int
}

func (m *mockSearcher) Search(_ context.Context, _ string, maxResults int) ([]types.SearchResult, error) {
	m.calls++
	m.gotMax = maxResults
	return m.results, m.err
}

func records(n int) []types.SearchResult {
	out := make([]types.SearchResult, n)
	for i := range out {
		out[i] = types.SearchResult{Title: fmt.Sprintf("Paper %d", i+1)}
	}
	return out
}

// --- Execute ---

func TestExecuteReturnsResultsInOrder(t *testing.T) {
	m := &mockSearcher{results: records(7)}

	got, err := Execute(context.Background(), m, "quantum error correction", 50)
	require.NoError(t, err)
	require.Len(t, got, 7)
	for i, r := range got {
		assert.Equal(t, fmt.Sprintf("Paper %d", i+1), r.Title)
	}
	assert.Equal(t, 1, m.calls, "collaborator must be called exactly once")
	assert.Equal(t, 50, m.gotMax)
}

func TestExecuteNoResults(t *testing.T) {
	m := &mockSearcher{}

	got, err := Execute(context.Background(), m, "zzzxqv", 50)
	assert.ErrorIs(t, err, ErrNoResults)
	assert.Nil(t, got)
	assert.Equal(t, 1, m.calls)
}

func TestExecuteTruncatesOverDelivery(t *testing.T) {
	m := &mockSearcher{results: records(12)}

	got, err := Execute(context.Background(), m, "graphs", 10)
	require.NoError(t, err)
	assert.Len(t, got, 10)
	assert.Equal(t, "Paper 10", got[9].Title)
}

func TestExecuteInputValidation(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		maxResults int
		want       error
	}{
		{"empty query", "", 50, ErrEmptyQuery},
		{"whitespace query", "   \t", 50, ErrEmptyQuery},
		{"zero max", "graphs", 0, ErrInvalidMaxResults},
		{"negative max", "graphs", -3, ErrInvalidMaxResults},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &mockSearcher{results: records(1)}
			_, err := Execute(context.Background(), m, tt.query, tt.maxResults)
			assert.ErrorIs(t, err, tt.want)
			assert.Zero(t, m.calls, "collaborator must not be called")
		})
	}
}

func TestExecutePropagatesCollaboratorFailure(t *testing.T) {
	upstream := errors.New("connection reset by peer")
	m := &mockSearcher{err: upstream}

	_, err := Execute(context.Background(), m, "graphs", 50)
	require.Error(t, err)
	assert.ErrorIs(t, err, upstream)
	assert.NotErrorIs(t, err, ErrNoResults)
	assert.Equal(t, 1, m.calls, "no retries")
}

func TestSearcherFunc(t *testing.T) {
	var gotQuery string
	f := SearcherFunc(func(_ context.Context, q string, _ int) ([]types.SearchResult, error) {
		gotQuery = q
		return records(2), nil
	})

	got, err := Execute(context.Background(), f, "spin glasses", 5)
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, "spin glasses", gotQuery)
}

// --- QueryFile ---

func TestQueryFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "search.yaml")
	published := time.Date(2017, 6, 12, 17, 57, 34, 0, time.UTC)
	results := []types.SearchResult{
		{
			Title:           "Attention Is All You Need",
			Authors:         []types.Author{{Name: "Ashish Vaswani"}, {Name: "Noam Shazeer"}},
			PrimaryCategory: "cs.CL",
			EntryID:         "http://arxiv.org/abs/1706.03762v7",
			PDFURL:          "http://arxiv.org/pdf/1706.03762v7",
			Published:       published,
			Updated:         published,
		},
		{Title: "BERT", DOI: "10.18653/v1/N19-1423", JournalRef: "NAACL 2019"},
	}

	require.NoError(t, WriteQueryFile(path, "attention", 50, results))

	qf, err := ReadQueryFile(path)
	require.NoError(t, err)
	assert.Equal(t, "attention", qf.Query)
	assert.Equal(t, 50, qf.Config.MaxResults)
	assert.Equal(t, 2, qf.Summary.Total)
	require.Len(t, qf.Results, 2)
	assert.Equal(t, results[0].Authors, qf.Results[0].Authors)
	assert.True(t, qf.Results[0].Published.Equal(published))
	assert.Equal(t, "10.18653/v1/N19-1423", qf.Results[1].DOI)
}

func TestQueryFileSearcherReplaysResults(t *testing.T) {
	qf := &QueryFile{Query: "graphs", Results: records(8)}

	got, err := Execute(context.Background(), qf.Searcher(), qf.Query, 6)
	require.NoError(t, err)
	assert.Len(t, got, 6)
}

func TestReadQueryFileErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := ReadQueryFile(filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "reading query file")

	noQuery := filepath.Join(dir, "empty.yaml")
	require.NoError(t, WriteQueryFile(noQuery, "", 50, nil))
	_, err = ReadQueryFile(noQuery)
	assert.ErrorContains(t, err, "has no query")
}
