// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package arxiv is the search collaborator: it queries the arXiv API and
// converts the Atom feed into types.SearchResult records.
package arxiv

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pdiddy/arxivsearch/internal/httputil"
	"github.com/pdiddy/arxivsearch/pkg/types"
)

const (
	// DefaultBaseURL is the arXiv API query endpoint.
	DefaultBaseURL = "https://export.arxiv.org/api/query"

	// DefaultTimeout bounds a single API call.
	DefaultTimeout = 30 * time.Second

	// DefaultUserAgent is sent when the config leaves UserAgent empty.
	DefaultUserAgent = "arxivsearch/0.1"

	// maxBodyBytes limits how much of a feed is decoded.
	maxBodyBytes = 10 << 20
)

// APIError reports a non-200 response or an error entry returned by the API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("arXiv API returned HTTP %d: %s", e.StatusCode, e.Message)
	}
	return "arXiv API error: " + e.Message
}

// Client queries the arXiv API.
type Client struct {
	http    *httputil.ThrottledClient
	baseURL string
}

// New creates a client from cfg, filling in defaults for unset fields.
// httpClient may be nil; tests pass an httptest server client.
func New(cfg types.SearchConfig, httpClient *http.Client) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{
		http:    httputil.NewThrottledClient(httpClient, cfg.RateInterval, cfg.UserAgent),
		baseURL: cfg.BaseURL,
	}
}

// Search returns up to maxResults records for query in arXiv relevance order.
// The query is passed through verbatim, so arXiv field prefixes such as
// "au:" or "ti:" work.
func (c *Client) Search(ctx context.Context, query string, maxResults int) ([]types.SearchResult, error) {
	reqURL, err := c.buildURL(query, maxResults)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.http.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("arXiv API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<10))
		return nil, &APIError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(body))}
	}

	var f feed
	if err := xml.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&f); err != nil {
		return nil, fmt.Errorf("parsing arXiv response: %w", err)
	}

	results := make([]types.SearchResult, 0, len(f.Entries))
	for _, e := range f.Entries {
		if e.isError() {
			return nil, &APIError{Message: normalizeWhitespace(e.Summary)}
		}
		results = append(results, toResult(e))
	}
	if maxResults > 0 && len(results) > maxResults {
		results = results[:maxResults]
	}
	return results, nil
}

func (c *Client) buildURL(query string, maxResults int) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("parsing base URL: %w", err)
	}
	q := url.Values{}
	q.Set("search_query", query)
	q.Set("start", "0")
	q.Set("max_results", strconv.Itoa(maxResults))
	q.Set("sortBy", "relevance")
	q.Set("sortOrder", "descending")
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func toResult(e entry) types.SearchResult {
	r := types.SearchResult{
		Title:           normalizeWhitespace(e.Title),
		PrimaryCategory: e.primaryCategory(),
		EntryID:         strings.TrimSpace(e.ID),
		PDFURL:          e.pdfLink(),
		DOI:             strings.TrimSpace(e.DOI),
		JournalRef:      normalizeWhitespace(e.JournalRef),
		Comment:         normalizeWhitespace(e.Comment),
		Summary:         normalizeWhitespace(e.Summary),
	}
	if r.PDFURL == "" {
		r.PDFURL = strings.Replace(r.EntryID, "/abs/", "/pdf/", 1)
	}

	for _, a := range e.Authors {
		r.Authors = append(r.Authors, types.Author{Name: strings.TrimSpace(a.Name)})
	}

	if t, err := time.Parse(time.RFC3339, strings.TrimSpace(e.Published)); err == nil {
		r.Published = t
	}
	if t, err := time.Parse(time.RFC3339, strings.TrimSpace(e.Updated)); err == nil {
		r.Updated = t
	} else {
		r.Updated = r.Published
	}
	return r
}
