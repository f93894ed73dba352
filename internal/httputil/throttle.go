// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers for outbound API calls.
package httputil

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// DefaultInterval is the request spacing the arXiv API terms of use ask for.
const DefaultInterval = 3 * time.Second

// ThrottledClient wraps an http.Client with a token bucket so that calls are
// spaced at least Interval apart. A failed or rate-limited response is
// returned to the caller as-is; ThrottledClient never retries.
//
// It is safe for concurrent use: every caller waits on the same limiter.
type ThrottledClient struct {
	client    *http.Client
	limiter   *rate.Limiter
	userAgent string
}

// NewThrottledClient returns a client that allows one request per interval
// with a burst of one. A non-positive interval disables throttling.
func NewThrottledClient(client *http.Client, interval time.Duration, userAgent string) *ThrottledClient {
	if client == nil {
		client = http.DefaultClient
	}
	limit := rate.Inf
	if interval > 0 {
		limit = rate.Every(interval)
	}
	return &ThrottledClient{
		client:    client,
		limiter:   rate.NewLimiter(limit, 1),
		userAgent: userAgent,
	}
}

// Do waits for the limiter and then executes req under ctx. If the context is
// cancelled while waiting, Do returns the context error without sending.
func (c *ThrottledClient) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("waiting for rate limiter: %w", err)
	}
	req = req.Clone(ctx)
	if c.userAgent != "" && req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	return c.client.Do(req)
}
