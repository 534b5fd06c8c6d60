package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client performs the upstream HTTP GETs shared by all adapters. Each call
// carries the configured User-Agent and is bounded by the client timeout.
type Client struct {
	httpClient *http.Client
	userAgent  string
}

// NewClient creates a Client with the given per-request timeout.
func NewClient(timeout time.Duration, userAgent string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		userAgent:  userAgent,
	}
}

// Response is the status and body of one upstream call.
type Response struct {
	StatusCode int
	Body       []byte
}

// Get performs an HTTP GET with optional extra headers. A non-2xx status is
// not an error here; adapters decide how to degrade.
func (c *Client) Get(ctx context.Context, url string, headers map[string]string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("source client new request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, doErr := c.httpClient.Do(req)
	if doErr != nil {
		return nil, fmt.Errorf("source client do request: %w", doErr)
	}
	defer resp.Body.Close()

	body, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		return nil, fmt.Errorf("source client read body: %w", readErr)
	}

	return &Response{StatusCode: resp.StatusCode, Body: body}, nil
}
