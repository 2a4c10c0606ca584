// Package renderapi is the paid HTML-rendering fetch service client,
// repurposed from the teacher's pkg/mtnapi.Client shape (BaseURL +
// APIKey + http.Client, with a MockAPI switch for environments without
// paid credentials).
package renderapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

type Client struct {
	BaseURL string
	APIKey  string
	MockAPI bool
	http    *http.Client
}

func NewClient(baseURL, apiKey string, mockAPI bool) *Client {
	return &Client{
		BaseURL: baseURL,
		APIKey:  apiKey,
		MockAPI: mockAPI,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// Render requests a rendered-HTML snapshot of targetURL, spending one
// paid credit per call.
func (c *Client) Render(ctx context.Context, targetURL string) ([]byte, error) {
	if c.MockAPI {
		return c.mockRender(targetURL), nil
	}

	endpoint := fmt.Sprintf("%s/render?url=%s&key=%s", c.BaseURL, url.QueryEscape(targetURL), c.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, ErrTooManyRequests
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("renderapi: status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

func (c *Client) mockRender(targetURL string) []byte {
	return []byte(fmt.Sprintf("<html><!-- mock render of %s --></html>", targetURL))
}

// ErrTooManyRequests lets callers (the paid-fetch adapter's backoff
// loop) distinguish a 429 from other failures.
var ErrTooManyRequests = fmt.Errorf("renderapi: rate limited")
