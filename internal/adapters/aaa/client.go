package aaa

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client fetches the AAA diamond-hotel XML feed. A single unauthenticated GET,
// no retry policy.
type Client struct {
	url string
	hc  *http.Client
}

func New(url string, timeout time.Duration) (*Client, error) {
	if url == "" {
		return nil, fmt.Errorf("feed URL is required")
	}
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &Client{
		url: url,
		hc:  &http.Client{Timeout: timeout},
	}, nil
}

// FetchFeed performs the GET and returns the raw response body.
func (c *Client) FetchFeed(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/xml, text/xml")
	req.Header.Set("User-Agent", "diamond-hotels/1.0")

	resp, err := c.hc.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// read a small error body for diagnostics
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("bad status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read feed body: %w", err)
	}
	return body, nil
}
