// Package fetch owns the HTTP side of a scrape run: one shared client with a
// fixed user agent, a fixed per-request timeout and a polite request rate
// against the target site.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

type Client struct {
	hc        *http.Client
	limiter   *rate.Limiter
	userAgent string
}

func NewClient(timeout time.Duration, userAgent string, reqPerSec float64, burst int) *Client {
	return &Client{
		hc:        &http.Client{Timeout: timeout},
		limiter:   rate.NewLimiter(rate.Limit(reqPerSec), burst),
		userAgent: userAgent,
	}
}

// Fetch returns the body of url as text. Transport errors, timeouts and
// non-2xx statuses all come back as errors; the caller decides what absence
// of content means.
func (c *Client) Fetch(ctx context.Context, url string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build request %s: %w", url, err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	res, err := c.hc.Do(req)
	if err != nil {
		return "", fmt.Errorf("get %s: %w", url, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return "", fmt.Errorf("get %s: status %d", url, res.StatusCode)
	}

	b, err := io.ReadAll(res.Body)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", url, err)
	}
	return string(b), nil
}
