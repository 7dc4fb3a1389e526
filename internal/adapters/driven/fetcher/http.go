// Package fetcher retrieves raw job-posting pages over HTTP. The body
// is returned as-is; the webpage normaliser strips markup downstream.
package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/coldconnect-labs/coldconnect-cli/internal/core/ports/driven"
)

// Ensure Fetcher implements the interface.
var _ driven.PageFetcher = (*Fetcher)(nil)

// Default configuration values.
const (
	DefaultTimeout   = 30 * time.Second
	DefaultUserAgent = "coldconnect/1.0"

	// maxBodyBytes caps how much of a page is read. Career pages are
	// text; anything larger is not a job posting.
	maxBodyBytes = 4 << 20
)

// Config holds configuration for the HTTP page fetcher.
type Config struct {
	// Timeout is the request timeout (default: 30s).
	Timeout time.Duration

	// UserAgent is sent with every request.
	UserAgent string
}

// Fetcher downloads pages with a plain HTTP client.
type Fetcher struct {
	client    *http.Client
	userAgent string
}

// New creates a new page fetcher.
func New(cfg Config) *Fetcher {
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}

	return &Fetcher{
		client:    &http.Client{Timeout: cfg.Timeout},
		userAgent: cfg.UserAgent,
	}
}

// Fetch retrieves the page at url and returns its raw text.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch page: status %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", fmt.Errorf("read page body: %w", err)
	}
	return string(body), nil
}
