package web

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"news_harvester/internal/domain"
)

// Config holds HTTP fetch configuration.
type Config struct {
	// Timeout bounds a whole request. Zero or negative disables it.
	Timeout   time.Duration
	UserAgent string
}

// Client issues plain GET requests. No retries, no rate limiting.
type Client struct {
	httpClient *http.Client
	userAgent  string
	logger     *slog.Logger
}

// New creates a new fetch client.
func New(cfg Config, logger *slog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout < 0 {
		timeout = 0
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		userAgent: cfg.UserAgent,
		logger:    logger,
	}
}

// NewWithHTTPClient wraps an existing http.Client.
func NewWithHTTPClient(c *http.Client, logger *slog.Logger) *Client {
	return &Client{httpClient: c, logger: logger}
}

// Get fetches url and returns the response body. Any transport failure or
// non-2xx status is reported as a *domain.FetchError.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &domain.FetchError{URL: url, Err: err}
	}

	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &domain.FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &domain.FetchError{URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.FetchError{URL: url, Err: err}
	}

	c.logger.Debug("fetched",
		"url", url,
		"status", resp.StatusCode,
		"bytes", len(body),
		"duration", time.Since(start),
	)

	return body, nil
}
