package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// maxInputSize caps how much of a response body is read.
const maxInputSize = 10 * 1024 * 1024

// apiClient fetches puzzle inputs from the puzzle site.
type apiClient struct {
	baseURL   string
	userAgent string
	attempts  int
	backoff   time.Duration
	http      *http.Client
}

// newAPIClient creates a new API client with the given configuration.
func newAPIClient(cfg appConfig) (*apiClient, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("base_url is required")
	}
	u, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base_url: %w", err)
	}
	u.Path = strings.TrimRight(u.Path, "/")

	c := &apiClient{
		baseURL:   u.String(),
		userAgent: cfg.UserAgent,
		attempts:  cfg.RetryAttempts,
		backoff:   2 * time.Second,
		http: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
	}
	if c.userAgent == "" {
		c.userAgent = defaultUA
	}
	if c.attempts < 1 {
		c.attempts = 1
	}
	if cfg.TimeoutSeconds <= 0 {
		c.http.Timeout = defaultTimeout * time.Second
	}
	return c, nil
}

// apiError represents a non-2xx response from the puzzle site.
type apiError struct {
	StatusCode int
	Message    string
	Body       []byte
}

func (e *apiError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api %d", e.StatusCode)
}

// input fetches the raw input for one day. The body is returned as sent,
// including its trailing newline.
func (c *apiClient) input(ctx context.Context, year, day int, token string) (string, error) {
	reqURL := fmt.Sprintf("%s/%d/day/%d/input", c.baseURL, year, day)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.AddCookie(&http.Cookie{Name: "session", Value: token})

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxInputSize))
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := strings.TrimSpace(string(b))
		if len(msg) > 200 {
			msg = msg[:200]
		}
		return "", &apiError{StatusCode: resp.StatusCode, Message: msg, Body: b}
	}
	return string(b), nil
}

// inputWithRetry retries rate-limited and server-side failures with a
// doubling backoff.
func inputWithRetry(ctx context.Context, client *apiClient, log *logger, year, day int, token string) (string, error) {
	backoff := client.backoff
	for attempt := 1; ; attempt++ {
		text, err := client.input(ctx, year, day, token)
		if err == nil {
			return text, nil
		}
		if !isRetryable(err) || attempt >= client.attempts {
			return "", err
		}
		log.warnf("fetch failed (%s), retrying in %s (attempt %d/%d)...", err.Error(), backoff.Round(100*time.Millisecond), attempt+1, client.attempts)
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(backoff):
		}
		if backoff < 30*time.Second {
			backoff *= 2
		}
	}
}

func isRetryable(err error) bool {
	var ae *apiError
	if !errors.As(err, &ae) {
		return false
	}
	return ae.StatusCode == http.StatusTooManyRequests || ae.StatusCode >= 500
}

// isAuthError reports a rejected session. The site answers a bad or expired
// session cookie with 400.
func isAuthError(err error) bool {
	var ae *apiError
	return errors.As(err, &ae) && (ae.StatusCode == 400 || ae.StatusCode == 401 || ae.StatusCode == 403)
}
