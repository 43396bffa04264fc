// Package infra provides the shared upstream HTTP plumbing used by every
// platform provider: a JSON GET client and the typed upstream error.
package infra

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// UserAgent is sent on every upstream request.
const UserAgent = "commentlens/1.0 (+https://github.com/seenimoa/commentlens)"

// DefaultTimeout bounds a single upstream request when the caller supplies
// no http.Client of its own.
const DefaultTimeout = 30 * time.Second

// maxErrorBody caps how much of a failed response is kept for diagnostics.
const maxErrorBody = 2048

// UpstreamError is returned for non-2xx upstream responses. Message holds
// the API's own error.message when the body carries one.
type UpstreamError struct {
	StatusCode int
	Status     string
	Message    string
	Body       string
}

func (e *UpstreamError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("upstream HTTP %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("upstream HTTP %d", e.StatusCode)
}

// Client performs JSON GET requests against a REST API.
type Client struct {
	http   *http.Client
	logger *slog.Logger
}

// NewClient wraps hc. A nil hc gets a client with DefaultTimeout; a nil
// logger uses slog.Default().
func NewClient(hc *http.Client, logger *slog.Logger) *Client {
	if hc == nil {
		hc = &http.Client{Timeout: DefaultTimeout}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{http: hc, logger: logger}
}

// HTTPClient returns the underlying http.Client.
func (c *Client) HTTPClient() *http.Client { return c.http }

// GetJSON issues GET rawURL?query and decodes a 2xx body into dest.
// Non-2xx responses yield *UpstreamError.
func (c *Client) GetJSON(ctx context.Context, rawURL string, query url.Values, dest any) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("parse upstream url: %w", err)
	}
	if len(query) > 0 {
		q := u.Query()
		for k, vs := range query {
			for _, v := range vs {
				q.Add(k, v)
			}
		}
		u.RawQuery = q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", UserAgent)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s%s: %w", u.Host, u.Path, err)
	}
	defer resp.Body.Close()

	// The query is left out of the log line since it may carry credentials.
	c.logger.Debug("[Upstream] GET",
		slog.String("host", u.Host),
		slog.String("path", u.Path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeUpstreamError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode %s%s: %w", u.Host, u.Path, err)
	}
	return nil
}

// decodeUpstreamError reads the {"error":{"message":...}} envelope shared by
// the Google and Meta APIs.
func decodeUpstreamError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	ue := &UpstreamError{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Body:       string(body),
	}
	var envelope struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if json.Unmarshal(body, &envelope) == nil {
		ue.Message = envelope.Error.Message
	}
	return ue
}
