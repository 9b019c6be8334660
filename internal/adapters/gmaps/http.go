// Package gmaps holds the adapters for the Google Maps web services:
// geocoding, time zone, and directions. The three share one HTTP client and
// base URL; each endpoint adapter carries its own credential.
package gmaps

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://maps.googleapis.com/maps/api"

	// statusOK is the provider-level success marker carried inside the
	// response body, independent of the HTTP status.
	statusOK = "OK"
)

type httpStatusError struct {
	Code int
	Body string
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("status %d: %s", e.Code, e.Body)
}

// Client issues requests against the Google Maps web services. It is safe
// for concurrent use. Every call is a single round trip: no retries, no
// masking of provider outages; a failure surfaces to the caller immediately.
type Client struct {
	session *http.Client
	baseURL string
}

type Option func(*Client)

// WithBaseURL overrides the production endpoint, mainly for tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithHTTPClient swaps the underlying transport.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.session = h }
}

func NewClient(opts ...Option) *Client {
	c := &Client{
		session: &http.Client{Timeout: 10 * time.Second},
		baseURL: defaultBaseURL,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// get issues one GET against endpoint and returns the raw body. Bodies of
// error responses are folded into the returned error for diagnosis.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.URL.RawQuery = params.Encode()

	resp, err := c.session.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, &httpStatusError{
			Code: resp.StatusCode,
			Body: strings.TrimSpace(string(body)),
		}
	}

	return body, nil
}
