// Package weather fetches forecasts from a Dark-Sky-compatible API:
// {base}/{key}/{lat},{lon}. Pirate Weather serves the same shape and is the
// default endpoint.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/platform/obs"
	"trip-planner-service/internal/ports"
)

const defaultBaseURL = "https://api.pirateweather.net/forecast"

// Client retrieves hourly forecasts for a coordinate. The forecast body
// stays opaque; only well-formedness is checked.
type Client struct {
	session *http.Client
	apiKey  string
	baseURL string
	extend  bool
	log     *zap.Logger
}

type Option func(*Client)

// WithBaseURL overrides the production endpoint, mainly for tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithoutExtendedHours limits the forecast to the provider default window
// instead of the extended 168 hours.
func WithoutExtendedHours() Option {
	return func(c *Client) { c.extend = false }
}

func New(apiKey string, log *zap.Logger, opts ...Option) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("%w: weather api key is empty", domain.ErrConfiguration)
	}

	c := &Client{
		session: &http.Client{Timeout: 10 * time.Second},
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		extend:  true,
		log:     log,
	}
	for _, o := range opts {
		o(c)
	}

	return c, nil
}

func (c *Client) Forecast(ctx context.Context, coord domain.Coordinates) (_ domain.Forecast, err error) {
	defer obs.Time(ctx, c.log, "weather.forecast")(&err)

	u := fmt.Sprintf("%s/%s/%s", c.baseURL, c.apiKey, coord.PairString())
	if c.extend {
		u += "?extend=hourly"
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return domain.Forecast{}, fmt.Errorf("%w: create request: %w", domain.ErrWeatherProvider, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.session.Do(req)
	if err != nil {
		return domain.Forecast{}, fmt.Errorf("%w: forecast for %s: %w", domain.ErrWeatherProvider, coord.PairString(), err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.Forecast{}, fmt.Errorf("%w: forecast for %s: read response: %w", domain.ErrWeatherProvider, coord.PairString(), err)
	}

	if resp.StatusCode >= 400 {
		return domain.Forecast{}, fmt.Errorf("%w: forecast for %s: status %d: %s",
			domain.ErrWeatherProvider, coord.PairString(), resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if !json.Valid(body) {
		return domain.Forecast{}, fmt.Errorf("%w: forecast for %s: malformed response body",
			domain.ErrWeatherProvider, coord.PairString())
	}

	return domain.Forecast{Coord: coord, Raw: json.RawMessage(body)}, nil
}

var _ ports.ForecastProvider = (*Client)(nil)
