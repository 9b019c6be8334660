package gmaps

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/platform/obs"
	"trip-planner-service/internal/ports"
)

// Directions queries driving routes through the Directions API
// (/directions/json). Coordinates go on the wire as exact "lat,lon" text;
// the response body comes back opaque.
type Directions struct {
	client *Client
	apiKey string
	log    *zap.Logger
}

func NewDirections(client *Client, apiKey string, log *zap.Logger) (*Directions, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("%w: routing api key is empty", domain.ErrConfiguration)
	}
	return &Directions{client: client, apiKey: apiKey, log: log}, nil
}

// directionsEnvelope lifts out just enough to classify provider failure.
// The routes themselves stay raw.
type directionsEnvelope struct {
	Status       string            `json:"status"`
	ErrorMessage string            `json:"error_message"`
	Routes       []json.RawMessage `json:"routes"`
}

func (d *Directions) Routes(ctx context.Context, q domain.RouteQuery) (_ domain.RouteResult, err error) {
	defer obs.Time(ctx, d.log, "gmaps.directions")(&err)

	pair := q.Origin.PairString() + " -> " + q.Destination.PairString()

	params := url.Values{}
	params.Set("origin", q.Origin.PairString())
	params.Set("destination", q.Destination.PairString())
	params.Set("alternatives", strconv.FormatBool(q.Alternatives))
	params.Set("departure_time", q.Departure)
	params.Set("key", d.apiKey)

	body, err := d.client.get(ctx, "/directions/json", params)
	if err != nil {
		return domain.RouteResult{}, fmt.Errorf("%w: route %s: %w", domain.ErrRouteProvider, pair, err)
	}

	var envelope directionsEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return domain.RouteResult{}, fmt.Errorf("%w: route %s: decode response: %w", domain.ErrRouteProvider, pair, err)
	}

	if envelope.Status != statusOK {
		msg := envelope.Status
		if envelope.ErrorMessage != "" {
			msg += ": " + envelope.ErrorMessage
		}
		return domain.RouteResult{}, fmt.Errorf("%w: route %s: provider status %s", domain.ErrRouteProvider, pair, msg)
	}

	return domain.RouteResult{
		Status:     envelope.Status,
		RouteCount: len(envelope.Routes),
		Raw:        json.RawMessage(body),
	}, nil
}

var _ ports.RouteProvider = (*Directions)(nil)
