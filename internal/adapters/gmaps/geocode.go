package gmaps

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/platform/obs"
	"trip-planner-service/internal/ports"
)

// Geocoder resolves street addresses through the Geocoding API
// (/geocode/json). The first result wins; this system does not disambiguate
// multiple matches.
type Geocoder struct {
	client *Client
	apiKey string
	log    *zap.Logger
}

func NewGeocoder(client *Client, apiKey string, log *zap.Logger) (*Geocoder, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("%w: geocoding api key is empty", domain.ErrConfiguration)
	}
	return &Geocoder{client: client, apiKey: apiKey, log: log}, nil
}

type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		FormattedAddress string `json:"formatted_address"`
		Geometry         struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

func (g *Geocoder) Resolve(ctx context.Context, address string) (_ domain.ResolvedLocation, err error) {
	defer obs.Time(ctx, g.log, "gmaps.geocode")(&err)

	// Collapse whitespace so logs and error messages stay readable.
	address = strings.Join(strings.Fields(address), " ")
	if address == "" {
		return domain.ResolvedLocation{}, fmt.Errorf("%w: address must be non-empty", domain.ErrGeocoding)
	}

	params := url.Values{}
	params.Set("address", address)
	params.Set("key", g.apiKey)

	body, err := g.client.get(ctx, "/geocode/json", params)
	if err != nil {
		return domain.ResolvedLocation{}, fmt.Errorf("%w: resolve %q: %w", domain.ErrGeocoding, address, err)
	}

	var decoded geocodeResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return domain.ResolvedLocation{}, fmt.Errorf("%w: resolve %q: decode response: %w", domain.ErrGeocoding, address, err)
	}

	if decoded.Status != statusOK || len(decoded.Results) == 0 {
		return domain.ResolvedLocation{}, fmt.Errorf("%w: no match for %q (provider status %q)",
			domain.ErrGeocoding, address, decoded.Status)
	}

	first := decoded.Results[0]
	coord, err := domain.NewCoordinates(first.Geometry.Location.Lat, first.Geometry.Location.Lng)
	if err != nil {
		return domain.ResolvedLocation{}, fmt.Errorf("%w: resolve %q: %w", domain.ErrGeocoding, address, err)
	}

	name := first.FormattedAddress
	if name == "" {
		name = address
	}

	return domain.ResolvedLocation{DisplayName: name, Coord: coord}, nil
}

var _ ports.Geocoder = (*Geocoder)(nil)
