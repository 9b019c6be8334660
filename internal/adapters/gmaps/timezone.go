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

// TimeZones resolves IANA zone identifiers through the Time Zone API
// (/timezone/json). The provider keys its answer on both the coordinate and
// a reference timestamp, because zone boundaries changed at real dates.
type TimeZones struct {
	client *Client
	apiKey string
	log    *zap.Logger
}

func NewTimeZones(client *Client, apiKey string, log *zap.Logger) (*TimeZones, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("%w: time zone api key is empty", domain.ErrConfiguration)
	}
	return &TimeZones{client: client, apiKey: apiKey, log: log}, nil
}

type timeZoneResponse struct {
	Status     string `json:"status"`
	TimeZoneID string `json:"timeZoneId"`
}

func (t *TimeZones) ZoneID(ctx context.Context, coord domain.Coordinates, referenceEpoch int64) (_ string, err error) {
	defer obs.Time(ctx, t.log, "gmaps.timezone")(&err)

	params := url.Values{}
	params.Set("location", coord.PairString())
	params.Set("timestamp", strconv.FormatInt(referenceEpoch, 10))
	params.Set("key", t.apiKey)

	body, err := t.client.get(ctx, "/timezone/json", params)
	if err != nil {
		return "", fmt.Errorf("%w: zone for %s: %w", domain.ErrTimeService, coord.PairString(), err)
	}

	var decoded timeZoneResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return "", fmt.Errorf("%w: zone for %s: decode response: %w", domain.ErrTimeService, coord.PairString(), err)
	}

	// ZERO_RESULTS covers coordinates with no zone, like open ocean.
	if decoded.Status != statusOK || decoded.TimeZoneID == "" {
		return "", fmt.Errorf("%w: no zone for %s (provider status %q)",
			domain.ErrTimeService, coord.PairString(), decoded.Status)
	}

	return decoded.TimeZoneID, nil
}

var _ ports.TimeZoneProvider = (*TimeZones)(nil)
