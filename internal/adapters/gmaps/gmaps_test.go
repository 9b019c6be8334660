package gmaps_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"trip-planner-service/internal/adapters/gmaps"
	"trip-planner-service/internal/domain"
)

func newServer(t *testing.T, handler http.Handler) *gmaps.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return gmaps.NewClient(gmaps.WithBaseURL(srv.URL))
}

const geocodeBody = `{
	"status": "OK",
	"results": [{
		"formatted_address": "1600 Amphitheatre Pkwy, Mountain View, CA 94043, USA",
		"geometry": {"location": {"lat": 37.4223878, "lng": -122.0841877}}
	}]
}`

func TestGeocoder_Resolve(t *testing.T) {
	var gotQuery map[string]string

	client := newServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/geocode/json", r.URL.Path)
		gotQuery = map[string]string{
			"address": r.URL.Query().Get("address"),
			"key":     r.URL.Query().Get("key"),
		}
		w.Write([]byte(geocodeBody))
	}))

	g, err := gmaps.NewGeocoder(client, "geo-key", zap.NewNop())
	require.NoError(t, err)

	loc, err := g.Resolve(context.Background(), "  1600 Amphitheatre   Parkway, Mountain View, CA ")
	require.NoError(t, err)

	assert.Equal(t, "1600 Amphitheatre Parkway, Mountain View, CA", gotQuery["address"])
	assert.Equal(t, "geo-key", gotQuery["key"])
	assert.Equal(t, "1600 Amphitheatre Pkwy, Mountain View, CA 94043, USA", loc.DisplayName)
	assert.Equal(t, 37.4223878, loc.Coord.Lat)
	assert.Equal(t, -122.0841877, loc.Coord.Lon)
}

func TestGeocoder_NoMatch(t *testing.T) {
	client := newServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "ZERO_RESULTS", "results": []}`))
	}))

	g, err := gmaps.NewGeocoder(client, "geo-key", zap.NewNop())
	require.NoError(t, err)

	_, err = g.Resolve(context.Background(), "nowhere in particular")
	assert.ErrorIs(t, err, domain.ErrGeocoding)
	assert.Contains(t, err.Error(), "nowhere in particular")
}

func TestGeocoder_ProviderError(t *testing.T) {
	client := newServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "backend down", http.StatusInternalServerError)
	}))

	g, err := gmaps.NewGeocoder(client, "geo-key", zap.NewNop())
	require.NoError(t, err)

	_, err = g.Resolve(context.Background(), "1 Infinite Loop")
	assert.ErrorIs(t, err, domain.ErrGeocoding)
}

func TestGeocoder_OutOfRangeCoordinate(t *testing.T) {
	client := newServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"OK","results":[{"geometry":{"location":{"lat":137.0,"lng":0}}}]}`))
	}))

	g, err := gmaps.NewGeocoder(client, "geo-key", zap.NewNop())
	require.NoError(t, err)

	_, err = g.Resolve(context.Background(), "somewhere")
	assert.ErrorIs(t, err, domain.ErrGeocoding)
}

func TestGeocoder_EmptyKeyRejected(t *testing.T) {
	_, err := gmaps.NewGeocoder(gmaps.NewClient(), "  ", zap.NewNop())
	assert.ErrorIs(t, err, domain.ErrConfiguration)
}

func TestTimeZones_ZoneID(t *testing.T) {
	var gotLocation, gotTimestamp string

	client := newServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/timezone/json", r.URL.Path)
		gotLocation = r.URL.Query().Get("location")
		gotTimestamp = r.URL.Query().Get("timestamp")
		w.Write([]byte(`{"status": "OK", "timeZoneId": "America/New_York"}`))
	}))

	tz, err := gmaps.NewTimeZones(client, "tz-key", zap.NewNop())
	require.NoError(t, err)

	coord, err := domain.NewCoordinates(40.712776, -74.005974)
	require.NoError(t, err)

	zone, err := tz.ZoneID(context.Background(), coord, 1718409600)
	require.NoError(t, err)

	assert.Equal(t, "America/New_York", zone)
	assert.Equal(t, "40.712776,-74.005974", gotLocation)
	assert.Equal(t, "1718409600", gotTimestamp)
}

func TestTimeZones_NoZone(t *testing.T) {
	// Open ocean: the provider answers ZERO_RESULTS with no zone id.
	client := newServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "ZERO_RESULTS"}`))
	}))

	tz, err := gmaps.NewTimeZones(client, "tz-key", zap.NewNop())
	require.NoError(t, err)

	coord, err := domain.NewCoordinates(0, -30)
	require.NoError(t, err)

	_, err = tz.ZoneID(context.Background(), coord, 1718409600)
	assert.ErrorIs(t, err, domain.ErrTimeService)
}

const directionsBody = `{
	"status": "OK",
	"routes": [
		{"summary": "US-101 S", "legs": []},
		{"summary": "I-280 S", "legs": []}
	]
}`

func TestDirections_Routes(t *testing.T) {
	var gotQuery map[string]string

	client := newServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/directions/json", r.URL.Path)
		gotQuery = map[string]string{
			"origin":         r.URL.Query().Get("origin"),
			"destination":    r.URL.Query().Get("destination"),
			"alternatives":   r.URL.Query().Get("alternatives"),
			"departure_time": r.URL.Query().Get("departure_time"),
			"key":            r.URL.Query().Get("key"),
		}
		w.Write([]byte(directionsBody))
	}))

	d, err := gmaps.NewDirections(client, "route-key", zap.NewNop())
	require.NoError(t, err)

	origin, err := domain.NewCoordinates(37.4223878, -122.0841877)
	require.NoError(t, err)
	destination, err := domain.NewCoordinates(37.33182, -122.03118)
	require.NoError(t, err)

	result, err := d.Routes(context.Background(), domain.RouteQuery{
		Origin:       origin,
		Destination:  destination,
		Departure:    "1718456400",
		Alternatives: true,
	})
	require.NoError(t, err)

	// Coordinates cross the wire in their exact decimal form.
	assert.Equal(t, "37.4223878,-122.0841877", gotQuery["origin"])
	assert.Equal(t, "37.33182,-122.03118", gotQuery["destination"])
	assert.Equal(t, "true", gotQuery["alternatives"])
	assert.Equal(t, "1718456400", gotQuery["departure_time"])
	assert.Equal(t, "route-key", gotQuery["key"])

	assert.Equal(t, "OK", result.Status)
	assert.Equal(t, 2, result.RouteCount)
	// The body passes through unmodified.
	assert.JSONEq(t, directionsBody, string(result.Raw))
}

func TestDirections_NowSentinelOnWire(t *testing.T) {
	var gotDeparture string

	client := newServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotDeparture = r.URL.Query().Get("departure_time")
		w.Write([]byte(`{"status":"OK","routes":[{}]}`))
	}))

	d, err := gmaps.NewDirections(client, "route-key", zap.NewNop())
	require.NoError(t, err)

	_, err = d.Routes(context.Background(), domain.RouteQuery{Departure: domain.DepartureNow})
	require.NoError(t, err)
	assert.Equal(t, "now", gotDeparture)
}

func TestDirections_ProviderStatus(t *testing.T) {
	client := newServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "REQUEST_DENIED", "error_message": "The provided API key is invalid.", "routes": []}`))
	}))

	d, err := gmaps.NewDirections(client, "route-key", zap.NewNop())
	require.NoError(t, err)

	_, err = d.Routes(context.Background(), domain.RouteQuery{Departure: "now"})
	assert.ErrorIs(t, err, domain.ErrRouteProvider)
	assert.Contains(t, err.Error(), "REQUEST_DENIED")
}

func TestDirections_MalformedJSON(t *testing.T) {
	client := newServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>not json</html>`))
	}))

	d, err := gmaps.NewDirections(client, "route-key", zap.NewNop())
	require.NoError(t, err)

	_, err = d.Routes(context.Background(), domain.RouteQuery{Departure: "now"})
	assert.ErrorIs(t, err, domain.ErrRouteProvider)
}
