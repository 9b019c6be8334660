package domain

import "errors"

// Every external failure wraps one of these sentinels so callers can branch
// with errors.Is without parsing messages. Nothing retries or recovers
// internally; the first failure surfaces to the caller with the offending
// input in the wrapped message.
var (
	// ErrGeocoding: the geocoder returned no match for an address or the
	// request itself failed.
	ErrGeocoding = errors.New("geocoding failed")

	// ErrTimeService: the time-zone provider could not determine a zone for
	// a coordinate (open ocean, say) or the request failed.
	ErrTimeService = errors.New("time zone lookup failed")

	// ErrAmbiguousLocalTime: the requested wall clock falls in a DST gap
	// (never happens) or overlap (happens twice). Picking a side silently
	// would mis-schedule a real trip, so the caller decides.
	ErrAmbiguousLocalTime = errors.New("ambiguous local time")

	// ErrPastDeparture: the scheduled departure resolves to an instant that
	// has already passed.
	ErrPastDeparture = errors.New("departure is in the past")

	// ErrRouteProvider: the routing provider failed or replied with
	// something other than well-formed route JSON.
	ErrRouteProvider = errors.New("route provider failed")

	// ErrWeatherProvider: the forecast provider failed or replied with
	// malformed JSON.
	ErrWeatherProvider = errors.New("weather provider failed")

	// ErrConfiguration: a required credential is missing. Raised before any
	// network call is made.
	ErrConfiguration = errors.New("configuration error")

	// ErrBadDeparture: the departure text is not "now" and not a complete
	// YYYY-MM-DDThh:mm date-time.
	ErrBadDeparture = errors.New("invalid departure time")
)
