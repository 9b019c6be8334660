package domain

import "encoding/json"

// RouteQuery is built fresh per routing call and never persisted.
type RouteQuery struct {
	Origin      Coordinates
	Destination Coordinates

	// Departure is the provider-facing departure parameter: the "now"
	// sentinel, or epoch seconds rendered as decimal digits.
	Departure string

	Alternatives bool
}

// RouteResult carries the directions response through unmodified. Only the
// provider status and the number of alternatives are lifted out to classify
// failure; the inner route structure is the provider's business.
type RouteResult struct {
	Status     string
	RouteCount int
	Raw        json.RawMessage
}

// Forecast is an opaque weather forecast for one location.
type Forecast struct {
	Coord Coordinates
	Raw   json.RawMessage
}

// TripPlan is the complete outcome of one planning run. It is either fully
// populated or not produced at all; there is no partial plan on failure.
type TripPlan struct {
	Origin      ResolvedLocation
	Destination ResolvedLocation
	Departure   string
	Route       RouteResult

	// Forecasts are attached only when requested and configured.
	OriginForecast      *Forecast
	DestinationForecast *Forecast
}
