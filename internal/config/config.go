// Package config loads and validates provider credentials from environment
// variables. Keys are opaque strings; only presence is checked, and it is
// checked before any network call happens.
package config

import (
	"fmt"
	"os"
	"strings"

	"trip-planner-service/internal/domain"
)

// Config holds the credentials for every external provider. Components
// receive these through their constructors; nothing reads the environment
// after Load returns.
type Config struct {
	// GeocodingKey authorizes address lookups. Required.
	GeocodingKey string

	// TimeZoneKey authorizes coordinate -> zone lookups. Required.
	TimeZoneKey string

	// RoutingKey authorizes directions queries. Required.
	RoutingKey string

	// WeatherKey authorizes forecast queries. Optional; validated by
	// RequireWeather only when a forecast is actually requested.
	WeatherKey string
}

// Load reads credentials from the environment. Every missing required key is
// reported in a single error so the operator fixes them all at once.
func Load() (Config, error) {
	cfg := Config{
		GeocodingKey: strings.TrimSpace(os.Getenv("GEOCODING_API_KEY")),
		TimeZoneKey:  strings.TrimSpace(os.Getenv("TIMEZONE_API_KEY")),
		RoutingKey:   strings.TrimSpace(os.Getenv("ROUTING_API_KEY")),
		WeatherKey:   strings.TrimSpace(os.Getenv("WEATHER_API_KEY")),
	}

	var missing []string
	if cfg.GeocodingKey == "" {
		missing = append(missing, "GEOCODING_API_KEY")
	}
	if cfg.TimeZoneKey == "" {
		missing = append(missing, "TIMEZONE_API_KEY")
	}
	if cfg.RoutingKey == "" {
		missing = append(missing, "ROUTING_API_KEY")
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: required environment variables not set: %s",
			domain.ErrConfiguration, strings.Join(missing, ", "))
	}

	return cfg, nil
}

// RequireWeather checks the optional forecast credential.
func (c Config) RequireWeather() error {
	if c.WeatherKey == "" {
		return fmt.Errorf("%w: WEATHER_API_KEY is required when a forecast is requested",
			domain.ErrConfiguration)
	}
	return nil
}
