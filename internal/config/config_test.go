package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trip-planner-service/internal/config"
	"trip-planner-service/internal/domain"
)

func setAll(t *testing.T) {
	t.Setenv("GEOCODING_API_KEY", "geo-key")
	t.Setenv("TIMEZONE_API_KEY", "tz-key")
	t.Setenv("ROUTING_API_KEY", "route-key")
	t.Setenv("WEATHER_API_KEY", "")
}

func TestLoad_AllPresent(t *testing.T) {
	setAll(t)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "geo-key", cfg.GeocodingKey)
	assert.Equal(t, "tz-key", cfg.TimeZoneKey)
	assert.Equal(t, "route-key", cfg.RoutingKey)
	assert.Empty(t, cfg.WeatherKey)
}

func TestLoad_ListsEveryMissingKey(t *testing.T) {
	t.Setenv("GEOCODING_API_KEY", "")
	t.Setenv("TIMEZONE_API_KEY", "")
	t.Setenv("ROUTING_API_KEY", "")
	t.Setenv("WEATHER_API_KEY", "")

	_, err := config.Load()
	require.Error(t, err)

	assert.ErrorIs(t, err, domain.ErrConfiguration)
	// One error, naming all three required keys.
	assert.Contains(t, err.Error(), "GEOCODING_API_KEY")
	assert.Contains(t, err.Error(), "TIMEZONE_API_KEY")
	assert.Contains(t, err.Error(), "ROUTING_API_KEY")
}

func TestLoad_WhitespaceCountsAsMissing(t *testing.T) {
	setAll(t)
	t.Setenv("TIMEZONE_API_KEY", "   ")

	_, err := config.Load()
	assert.ErrorIs(t, err, domain.ErrConfiguration)
	assert.Contains(t, err.Error(), "TIMEZONE_API_KEY")
}

func TestRequireWeather(t *testing.T) {
	setAll(t)

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.ErrorIs(t, cfg.RequireWeather(), domain.ErrConfiguration)

	cfg.WeatherKey = "wx-key"
	assert.NoError(t, cfg.RequireWeather())
}
