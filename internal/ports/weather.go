package ports

import (
	"context"

	"trip-planner-service/internal/domain"
)

// ForecastProvider retrieves a weather forecast for one coordinate.
type ForecastProvider interface {
	Forecast(ctx context.Context, coord domain.Coordinates) (domain.Forecast, error)
}
