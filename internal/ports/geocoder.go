package ports

import (
	"context"

	"trip-planner-service/internal/domain"
)

// Geocoder resolves a free-text street address to a named coordinate.
// One outbound request per call; implementations do not retry, a provider
// failure surfaces immediately.
type Geocoder interface {
	Resolve(ctx context.Context, address string) (domain.ResolvedLocation, error)
}
