package ports

import (
	"context"

	"trip-planner-service/internal/domain"
)

// RouteProvider retrieves driving routes between two coordinates for a given
// departure. The result stays opaque; this system hands it to the caller
// unmodified.
type RouteProvider interface {
	Routes(ctx context.Context, query domain.RouteQuery) (domain.RouteResult, error)
}
