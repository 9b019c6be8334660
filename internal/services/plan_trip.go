package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/platform/obs"
	"trip-planner-service/internal/ports"
)

// DepartureScheduler turns a local departure at the origin into the
// provider-facing departure parameter.
type DepartureScheduler interface {
	DepartureParam(ctx context.Context, dep domain.Departure, origin domain.Coordinates) (string, error)
}

// PlanTripRequest carries one trip-planning invocation.
type PlanTripRequest struct {
	OriginAddress      string
	DestinationAddress string
	Departure          domain.Departure
	Alternatives       bool
	WithForecast       bool
}

// Planner composes the full address -> coordinates -> departure -> route
// pipeline. It holds no state across invocations.
type Planner struct {
	geocoder  ports.Geocoder
	scheduler DepartureScheduler
	routes    ports.RouteProvider
	forecasts ports.ForecastProvider // nil unless weather is configured
	log       *zap.Logger
}

func NewPlanner(
	geocoder ports.Geocoder,
	scheduler DepartureScheduler,
	routes ports.RouteProvider,
	forecasts ports.ForecastProvider,
	log *zap.Logger,
) *Planner {
	return &Planner{
		geocoder:  geocoder,
		scheduler: scheduler,
		routes:    routes,
		forecasts: forecasts,
		log:       log,
	}
}

// Plan resolves both addresses, schedules the departure from the origin's
// zone, and queries the route. The two geocode lookups have no ordering
// dependency and run concurrently; everything downstream is sequential. The
// first error propagates verbatim and no partial plan is returned.
func (p *Planner) Plan(ctx context.Context, req PlanTripRequest) (_ domain.TripPlan, err error) {
	defer obs.Time(ctx, p.log, "planner.plan")(&err)

	var origin, destination domain.ResolvedLocation

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		origin, err = p.geocoder.Resolve(gctx, req.OriginAddress)
		return err
	})
	g.Go(func() error {
		var err error
		destination, err = p.geocoder.Resolve(gctx, req.DestinationAddress)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.TripPlan{}, err
	}

	p.log.Info("locations resolved",
		zap.String("req_id", obs.RequestID(ctx)),
		zap.String("origin", origin.DisplayName),
		zap.String("destination", destination.DisplayName),
	)

	departure, err := p.scheduler.DepartureParam(ctx, req.Departure, origin.Coord)
	if err != nil {
		return domain.TripPlan{}, err
	}

	route, err := p.routes.Routes(ctx, domain.RouteQuery{
		Origin:       origin.Coord,
		Destination:  destination.Coord,
		Departure:    departure,
		Alternatives: req.Alternatives,
	})
	if err != nil {
		return domain.TripPlan{}, err
	}

	plan := domain.TripPlan{
		Origin:      origin,
		Destination: destination,
		Departure:   departure,
		Route:       route,
	}

	if req.WithForecast {
		if p.forecasts == nil {
			return domain.TripPlan{}, fmt.Errorf("%w: no forecast provider configured", domain.ErrConfiguration)
		}

		var originForecast, destinationForecast domain.Forecast

		fg, fctx := errgroup.WithContext(ctx)
		fg.Go(func() error {
			var err error
			originForecast, err = p.forecasts.Forecast(fctx, origin.Coord)
			return err
		})
		fg.Go(func() error {
			var err error
			destinationForecast, err = p.forecasts.Forecast(fctx, destination.Coord)
			return err
		})
		if err := fg.Wait(); err != nil {
			return domain.TripPlan{}, err
		}

		plan.OriginForecast = &originForecast
		plan.DestinationForecast = &destinationForecast
	}

	return plan, nil
}
