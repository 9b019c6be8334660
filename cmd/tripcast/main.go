package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"trip-planner-service/internal/adapters/gmaps"
	"trip-planner-service/internal/adapters/weather"
	"trip-planner-service/internal/config"
	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/platform/obs"
	"trip-planner-service/internal/ports"
	"trip-planner-service/internal/schedule"
	"trip-planner-service/internal/services"
)

// main is the CLI composition root. It parses flags, loads credentials, and
// wires concrete adapters behind ports, then runs one planning pass.
func main() {
	var (
		originFlag       = flag.String("o", "", "origin street address (required)")
		destinationFlag  = flag.String("d", "", "destination street address (required)")
		departureFlag    = flag.String("t", "now", "departure date-time as YYYY-MM-DDThh:mm (24-hour, local to the origin)")
		alternativesFlag = flag.Bool("alternatives", true, "request alternative routes")
		forecastFlag     = flag.Bool("forecast", false, "include a weather forecast for both endpoints")
		debugFlag        = flag.Bool("debug", false, "verbose logging")
	)
	flag.Parse()

	log := newLogger(*debugFlag)
	defer log.Sync()

	err := run(log, planInput{
		origin:        *originFlag,
		destination:   *destinationFlag,
		departureText: *departureFlag,
		alternatives:  *alternativesFlag,
		withForecast:  *forecastFlag,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newLogger(debug bool) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	// Logs go to stderr so stdout stays clean JSON for piping.
	cfg.OutputPaths = []string{"stderr"}
	if !debug {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	return zap.Must(cfg.Build())
}

type planInput struct {
	origin        string
	destination   string
	departureText string
	alternatives  bool
	withForecast  bool
}

func run(log *zap.Logger, in planInput) error {
	if strings.TrimSpace(in.origin) == "" || strings.TrimSpace(in.destination) == "" {
		flag.Usage()
		return errors.New("both -o origin and -d destination are required")
	}

	departure, err := domain.ParseDeparture(in.departureText)
	if err != nil {
		return err
	}

	if err := godotenv.Load(); err != nil {
		log.Debug("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if in.withForecast {
		if err := cfg.RequireWeather(); err != nil {
			return err
		}
	}

	client := gmaps.NewClient()

	geocoder, err := gmaps.NewGeocoder(client, cfg.GeocodingKey, log)
	if err != nil {
		return err
	}
	zones, err := gmaps.NewTimeZones(client, cfg.TimeZoneKey, log)
	if err != nil {
		return err
	}
	directions, err := gmaps.NewDirections(client, cfg.RoutingKey, log)
	if err != nil {
		return err
	}

	var forecasts ports.ForecastProvider
	if in.withForecast {
		w, err := weather.New(cfg.WeatherKey, log)
		if err != nil {
			return err
		}
		forecasts = w
	}

	planner := services.NewPlanner(geocoder, schedule.New(zones, log), directions, forecasts, log)

	ctx := obs.WithRequestID(context.Background())

	plan, err := planner.Plan(ctx, services.PlanTripRequest{
		OriginAddress:      in.origin,
		DestinationAddress: in.destination,
		Departure:          departure,
		Alternatives:       in.alternatives,
		WithForecast:       in.withForecast,
	})
	if err != nil {
		return err
	}

	// Raw provider JSON on stdout; either a complete result or an error,
	// never a hybrid.
	fmt.Println(string(plan.Route.Raw))
	if plan.OriginForecast != nil {
		fmt.Println(string(plan.OriginForecast.Raw))
	}
	if plan.DestinationForecast != nil {
		fmt.Println(string(plan.DestinationForecast.Raw))
	}

	return nil
}
