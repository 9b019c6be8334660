// Package schedule converts a naive local departure at the origin into the
// departure parameter the routing provider understands.
package schedule

import (
	"context"
	"fmt"
	"strconv"
	"time"
	_ "time/tzdata" // keep the IANA rule set available on zoneinfo-less hosts

	"go.uber.org/zap"

	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/platform/obs"
	"trip-planner-service/internal/ports"
)

// Scheduler computes the absolute departure instant for a trip. The origin's
// zone is not known until its coordinate resolves, so the zone is looked up
// per call, never configured.
type Scheduler struct {
	zones ports.TimeZoneProvider
	log   *zap.Logger

	// now is swapped in tests for deterministic past-departure checks.
	now func() time.Time
}

func New(zones ports.TimeZoneProvider, log *zap.Logger) *Scheduler {
	return &Scheduler{zones: zones, log: log, now: time.Now}
}

// DepartureParam returns the routing-provider departure parameter: the "now"
// sentinel unchanged, or the departure wall clock localized into the
// origin's zone and rendered as epoch seconds.
//
// The sentinel short-circuits before any zone lookup: the routing provider
// interprets "now" itself, so the extra round trip would buy nothing.
func (s *Scheduler) DepartureParam(ctx context.Context, dep domain.Departure, origin domain.Coordinates) (_ string, err error) {
	if dep.IsNow() {
		return domain.DepartureNow, nil
	}

	defer obs.Time(ctx, s.log, "schedule.departure")(&err)

	current := s.now()

	// The reference instant only picks the zone identifier for the
	// coordinate; localize below applies the zone's own rule set, so a
	// future departure still gets the right DST offset.
	zoneID, err := s.zones.ZoneID(ctx, origin, current.Unix())
	if err != nil {
		return "", err
	}

	loc, err := time.LoadLocation(zoneID)
	if err != nil {
		return "", fmt.Errorf("%w: unknown zone %q for %s: %w",
			domain.ErrTimeService, zoneID, origin.PairString(), err)
	}

	departAt, err := localize(dep, loc)
	if err != nil {
		return "", err
	}

	if departAt.Before(current) {
		return "", fmt.Errorf("%w: %s in %s already passed",
			domain.ErrPastDeparture, dep, zoneID)
	}

	s.log.Info("departure scheduled",
		zap.String("req_id", obs.RequestID(ctx)),
		zap.String("local", dep.String()),
		zap.String("zone", zoneID),
		zap.Int64("epoch", departAt.Unix()),
	)

	return strconv.FormatInt(departAt.Unix(), 10), nil
}

// localize pins a naive wall clock to a zone. Wall clocks that a DST
// transition skips (spring forward) or repeats (fall back) are rejected
// instead of silently resolved: guessing a side would mis-schedule a real
// trip by an hour.
func localize(dep domain.Departure, loc *time.Location) (time.Time, error) {
	year, month, day, hour, minute := dep.WallClock()

	t := time.Date(year, month, day, hour, minute, 0, 0, loc)

	// time.Date normalizes a skipped wall clock to the other side of the
	// gap, so a changed component means the requested time never existed.
	if !sameWall(t, year, month, day, hour, minute) {
		return time.Time{}, fmt.Errorf("%w: %s does not exist in %s (clocks skip over it)",
			domain.ErrAmbiguousLocalTime, dep, loc)
	}

	// A repeated wall clock has a second instant nearby with a different
	// offset but the same clock reading. Probe both sides of the instant;
	// no real transition shifts by more than a few hours.
	_, offset := t.Zone()
	for _, delta := range []time.Duration{-4 * time.Hour, 4 * time.Hour} {
		_, other := t.Add(delta).Zone()
		if other == offset {
			continue
		}
		alt := t.Add(time.Duration(offset-other) * time.Second)
		if sameWall(alt, year, month, day, hour, minute) {
			return time.Time{}, fmt.Errorf("%w: %s occurs twice in %s (clocks repeat it)",
				domain.ErrAmbiguousLocalTime, dep, loc)
		}
	}

	return t, nil
}

func sameWall(t time.Time, year int, month time.Month, day, hour, minute int) bool {
	return t.Year() == year && t.Month() == month && t.Day() == day &&
		t.Hour() == hour && t.Minute() == minute
}
