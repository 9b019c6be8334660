package domain

import (
	"fmt"
	"time"
)

// DepartureNow is the wire sentinel the routing provider interprets itself.
// Scheduling a "now" departure needs no time-zone math and no zone lookup.
const DepartureNow = "now"

const departureLayout = "2006-01-02T15:04"

// Departure is either the "now" sentinel or a naive wall-clock time at the
// origin. It carries no zone; the scheduler attaches one.
type Departure struct {
	now    bool
	year   int
	month  time.Month
	day    int
	hour   int
	minute int
}

// DepartNow returns the sentinel departure.
func DepartNow() Departure { return Departure{now: true} }

// DepartAt returns a naive wall-clock departure.
func DepartAt(year int, month time.Month, day, hour, minute int) Departure {
	return Departure{year: year, month: month, day: day, hour: hour, minute: minute}
}

// ParseDeparture accepts "now" (or empty, which defaults to it) or a local
// date-time in YYYY-MM-DDThh:mm 24-hour form. Partial dates are rejected:
// every component down to the minute is required.
func ParseDeparture(s string) (Departure, error) {
	if s == "" || s == DepartureNow {
		return DepartNow(), nil
	}

	t, err := time.Parse(departureLayout, s)
	if err != nil {
		return Departure{}, fmt.Errorf("%w: %q is not in YYYY-MM-DDThh:mm form", ErrBadDeparture, s)
	}

	return DepartAt(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute()), nil
}

func (d Departure) IsNow() bool { return d.now }

// WallClock returns the naive components. Only meaningful when !IsNow().
func (d Departure) WallClock() (year int, month time.Month, day, hour, minute int) {
	return d.year, d.month, d.day, d.hour, d.minute
}

func (d Departure) String() string {
	if d.now {
		return DepartureNow
	}
	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d", d.year, int(d.month), d.day, d.hour, d.minute)
}
