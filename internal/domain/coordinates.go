package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Coordinates is an immutable geographic position with named fields.
// Providers disagree on ordering (geocoders speak lat,lon; some routers
// lon,lat), so a bare two-element pair is never passed around.
type Coordinates struct {
	Lat float64
	Lon float64
}

// NewCoordinates validates the ranges a geocoder is allowed to return.
func NewCoordinates(lat, lon float64) (Coordinates, error) {
	if lat < -90 || lat > 90 {
		return Coordinates{}, fmt.Errorf("latitude %v out of range [-90, 90]", lat)
	}
	if lon < -180 || lon > 180 {
		return Coordinates{}, fmt.Errorf("longitude %v out of range [-180, 180]", lon)
	}
	return Coordinates{Lat: lat, Lon: lon}, nil
}

// PairString renders "lat,lon" in the shortest exact decimal form, so
// parsing the string back yields the original float values unchanged.
func (c Coordinates) PairString() string {
	return strconv.FormatFloat(c.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(c.Lon, 'f', -1, 64)
}

// ParsePair inverts PairString.
func ParsePair(s string) (Coordinates, error) {
	before, after, ok := strings.Cut(s, ",")
	if !ok {
		return Coordinates{}, fmt.Errorf(`coordinate pair %q: want "lat,lon"`, s)
	}

	lat, err := strconv.ParseFloat(before, 64)
	if err != nil {
		return Coordinates{}, fmt.Errorf("coordinate pair %q: parse latitude: %w", s, err)
	}

	lon, err := strconv.ParseFloat(after, 64)
	if err != nil {
		return Coordinates{}, fmt.Errorf("coordinate pair %q: parse longitude: %w", s, err)
	}

	return NewCoordinates(lat, lon)
}

// ResolvedLocation is the outcome of geocoding one address.
// Created per resolution call, never cached.
type ResolvedLocation struct {
	DisplayName string
	Coord       Coordinates
}
