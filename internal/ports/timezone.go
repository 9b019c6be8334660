package ports

import (
	"context"

	"trip-planner-service/internal/domain"
)

// TimeZoneProvider reports the IANA zone identifier in effect at a
// coordinate. The reference epoch matters: zone boundaries have moved at
// real-world dates, so providers key the rule set on a point in time, not
// just a location.
type TimeZoneProvider interface {
	ZoneID(ctx context.Context, coord domain.Coordinates, referenceEpoch int64) (string, error)
}
