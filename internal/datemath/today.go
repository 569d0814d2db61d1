package datemath

import (
	"time"
	_ "time/tzdata" // hotel zones must resolve even on hosts without zoneinfo
)

// DefaultTimezone is the hotel's operating timezone.
const DefaultTimezone = "Africa/Ndjamena"

// Clock abstracts the wall clock so "today" can be pinned in tests.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always reports the same instant.
type FixedClock time.Time

func (c FixedClock) Now() time.Time { return time.Time(c) }

// Location resolves an IANA zone name. Empty or unknown names fall back to
// DefaultTimezone, then UTC.
func Location(tz string) *time.Location {
	if tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}
	if loc, err := time.LoadLocation(DefaultTimezone); err == nil {
		return loc
	}
	return time.UTC
}

// Today returns the current calendar day as observed in tz.
func Today(tz string) string {
	return TodayAt(tz, time.Now())
}

// TodayAt returns the calendar day of instant now as observed in tz. The
// host's local zone plays no part.
func TodayAt(tz string, now time.Time) string {
	return Format(now.In(Location(tz)))
}
