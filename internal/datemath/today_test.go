package datemath

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTodayAtUsesHotelZone(t *testing.T) {
	// 23:30 UTC is already the next day in N'Djamena (UTC+1).
	now := time.Date(2025, 3, 10, 23, 30, 0, 0, time.UTC)

	assert.Equal(t, "2025-03-11", TodayAt("Africa/Ndjamena", now))
	assert.Equal(t, "2025-03-10", TodayAt("UTC", now))
	assert.Equal(t, "2025-03-10", TodayAt("America/New_York", now))
}

func TestTodayAtIgnoresInstantZone(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	// 2025-07-01 06:00 in Tokyo is 2025-06-30 22:00 in N'Djamena.
	now := time.Date(2025, 7, 1, 6, 0, 0, 0, tokyo)

	assert.Equal(t, "2025-06-30", TodayAt("Africa/Ndjamena", now))
}

func TestLocationFallback(t *testing.T) {
	assert.Equal(t, DefaultTimezone, Location("").String())
	assert.Equal(t, DefaultTimezone, Location("Mars/Olympus_Mons").String())
	assert.Equal(t, "Europe/Paris", Location("Europe/Paris").String())

	now := time.Date(2025, 3, 10, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, "2025-03-11", TodayAt("", now))
}

func TestClocks(t *testing.T) {
	at := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.True(t, FixedClock(at).Now().Equal(at))
	assert.False(t, SystemClock{}.Now().IsZero())
	assert.Len(t, Today("UTC"), len(Layout))
}
