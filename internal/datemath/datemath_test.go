package datemath

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"2025-09-15", "2025-09-15", true},
		{"2025-09", "2025-09-01", true},
		{"2025", "2025-01-01", true},
		{" 2025-01-05 ", "2025-01-05", true},
		{"2025-02-30", "2025-03-02", true},
		{"2025-13-01", "2026-01-01", true},
		{"", "", false},
		{"2025-aa-01", "", false},
		{"2025-09-15T10:00", "", false},
		{"2025-01-01-01", "", false},
		{"-01-01", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := Parse(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, Format(got))
			if ok {
				assert.Equal(t, time.UTC, got.Location())
				assert.Zero(t, got.Hour())
			}
		})
	}
}

func TestParseStrict(t *testing.T) {
	_, err := ParseStrict("2024-02-29")
	require.NoError(t, err)

	for _, bad := range []string{"2025-02-29", "2025-9-1", "2025-09", ""} {
		_, err := ParseStrict(bad)
		assert.ErrorIs(t, err, ErrInvalidDate, bad)
	}
}

func TestAddDays(t *testing.T) {
	tests := []struct {
		name string
		date string
		n    int
		want string
	}{
		{"leap year", "2024-02-28", 1, "2024-02-29"},
		{"leap day rolls to march", "2024-02-29", 1, "2024-03-01"},
		{"non-leap year", "2025-02-28", 1, "2025-03-01"},
		{"year 2000 is leap", "2000-02-28", 1, "2000-02-29"},
		{"year 1900 is not leap", "1900-02-28", 1, "1900-03-01"},
		{"year 2100 is not leap", "2100-02-28", 1, "2100-03-01"},
		{"year 2400 is leap", "2400-02-28", 1, "2400-02-29"},
		{"year rollover", "2025-12-31", 1, "2026-01-01"},
		{"month rollover", "2025-04-30", 1, "2025-05-01"},
		{"backwards over year", "2026-01-01", -1, "2025-12-31"},
		{"backwards into leap day", "2024-03-01", -1, "2024-02-29"},
		{"zero", "2025-06-15", 0, "2025-06-15"},
		{"whole leap year", "2024-01-01", 366, "2025-01-01"},
		{"invalid input", "nope", 3, ""},
		{"empty input", "", 3, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AddDays(tt.date, tt.n))
		})
	}
}

func TestAddDaysRoundTrip(t *testing.T) {
	start := "1999-12-25"
	for n := -800; n <= 800; n += 7 {
		d := AddDays(start, n)
		parsed, ok := Parse(d)
		require.True(t, ok, d)
		assert.Equal(t, d, Format(parsed))
	}
}

func TestNightsBetween(t *testing.T) {
	for _, start := range []string{"2024-02-27", "2025-03-29", "2025-10-25", "2025-12-30"} {
		for n := -5; n <= 40; n++ {
			want := n
			if n < 0 {
				want = 0
			}
			assert.Equal(t, want, NightsBetween(start, AddDays(start, n)), "%s %+d", start, n)
		}
	}

	assert.Equal(t, 0, NightsBetween("", "2025-01-02"))
	assert.Equal(t, 0, NightsBetween("2025-01-02", ""))
	assert.Equal(t, 0, NightsBetween("garbage", "2025-01-02"))
	assert.Equal(t, 366, NightsBetween("2024-01-01", "2025-01-01"))
}

func TestNightsBetweenLongSpans(t *testing.T) {
	for _, n := range []int{106751, 106752, 200000, 1000000} {
		end := AddDays("1700-01-01", n)
		assert.Equal(t, n, NightsBetween("1700-01-01", end), "+%d", n)

		got, err := StayNights("1700-01-01", end)
		require.NoError(t, err)
		assert.Equal(t, n, got, "+%d", n)
	}
	assert.Equal(t, "2247-08-02", AddDays("1700-01-01", 200000))
}

func TestStayNights(t *testing.T) {
	n, err := StayNights("2025-01-30", "2025-02-02")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	_, err = StayNights("2025-02-02", "2025-02-02")
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = StayNights("2025-02-02", "2025-02-31")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestComparisons(t *testing.T) {
	assert.Equal(t, -1, Compare("2025-01-09", "2025-01-10"))
	assert.Equal(t, 0, Compare("2025-01-10", "2025-01-10"))
	assert.Equal(t, 1, Compare("2025-02-01", "2025-01-31"))

	assert.True(t, IsBefore("2024-12-31", "2025-01-01"))
	assert.False(t, IsBefore("2025-01-01", "2025-01-01"))
	assert.False(t, IsBefore("", "2025-01-01"))
	assert.True(t, IsAfter("2025-01-02", "2025-01-01"))
	assert.False(t, IsAfter("2025-01-02", ""))
	assert.True(t, IsSameDay("2025-01-02", "2025-01-02"))
	assert.False(t, IsSameDay("", ""))
}

func TestRelativeDays(t *testing.T) {
	ref := "2025-12-31"

	assert.True(t, IsToday("2025-12-31", ref))
	assert.False(t, IsToday("2026-01-01", ref))
	assert.True(t, IsTomorrow("2026-01-01", ref))
	assert.False(t, IsTomorrow("2025-12-31", ref))
	assert.False(t, IsTomorrow("", ""))
	assert.True(t, IsFuture("2026-01-01", ref))
	assert.False(t, IsFuture("2025-12-31", ref))
	assert.False(t, IsFuture("2025-12-30", ref))
}

func TestIsValidTime(t *testing.T) {
	assert.True(t, IsValidTime("00:00"))
	assert.True(t, IsValidTime("23:59"))
	assert.False(t, IsValidTime("24:00"))
	assert.False(t, IsValidTime("9:30"))
	assert.False(t, IsValidTime(""))
}
