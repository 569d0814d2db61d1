// Package datemath implements calendar arithmetic over "YYYY-MM-DD" strings.
//
// Functions in this package never panic and never return errors: malformed
// input degrades to "", 0 or false so interactive callers can feed half-typed
// form values straight in. Callers that need strict semantics use ParseStrict
// and StayNights instead.
package datemath

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Layout is the canonical CalendarDate layout.
const Layout = "2006-01-02"

const secondsPerDay = 24 * 60 * 60

var (
	ErrInvalidDate  = errors.New("invalid calendar date (expected YYYY-MM-DD)")
	ErrInvalidRange = errors.New("check-out date must be after check-in date")
)

// Parse converts a CalendarDate into midnight UTC of that day.
// Missing month or day components default to 1 ("2025-09" is 2025-09-01).
// Out-of-range components overflow like plain calendar arithmetic, so
// "2025-02-30" yields 2025-03-02.
func Parse(ymd string) (time.Time, bool) {
	ymd = strings.TrimSpace(ymd)
	if ymd == "" {
		return time.Time{}, false
	}

	parts := strings.Split(ymd, "-")
	if len(parts) > 3 {
		return time.Time{}, false
	}

	vals := [3]int{0, 1, 1}
	for i, p := range parts {
		if !isDigits(p) {
			return time.Time{}, false
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return time.Time{}, false
		}
		vals[i] = n
	}

	return time.Date(vals[0], time.Month(vals[1]), vals[2], 0, 0, 0, 0, time.UTC), true
}

// ParseStrict accepts only a real, canonical CalendarDate.
func ParseStrict(ymd string) (time.Time, error) {
	t, err := time.Parse(Layout, strings.TrimSpace(ymd))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, ymd)
	}
	return t, nil
}

// Format renders the calendar day of t (in t's own location).
func Format(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	y, m, d := t.Date()
	return fmt.Sprintf("%04d-%02d-%02d", y, int(m), d)
}

// Canonical re-renders a possibly partial date in canonical form, or "".
func Canonical(ymd string) string {
	t, ok := Parse(ymd)
	if !ok {
		return ""
	}
	return Format(t)
}

func AddDays(ymd string, n int) string {
	t, ok := Parse(ymd)
	if !ok {
		return ""
	}
	return Format(t.AddDate(0, 0, n))
}

func Compare(a, b string) int {
	return strings.Compare(a, b)
}

func IsBefore(a, b string) bool {
	return a != "" && b != "" && a < b
}

func IsAfter(a, b string) bool {
	return a != "" && b != "" && a > b
}

func IsSameDay(a, b string) bool {
	return a != "" && b != "" && a == b
}

// NightsBetween returns the number of whole nights between two dates.
// Missing, malformed or reversed pairs yield 0.
func NightsBetween(checkIn, checkOut string) int {
	in, ok := Parse(checkIn)
	if !ok {
		return 0
	}
	out, ok := Parse(checkOut)
	if !ok {
		return 0
	}

	nights := daysBetween(in, out)
	if nights < 0 {
		return 0
	}
	return nights
}

// StayNights is the strict counterpart of NightsBetween.
func StayNights(checkIn, checkOut string) (int, error) {
	in, err := ParseStrict(checkIn)
	if err != nil {
		return 0, err
	}
	out, err := ParseStrict(checkOut)
	if err != nil {
		return 0, err
	}
	if !out.After(in) {
		return 0, ErrInvalidRange
	}
	return daysBetween(in, out), nil
}

// daysBetween counts calendar days between two UTC midnights. Seconds are
// used instead of time.Duration, which saturates after about 292 years.
func daysBetween(in, out time.Time) int {
	return int((out.Unix() - in.Unix()) / secondsPerDay)
}

func IsToday(date, referenceToday string) bool {
	return IsSameDay(date, referenceToday)
}

func IsTomorrow(date, referenceToday string) bool {
	return date != "" && date == AddDays(referenceToday, 1)
}

func IsFuture(date, referenceToday string) bool {
	return IsAfter(date, referenceToday)
}

// IsValidTime reports whether s is a zero-padded 24h "HH:mm" value.
func IsValidTime(s string) bool {
	if len(s) != 5 {
		return false
	}
	_, err := time.Parse("15:04", s)
	return err == nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
