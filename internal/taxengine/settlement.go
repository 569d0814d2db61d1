package taxengine

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Reservation status constants
const (
	StatusPending    = "PENDING"
	StatusConfirmed  = "CONFIRMED"
	StatusCheckedIn  = "CHECKED_IN"
	StatusCheckedOut = "CHECKED_OUT"
	StatusCancelled  = "CANCELLED"
	StatusNoShow     = "NO_SHOW"
)

// Total source constants
const (
	SourceLive     = "live"
	SourceSnapshot = "snapshot"
)

var knownStatuses = map[string]bool{
	StatusPending:    true,
	StatusConfirmed:  true,
	StatusCheckedIn:  true,
	StatusCheckedOut: true,
	StatusCancelled:  true,
	StatusNoShow:     true,
}

var settledStatuses = map[string]bool{
	StatusCheckedOut: true,
	StatusCancelled:  true,
	StatusNoShow:     true,
}

// NormalizeStatus maps "checked-out", "Checked Out" and friends onto the
// canonical upper-snake constants.
func NormalizeStatus(status string) string {
	s := strings.ToUpper(strings.TrimSpace(status))
	s = strings.NewReplacer("-", "_", " ", "_").Replace(s)
	if s == "CANCELED" {
		s = StatusCancelled
	}
	return s
}

func IsKnownStatus(status string) bool {
	return knownStatuses[NormalizeStatus(status)]
}

// IsSettled reports whether a reservation's total is historical.
func IsSettled(status string) bool {
	return settledStatuses[NormalizeStatus(status)]
}

// Total is the amount a reservation view should show.
type Total struct {
	Amount    decimal.Decimal `json:"amount"`
	Source    string          `json:"source"`
	Breakdown *Breakdown      `json:"breakdown,omitempty"`
}

// ResolveTotal returns the stored total for settled reservations and a live
// recomputation for every other status. live is not called for settled ones.
func ResolveTotal(status string, stored decimal.Decimal, live func() Breakdown) Total {
	if IsSettled(status) {
		return Total{Amount: stored, Source: SourceSnapshot}
	}
	b := live()
	return Total{Amount: b.GrandTotal, Source: SourceLive, Breakdown: &b}
}
