package datemath

import "time"

// Field keys used in StayValidation.Errors.
const (
	FieldCheckInDate  = "check_in_date"
	FieldCheckOutDate = "check_out_date"
	FieldCheckInTime  = "check_in_time"
	FieldCheckOutTime = "check_out_time"
)

type StayInput struct {
	CheckInDate       string
	CheckOutDate      string
	CheckInTime       string // optional "HH:mm"
	CheckOutTime      string // optional "HH:mm"
	Timezone          string
	SkipPastDateCheck bool
}

// StayValidation is a user-facing result, never a system fault.
type StayValidation struct {
	OK     bool              `json:"ok"`
	Errors map[string]string `json:"errors"`
}

func ValidateStay(in StayInput) StayValidation {
	return ValidateStayAt(in, time.Now())
}

// ValidateStayAt checks a stay against the business rules with "today"
// derived from now in the stay's timezone.
//
// A same-day stay is accepted only when both times are given and check-out
// is strictly later than check-in.
func ValidateStayAt(in StayInput, now time.Time) StayValidation {
	errs := make(map[string]string)

	if in.CheckInDate == "" {
		errs[FieldCheckInDate] = "Check-in date is required"
	}
	if in.CheckOutDate == "" {
		errs[FieldCheckOutDate] = "Check-out date is required"
	}
	if len(errs) > 0 {
		return StayValidation{OK: false, Errors: errs}
	}

	checkIn := Canonical(in.CheckInDate)
	checkOut := Canonical(in.CheckOutDate)
	if checkIn == "" {
		errs[FieldCheckInDate] = "Check-in date is invalid"
	}
	if checkOut == "" {
		errs[FieldCheckOutDate] = "Check-out date is invalid"
	}
	if len(errs) > 0 {
		return StayValidation{OK: false, Errors: errs}
	}

	if !in.SkipPastDateCheck && IsBefore(checkIn, TodayAt(in.Timezone, now)) {
		errs[FieldCheckInDate] = "Check-in date cannot be in the past"
	}

	if in.CheckInTime != "" && !IsValidTime(in.CheckInTime) {
		errs[FieldCheckInTime] = "Check-in time must be HH:mm"
	}
	if in.CheckOutTime != "" && !IsValidTime(in.CheckOutTime) {
		errs[FieldCheckOutTime] = "Check-out time must be HH:mm"
	}

	hasTimes := in.CheckInTime != "" && in.CheckOutTime != ""
	switch {
	case IsBefore(checkOut, checkIn):
		errs[FieldCheckOutDate] = "Check-out date must be after check-in date"
	case IsSameDay(checkOut, checkIn) && !hasTimes:
		errs[FieldCheckOutDate] = "Check-out date must be after check-in date"
	case IsSameDay(checkOut, checkIn) && in.CheckOutTime <= in.CheckInTime:
		errs[FieldCheckOutTime] = "Check-out time must be after check-in time"
	}

	return StayValidation{OK: len(errs) == 0, Errors: errs}
}
