package service

import (
	"frontdesk/internal/datemath"
)

type CalendarResponse struct {
	Timezone string `json:"timezone"`
	Today    string `json:"today"`
	Tomorrow string `json:"tomorrow"`
}

// CalendarService answers "what day is it at the hotel"
type CalendarService interface {
	Today() CalendarResponse
	Timezone() string
}

type calendarService struct {
	timezone string
	clock    datemath.Clock
}

func NewCalendarService(timezone string, clock datemath.Clock) CalendarService {
	if timezone == "" {
		timezone = datemath.DefaultTimezone
	}
	if clock == nil {
		clock = datemath.SystemClock{}
	}
	return &calendarService{timezone: timezone, clock: clock}
}

func (s *calendarService) Today() CalendarResponse {
	today := datemath.TodayAt(s.timezone, s.clock.Now())
	return CalendarResponse{
		Timezone: s.timezone,
		Today:    today,
		Tomorrow: datemath.AddDays(today, 1),
	}
}

func (s *calendarService) Timezone() string {
	return s.timezone
}
