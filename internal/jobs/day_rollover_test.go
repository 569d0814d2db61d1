package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"frontdesk/internal/datemath"
	"frontdesk/internal/websocket"
	"frontdesk/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeInvalidator struct {
	calls int
	err   error
}

func (f *fakeInvalidator) Invalidate(context.Context) error {
	f.calls++
	return f.err
}

type recordedEvent struct {
	eventType string
	payload   interface{}
}

type fakeNotifier struct {
	events []recordedEvent
}

func (f *fakeNotifier) Notify(eventType string, payload interface{}) {
	f.events = append(f.events, recordedEvent{eventType, payload})
}

func TestDayRolloverRun(t *testing.T) {
	// 23:00 UTC on the 10th is midnight of the 11th in N'Djamena
	now := time.Date(2025, 3, 10, 23, 0, 0, 0, time.UTC)
	rules := &fakeInvalidator{}
	notifier := &fakeNotifier{}

	NewDayRollover(datemath.DefaultTimezone, datemath.FixedClock(now), rules, notifier, logger.Nop{}).Run()

	assert.Equal(t, 1, rules.calls)
	require.Len(t, notifier.events, 1)
	assert.Equal(t, websocket.EventDayChanged, notifier.events[0].eventType)
	assert.Equal(t, DayChanged{Timezone: datemath.DefaultTimezone, Today: "2025-03-11"}, notifier.events[0].payload)
}

func TestDayRolloverNotifiesEvenWhenCacheFails(t *testing.T) {
	rules := &fakeInvalidator{err: errors.New("redis down")}
	notifier := &fakeNotifier{}

	NewDayRollover("UTC", datemath.FixedClock(time.Now()), rules, notifier, logger.Nop{}).Run()

	assert.Len(t, notifier.events, 1)
}

func TestSchedulerRunsAtHotelMidnight(t *testing.T) {
	c := NewScheduler(datemath.DefaultTimezone)
	require.NoError(t, Register(c, NewDayRollover(datemath.DefaultTimezone, nil, &fakeInvalidator{}, &fakeNotifier{}, logger.Nop{})))

	entries := c.Entries()
	require.Len(t, entries, 1)

	// The scheduler hands Next instants already converted to its location
	from := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC).In(datemath.Location(datemath.DefaultTimezone))
	next := entries[0].Schedule.Next(from)
	assert.Equal(t, time.Date(2025, 3, 10, 23, 0, 0, 0, time.UTC), next.UTC())
}
