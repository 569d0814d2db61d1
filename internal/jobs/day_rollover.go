package jobs

import (
	"context"
	"time"

	"frontdesk/internal/datemath"
	"frontdesk/internal/websocket"
	"frontdesk/pkg/logger"

	"github.com/robfig/cron/v3"
)

// DayRolloverSpec fires at hotel midnight
const DayRolloverSpec = "0 0 * * *"

// RuleInvalidator drops cached tax rules
type RuleInvalidator interface {
	Invalidate(ctx context.Context) error
}

// Notifier pushes an event to connected views
type Notifier interface {
	Notify(eventType string, payload interface{})
}

// DayChanged is the payload of a calendar.day_changed event
type DayChanged struct {
	Timezone string `json:"timezone"`
	Today    string `json:"today"`
}

// DayRollover tells open front-desk views that the hotel date moved on, so
// "past check-in" checks and today/tomorrow badges are recomputed.
type DayRollover struct {
	timezone string
	clock    datemath.Clock
	rules    RuleInvalidator
	notifier Notifier
	logger   logger.Logger
}

func NewDayRollover(timezone string, clock datemath.Clock, rules RuleInvalidator, notifier Notifier, log logger.Logger) *DayRollover {
	if clock == nil {
		clock = datemath.SystemClock{}
	}
	return &DayRollover{timezone: timezone, clock: clock, rules: rules, notifier: notifier, logger: log}
}

// Run is the cron body
func (j *DayRollover) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	today := datemath.TodayAt(j.timezone, j.clock.Now())
	j.logger.Info("hotel day rolled over to %s (%s)", today, j.timezone)

	if err := j.rules.Invalidate(ctx); err != nil {
		j.logger.Error("day rollover: failed to invalidate tax rules: %v", err)
	}
	j.notifier.Notify(websocket.EventDayChanged, DayChanged{Timezone: j.timezone, Today: today})
}

// NewScheduler returns a cron scheduler that evaluates specs in the hotel zone
func NewScheduler(timezone string) *cron.Cron {
	return cron.New(cron.WithLocation(datemath.Location(timezone)))
}

// Register adds the rollover job to c. The caller starts and stops c.
func Register(c *cron.Cron, job *DayRollover) error {
	_, err := c.AddJob(DayRolloverSpec, job)
	return err
}
