package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ramanasai/caltrack/internal/config"
)

func reminderConfig(at string, days []string, holidays ...string) config.Config {
	cfg := config.Default()
	cfg.Reminder.Enabled = true
	cfg.Reminder.Time = at
	cfg.Reminder.Workdays = days
	cfg.Reminder.Holidays = holidays
	cfg.Reminder.Timezone = "UTC"
	return cfg
}

func TestNextAtLaterToday(t *testing.T) {
	// Monday
	now := time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)
	got := NextAt(now, reminderConfig("20:00", []string{"Mon", "Tue"}))
	assert.Equal(t, time.Date(2025, 3, 3, 20, 0, 0, 0, time.UTC), got)
}

func TestNextAtRollsPastTimeAndWeekend(t *testing.T) {
	// Friday after the reminder time
	now := time.Date(2025, 3, 7, 21, 0, 0, 0, time.UTC)
	got := NextAt(now, reminderConfig("20:30", []string{"Mon", "Tue", "Wed", "Thu", "Fri"}))
	assert.Equal(t, time.Date(2025, 3, 10, 20, 30, 0, 0, time.UTC), got)
}

func TestNextAtSkipsHolidays(t *testing.T) {
	now := time.Date(2025, 12, 24, 22, 0, 0, 0, time.UTC)
	got := NextAt(now, reminderConfig("20:00", []string{"Mon", "Tue", "Wed", "Thu", "Fri"}, "2025-12-25", "2025-12-26"))
	assert.Equal(t, time.Date(2025, 12, 29, 20, 0, 0, 0, time.UTC), got)
}

func TestNextAtBadTimeFallsBack(t *testing.T) {
	now := time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)
	got := NextAt(now, reminderConfig("soon", []string{"monday"}))
	assert.Equal(t, time.Date(2025, 3, 3, 20, 0, 0, 0, time.UTC), got)
}

func TestNextAtWithoutWorkdays(t *testing.T) {
	got := NextAt(time.Now(), reminderConfig("20:00", nil))
	assert.True(t, got.IsZero())
}

func TestRunConfiguredStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		RunConfigured(ctx, reminderConfig("20:00", []string{"Mon"}), func() {})
		close(done)
	}()
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("RunConfigured did not return after cancel")
	}
}
