package schedule

import (
	"context"
	"strings"
	"time"

	"github.com/ramanasai/caltrack/internal/config"
)

// NextAt computes the next occurrence of the reminder time that falls on a
// configured workday and is not a holiday. Without any workdays it returns the
// zero time.
func NextAt(now time.Time, cfg config.Config) time.Time {
	loc := cfg.Location()
	now = now.In(loc)

	// parse "HH:MM"
	hour, min := 20, 0
	if t, err := time.ParseInLocation("15:04", strings.TrimSpace(cfg.Reminder.Time), loc); err == nil {
		hour = t.Hour()
		min = t.Minute()
	}
	workdays := map[time.Weekday]bool{}
	for _, d := range cfg.Reminder.Workdays {
		if wd, ok := weekday(d); ok {
			workdays[wd] = true
		}
	}
	if len(workdays) == 0 {
		return time.Time{}
	}
	holidays := map[string]bool{}
	for _, h := range cfg.Reminder.Holidays {
		holidays[strings.TrimSpace(h)] = true
	}

	// candidate today at hh:mm
	cand := time.Date(now.Year(), now.Month(), now.Day(), hour, min, 0, 0, loc)
	if !now.Before(cand) {
		cand = cand.AddDate(0, 0, 1)
	}
	for i := 0; i < 366*2; i++ {
		if workdays[cand.Weekday()] && !holidays[cand.Format("2006-01-02")] {
			return cand
		}
		cand = cand.AddDate(0, 0, 1)
	}
	return time.Time{}
}

func weekday(s string) (time.Weekday, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) < 3 {
		return 0, false
	}
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if strings.ToLower(wd.String()[:3]) == s[:3] {
			return wd, true
		}
	}
	return 0, false
}

// RunConfigured runs f at the configured schedule until ctx is canceled.
// It returns immediately when no reminder can ever fire.
func RunConfigured(ctx context.Context, cfg config.Config, f func()) {
	next := NextAt(time.Now(), cfg)
	if next.IsZero() {
		return
	}
	t := time.NewTimer(time.Until(next))
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			f()
			next = NextAt(time.Now(), cfg)
			if next.IsZero() {
				return
			}
			t.Reset(time.Until(next))
		}
	}
}
