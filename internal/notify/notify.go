package notify

import (
	"fmt"

	"github.com/gen2brain/beeep"

	"github.com/ramanasai/caltrack/internal/activity"
)

func Info(title, message string) error {
	return beeep.Notify(title, message, "")
}

// FormatDailyPrompt builds the evening reminder from what has been logged so far.
func FormatDailyPrompt(logged int, totals activity.Totals) (string, string) {
	title := "Calorie log reminder"
	if logged == 0 {
		return title, "Nothing logged yet. Add today's meals and exercise?"
	}
	noun := "activities"
	if logged == 1 {
		noun = "activity"
	}
	msg := fmt.Sprintf("%d %s logged, net %s kcal (%s in, %s out). Anything missing?",
		logged, noun,
		formatKcal(totals.Net), formatKcal(totals.Consumed), formatKcal(totals.Burned))
	return title, msg
}

func formatKcal(v float64) string {
	return fmt.Sprintf("%.0f", v)
}
