package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ramanasai/caltrack/internal/activity"
)

func TestFormatDailyPrompt(t *testing.T) {
	title, msg := FormatDailyPrompt(0, activity.Totals{})
	assert.Equal(t, "Calorie log reminder", title)
	assert.Contains(t, msg, "Nothing logged yet")

	_, msg = FormatDailyPrompt(1, activity.Totals{Consumed: 500, Net: 500})
	assert.Contains(t, msg, "1 activity logged")

	_, msg = FormatDailyPrompt(3, activity.Totals{Consumed: 1800, Burned: 420.4, Net: 1379.6})
	assert.Equal(t, "3 activities logged, net 1380 kcal (1800 in, 420 out). Anything missing?", msg)
}
