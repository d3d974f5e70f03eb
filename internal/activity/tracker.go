package activity

import "github.com/ramanasai/caltrack/internal/catalog"

// Totals is the derived calorie balance.
type Totals struct {
	Consumed float64 `json:"consumed"`
	Burned   float64 `json:"burned"`
	Net      float64 `json:"net"`
}

// Summarize recomputes the totals from scratch. Activities whose category is
// not in cat count on neither side.
func Summarize(activities []Activity, cat *catalog.Catalog) Totals {
	var t Totals
	for _, a := range activities {
		c, ok := cat.Find(a.Category)
		if !ok {
			continue
		}
		switch {
		case c.Consumes():
			t.Consumed += a.Calories
		case c.Expends():
			t.Burned += a.Calories
		}
	}
	t.Net = t.Consumed - t.Burned
	return t
}
