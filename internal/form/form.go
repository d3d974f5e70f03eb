// Package form keeps the editable draft activity in front of the reducer.
package form

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ramanasai/caltrack/internal/activity"
	"github.com/ramanasai/caltrack/internal/catalog"
)

// ErrInvalidDraft is returned by Submit while the draft fails the gate.
var ErrInvalidDraft = errors.New("activity is not valid")

type Field string

const (
	FieldCategory Field = "category"
	FieldName     Field = "name"
	FieldCalories Field = "calories"
)

// Controller owns a draft that only reaches the committed list through Submit.
type Controller struct {
	cat      *catalog.Catalog
	draft    activity.Activity
	syncedID string
}

func New(cat *catalog.Catalog) *Controller {
	c := &Controller{cat: cat}
	c.Reset()
	return c
}

// Reset replaces the draft with a blank one carrying a fresh id.
func (c *Controller) Reset() {
	c.draft = activity.Activity{
		ID:       activity.NewID(),
		Category: c.cat.Default().ID,
	}
}

// Reload loads the selected activity even when that selection was synced
// before, e.g. after the user abandoned an edit with Reset.
func (c *Controller) Reload(state activity.State) bool {
	c.syncedID = ""
	return c.Sync(state)
}

func (c *Controller) Draft() activity.Activity { return c.draft }

// Editing reports whether the draft is a copy of a committed activity.
func (c *Controller) Editing(state activity.State) bool {
	return activity.Index(state.Activities, c.draft.ID) >= 0
}

// Sync loads a copy of the selected activity when the selection changes to a
// non-empty id. It reports whether the draft was replaced.
func (c *Controller) Sync(state activity.State) bool {
	if state.ActiveID == c.syncedID {
		return false
	}
	c.syncedID = state.ActiveID
	if state.ActiveID == "" {
		return false
	}
	selected, ok := activity.Find(state.Activities, state.ActiveID)
	if !ok {
		return false
	}
	c.draft = selected
	return true
}

// SetField applies raw text to one field. Numeric fields coerce their text;
// text that does not parse becomes 0.
func (c *Controller) SetField(f Field, text string) error {
	switch f {
	case FieldCategory:
		c.draft.Category = int(toNumber(text))
	case FieldCalories:
		c.draft.Calories = toNumber(text)
	case FieldName:
		c.draft.Name = text
	default:
		return fmt.Errorf("unknown field %q", f)
	}
	return nil
}

func (c *Controller) SetCategory(id int) { c.draft.Category = id }

func toNumber(text string) float64 {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0
	}
	n, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}
	return n
}

func (c *Controller) Valid() bool {
	_, known := c.cat.Find(c.draft.Category)
	return known && c.draft.Savable()
}

// Problems explains why the draft is invalid; empty when it is valid.
func (c *Controller) Problems() []string {
	out := c.draft.Problems()
	if _, ok := c.cat.Find(c.draft.Category); !ok {
		out = append(out, fmt.Sprintf("unknown category %d", c.draft.Category))
	}
	return out
}

// Submit returns the save action for the draft and resets to a blank draft,
// for edits and new entries alike. The draft is left untouched on error.
func (c *Controller) Submit() (activity.Action, error) {
	if problems := c.Problems(); len(problems) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDraft, strings.Join(problems, ", "))
	}
	act := activity.SaveActivity{Activity: c.draft}
	act.Activity.Name = strings.TrimSpace(act.Activity.Name)
	c.Reset()
	return act, nil
}

// SubmitLabel is the text of the submit control, e.g. "Save Food".
func (c *Controller) SubmitLabel() string {
	return "Save " + c.cat.Label(c.draft.Category)
}

// FieldText renders a field back to the text an input would show.
func (c *Controller) FieldText(f Field) string {
	switch f {
	case FieldCategory:
		return strconv.Itoa(c.draft.Category)
	case FieldCalories:
		return FormatCalories(c.draft.Calories)
	case FieldName:
		return c.draft.Name
	}
	return ""
}

// FormatCalories drops the fraction for whole numbers.
func FormatCalories(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
