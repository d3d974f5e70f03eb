// Package activity defines the logged activity record, the pure reducer over
// the activity list and the derived calorie totals.
package activity

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when a reference matches no activity.
	ErrNotFound = errors.New("activity not found")
	// ErrAmbiguous is returned when an id prefix matches more than one activity.
	ErrAmbiguous = errors.New("activity reference is ambiguous")
)

// Activity is one food or exercise entry. Category is a catalog id, not an owned value.
type Activity struct {
	ID       string  `json:"id"`
	Category int     `json:"category"`
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
}

func NewID() string { return uuid.NewString() }

// Problems lists why the activity cannot be saved: a blank name or calories
// that are not positive. Empty means Savable.
func (a Activity) Problems() []string {
	var out []string
	if strings.TrimSpace(a.Name) == "" {
		out = append(out, "name is empty")
	}
	if !(a.Calories > 0) {
		out = append(out, "calories must be greater than 0")
	}
	return out
}

// Savable reports whether the activity passes the form gate.
func (a Activity) Savable() bool { return len(a.Problems()) == 0 }

// Index returns the position of id in list, or -1.
func Index(list []Activity, id string) int {
	for i, a := range list {
		if a.ID == id {
			return i
		}
	}
	return -1
}

func Find(list []Activity, id string) (Activity, bool) {
	if i := Index(list, id); i >= 0 {
		return list[i], true
	}
	return Activity{}, false
}

// Resolve matches ref against full ids first, then unique id prefixes.
func Resolve(list []Activity, ref string) (Activity, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return Activity{}, fmt.Errorf("empty reference: %w", ErrNotFound)
	}
	if a, ok := Find(list, ref); ok {
		return a, nil
	}
	var matches []Activity
	for _, a := range list {
		if strings.HasPrefix(a.ID, ref) {
			matches = append(matches, a)
		}
	}
	switch len(matches) {
	case 0:
		return Activity{}, fmt.Errorf("%q: %w", ref, ErrNotFound)
	case 1:
		return matches[0], nil
	default:
		return Activity{}, fmt.Errorf("%q matches %d activities: %w", ref, len(matches), ErrAmbiguous)
	}
}

// ShortID is the display form of an id.
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// DuplicateIDs lists ids that occur more than once, in first-seen order.
func DuplicateIDs(list []Activity) []string {
	seen := make(map[string]int, len(list))
	var dups []string
	for _, a := range list {
		seen[a.ID]++
		if seen[a.ID] == 2 {
			dups = append(dups, a.ID)
		}
	}
	return dups
}
