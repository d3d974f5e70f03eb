package activity

import "slices"

// State is the single value owned by the dispatcher. ActiveID is empty when
// no activity is selected for editing.
type State struct {
	Activities []Activity
	ActiveID   string
}

// NewState returns a state holding a private copy of activities.
func NewState(activities []Activity) State {
	return State{Activities: clone(activities)}
}

// Action is one of SaveActivity, SetActiveID, DeleteActivity or RestartApp.
type Action interface {
	isAction()
	Name() string
}

// SaveActivity replaces the activity with the same id in place, or appends it.
type SaveActivity struct{ Activity Activity }

// SetActiveID selects an activity for editing.
type SetActiveID struct{ ID string }

// DeleteActivity removes the activity with the given id.
type DeleteActivity struct{ ID string }

// RestartApp clears every activity and the selection.
type RestartApp struct{}

func (SaveActivity) isAction()   {}
func (SetActiveID) isAction()    {}
func (DeleteActivity) isAction() {}
func (RestartApp) isAction()     {}

func (SaveActivity) Name() string   { return "save-activity" }
func (SetActiveID) Name() string    { return "set-active-id" }
func (DeleteActivity) Name() string { return "delete-activity" }
func (RestartApp) Name() string     { return "restart-app" }

// Reduce computes the next state. It never mutates state and the returned
// Activities slice never shares a backing array with the input.
func Reduce(state State, action Action) State {
	switch a := action.(type) {
	case SaveActivity:
		next := clone(state.Activities)
		if i := Index(next, a.Activity.ID); i >= 0 {
			next[i] = a.Activity
		} else {
			next = append(next, a.Activity)
		}
		return State{Activities: next}

	case SetActiveID:
		if Index(state.Activities, a.ID) < 0 {
			// unknown ids keep ActiveID pointing at an existing activity
			return State{Activities: clone(state.Activities), ActiveID: state.ActiveID}
		}
		return State{Activities: clone(state.Activities), ActiveID: a.ID}

	case DeleteActivity:
		next := slices.DeleteFunc(clone(state.Activities), func(x Activity) bool { return x.ID == a.ID })
		active := state.ActiveID
		if active == a.ID {
			active = ""
		}
		return State{Activities: next, ActiveID: active}

	case RestartApp:
		return State{Activities: []Activity{}}

	default:
		return State{Activities: clone(state.Activities), ActiveID: state.ActiveID}
	}
}

func clone(list []Activity) []Activity {
	out := make([]Activity, len(list))
	copy(out, list)
	return out
}
