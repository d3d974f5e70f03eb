// Package app owns the activity state and runs every transition through the
// reducer. It is meant to be driven by a single goroutine.
package app

import (
	"log/slog"

	"github.com/ramanasai/caltrack/internal/activity"
	"github.com/ramanasai/caltrack/internal/catalog"
)

// Subscriber runs synchronously after each committed transition.
type Subscriber func(prev, next activity.State)

type App struct {
	state   activity.State
	catalog *catalog.Catalog
	subs    map[int]Subscriber
	order   []int
	nextSub int
	log     *slog.Logger
}

type Option func(*App)

func WithLogger(l *slog.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.log = l
		}
	}
}

// New starts from the given activities with nothing selected.
func New(initial []activity.Activity, cat *catalog.Catalog, opts ...Option) *App {
	a := &App{
		state:   activity.NewState(initial),
		catalog: cat,
		subs:    map[int]Subscriber{},
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// State returns the snapshot produced by the latest reduction.
func (a *App) State() activity.State { return a.state }

func (a *App) Catalog() *catalog.Catalog { return a.catalog }

// Totals recomputes the tracker over the current list.
func (a *App) Totals() activity.Totals {
	return activity.Summarize(a.state.Activities, a.catalog)
}

// Subscribe registers fn and returns a func that removes it.
func (a *App) Subscribe(fn Subscriber) (unsubscribe func()) {
	id := a.nextSub
	a.nextSub++
	a.subs[id] = fn
	a.order = append(a.order, id)
	return func() {
		delete(a.subs, id)
		for i, v := range a.order {
			if v == id {
				a.order = append(a.order[:i], a.order[i+1:]...)
				break
			}
		}
	}
}

// Dispatch reduces action into a new state and notifies subscribers in
// registration order before returning it.
func (a *App) Dispatch(action activity.Action) activity.State {
	prev := a.state
	a.state = activity.Reduce(prev, action)
	a.log.Debug("dispatch",
		"action", action.Name(),
		"activities", len(a.state.Activities),
		"active_id", a.state.ActiveID,
	)
	for _, id := range append([]int(nil), a.order...) {
		if fn, ok := a.subs[id]; ok {
			fn(prev, a.state)
		}
	}
	return a.state
}
