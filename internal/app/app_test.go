package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramanasai/caltrack/internal/activity"
	"github.com/ramanasai/caltrack/internal/catalog"
)

func TestDispatchNotifiesSubscribersInOrder(t *testing.T) {
	a := New(nil, catalog.Builtin())

	var calls []string
	a.Subscribe(func(prev, next activity.State) {
		calls = append(calls, "first")
		assert.Empty(t, prev.Activities)
		assert.Len(t, next.Activities, 1)
	})
	a.Subscribe(func(prev, next activity.State) { calls = append(calls, "second") })

	a.Dispatch(activity.SaveActivity{Activity: activity.Activity{ID: "x", Category: 1, Name: "Egg", Calories: 70}})
	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestUnsubscribe(t *testing.T) {
	a := New(nil, catalog.Builtin())
	n := 0
	stop := a.Subscribe(func(prev, next activity.State) { n++ })

	a.Dispatch(activity.RestartApp{})
	stop()
	a.Dispatch(activity.RestartApp{})
	assert.Equal(t, 1, n)
}

func TestStateAndTotals(t *testing.T) {
	initial := []activity.Activity{
		{ID: "a", Category: 1, Name: "Pasta", Calories: 600},
		{ID: "b", Category: 2, Name: "Walk", Calories: 150},
	}
	a := New(initial, catalog.Builtin())
	initial[0].Name = "changed"

	require.Len(t, a.State().Activities, 2)
	assert.Equal(t, "Pasta", a.State().Activities[0].Name)
	assert.Empty(t, a.State().ActiveID)
	assert.Equal(t, activity.Totals{Consumed: 600, Burned: 150, Net: 450}, a.Totals())

	a.Dispatch(activity.DeleteActivity{ID: "b"})
	assert.Equal(t, activity.Totals{Consumed: 600, Net: 600}, a.Totals())
}

func TestSubscriberMayUnsubscribeDuringDispatch(t *testing.T) {
	a := New(nil, catalog.Builtin())
	var stop func()
	n, m := 0, 0
	stop = a.Subscribe(func(prev, next activity.State) { n++; stop() })
	a.Subscribe(func(prev, next activity.State) { m++ })

	a.Dispatch(activity.RestartApp{})
	a.Dispatch(activity.RestartApp{})
	assert.Equal(t, 1, n)
	assert.Equal(t, 2, m)
}
