package activity

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(list []Activity) []string {
	out := make([]string, 0, len(list))
	for _, a := range list {
		out = append(out, a.ID)
	}
	return out
}

func seeded() State {
	return NewState([]Activity{
		{ID: "a", Category: 1, Name: "Oatmeal", Calories: 350},
		{ID: "b", Category: 2, Name: "Run", Calories: 200},
		{ID: "c", Category: 1, Name: "Salad", Calories: 150},
	})
}

func TestSaveActivity_AppendsDistinctIDsInOrder(t *testing.T) {
	s := NewState(nil)
	for i := 0; i < 5; i++ {
		s = Reduce(s, SaveActivity{Activity{ID: fmt.Sprintf("id-%d", i), Category: 1, Name: "x", Calories: 1}})
	}
	require.Len(t, s.Activities, 5)
	assert.Equal(t, []string{"id-0", "id-1", "id-2", "id-3", "id-4"}, ids(s.Activities))
}

func TestSaveActivity_ReplacesInPlace(t *testing.T) {
	s := seeded()
	edited := Activity{ID: "b", Category: 2, Name: "Long run", Calories: 480}

	next := Reduce(s, SaveActivity{edited})

	require.Len(t, next.Activities, 3)
	assert.Equal(t, []string{"a", "b", "c"}, ids(next.Activities))
	assert.Equal(t, edited, next.Activities[1])
	assert.Equal(t, "Run", s.Activities[1].Name, "input state must not be mutated")
}

func TestSaveActivity_ClearsActiveID(t *testing.T) {
	s := Reduce(seeded(), SetActiveID{ID: "c"})
	require.Equal(t, "c", s.ActiveID)

	s = Reduce(s, SaveActivity{Activity{ID: "d", Category: 1, Name: "Tea", Calories: 5}})
	assert.Empty(t, s.ActiveID)
}

func TestSetActiveIDThenSaveDoesNotDuplicate(t *testing.T) {
	s := Reduce(seeded(), SetActiveID{ID: "a"})
	require.Equal(t, "a", s.ActiveID)

	edited, ok := Find(s.Activities, "a")
	require.True(t, ok)
	edited.Calories = 420
	s = Reduce(s, SaveActivity{edited})

	assert.Len(t, s.Activities, 3)
	assert.Empty(t, s.ActiveID)
	assert.Equal(t, 420.0, s.Activities[0].Calories)
}

func TestSetActiveID_UnknownIDKeepsSelection(t *testing.T) {
	s := Reduce(seeded(), SetActiveID{ID: "b"})
	s = Reduce(s, SetActiveID{ID: "missing"})
	assert.Equal(t, "b", s.ActiveID)
}

func TestDeleteActivity(t *testing.T) {
	s := seeded()

	next := Reduce(s, DeleteActivity{ID: "b"})
	assert.Equal(t, []string{"a", "c"}, ids(next.Activities))
	assert.Len(t, s.Activities, 3)

	same := Reduce(next, DeleteActivity{ID: "zzz"})
	assert.Equal(t, ids(next.Activities), ids(same.Activities))
}

func TestDeleteActivity_ClearsMatchingSelection(t *testing.T) {
	s := Reduce(seeded(), SetActiveID{ID: "c"})

	kept := Reduce(s, DeleteActivity{ID: "a"})
	assert.Equal(t, "c", kept.ActiveID)

	cleared := Reduce(kept, DeleteActivity{ID: "c"})
	assert.Empty(t, cleared.ActiveID)
}

func TestRestartApp(t *testing.T) {
	for _, s := range []State{NewState(nil), seeded(), Reduce(seeded(), SetActiveID{ID: "a"})} {
		next := Reduce(s, RestartApp{})
		assert.NotNil(t, next.Activities)
		assert.Empty(t, next.Activities)
		assert.Empty(t, next.ActiveID)
	}
}

func TestReduceNeverAliasesInput(t *testing.T) {
	s := seeded()
	actions := []Action{
		SaveActivity{Activity{ID: "a", Name: "x", Calories: 1}},
		SetActiveID{ID: "a"},
		DeleteActivity{ID: "zzz"},
	}
	for _, act := range actions {
		next := Reduce(s, act)
		next.Activities[0].Name = "mutated"
		assert.Equal(t, "Oatmeal", s.Activities[0].Name, act.Name())
	}
}

func TestActionNames(t *testing.T) {
	assert.Equal(t, "save-activity", SaveActivity{}.Name())
	assert.Equal(t, "set-active-id", SetActiveID{}.Name())
	assert.Equal(t, "delete-activity", DeleteActivity{}.Name())
	assert.Equal(t, "restart-app", RestartApp{}.Name())
}
