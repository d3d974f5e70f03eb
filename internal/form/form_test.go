package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramanasai/caltrack/internal/activity"
	"github.com/ramanasai/caltrack/internal/catalog"
)

func TestNewDraftIsBlank(t *testing.T) {
	c := New(catalog.Builtin())
	d := c.Draft()
	assert.NotEmpty(t, d.ID)
	assert.Equal(t, catalog.DefaultID, d.Category)
	assert.Empty(t, d.Name)
	assert.Zero(t, d.Calories)
	assert.False(t, c.Valid())
}

func TestValidity(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		calories string
		valid    bool
	}{
		{"empty name", "", "300", false},
		{"blank name", "   ", "300", false},
		{"zero calories", "Run", "0", false},
		{"negative calories", "Run", "-20", false},
		{"garbage calories", "Run", "lots", false},
		{"not a number", "Run", "NaN", false},
		{"valid", "Run", "150", true},
		{"fractional", "Apple", "52.5", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(catalog.Builtin())
			require.NoError(t, c.SetField(FieldName, tt.text))
			require.NoError(t, c.SetField(FieldCalories, tt.calories))
			assert.Equal(t, tt.valid, c.Valid())
			assert.Equal(t, tt.valid, len(c.Problems()) == 0)
		})
	}
}

func TestSetFieldCoercesNumbers(t *testing.T) {
	c := New(catalog.Builtin())
	require.NoError(t, c.SetField(FieldCategory, "2"))
	require.NoError(t, c.SetField(FieldCalories, " 310 "))
	require.NoError(t, c.SetField(FieldName, "  Swim "))

	d := c.Draft()
	assert.Equal(t, 2, d.Category)
	assert.Equal(t, 310.0, d.Calories)
	assert.Equal(t, "  Swim ", d.Name)

	assert.Error(t, c.SetField(Field("colour"), "red"))
}

func TestUnknownCategoryIsRejected(t *testing.T) {
	c := New(catalog.Builtin())
	require.NoError(t, c.SetField(FieldName, "Mystery"))
	require.NoError(t, c.SetField(FieldCalories, "10"))
	require.NoError(t, c.SetField(FieldCategory, "9"))
	assert.False(t, c.Valid())
	assert.Contains(t, c.Problems(), "unknown category 9")
}

func TestSubmitRejectsInvalidDraft(t *testing.T) {
	c := New(catalog.Builtin())
	before := c.Draft()

	act, err := c.Submit()
	assert.ErrorIs(t, err, ErrInvalidDraft)
	assert.Nil(t, act)
	assert.Equal(t, before, c.Draft())
}

func TestSubmitCreatesAndResets(t *testing.T) {
	c := New(catalog.Builtin())
	first := c.Draft().ID
	require.NoError(t, c.SetField(FieldName, " Juice "))
	require.NoError(t, c.SetField(FieldCalories, "120"))

	act, err := c.Submit()
	require.NoError(t, err)
	save, ok := act.(activity.SaveActivity)
	require.True(t, ok)
	assert.Equal(t, activity.Activity{ID: first, Category: 1, Name: "Juice", Calories: 120}, save.Activity)

	next := c.Draft()
	assert.NotEqual(t, first, next.ID)
	assert.Empty(t, next.Name)
	assert.Zero(t, next.Calories)
	assert.Equal(t, catalog.DefaultID, next.Category)
}

func TestSyncLoadsSelectedActivity(t *testing.T) {
	cat := catalog.Builtin()
	c := New(cat)
	state := activity.NewState([]activity.Activity{
		{ID: "a", Category: 1, Name: "Toast", Calories: 90},
		{ID: "b", Category: 2, Name: "Row", Calories: 250},
	})

	assert.False(t, c.Sync(state))

	state = activity.Reduce(state, activity.SetActiveID{ID: "b"})
	require.True(t, c.Sync(state))
	assert.Equal(t, state.Activities[1], c.Draft())
	assert.True(t, c.Editing(state))
	assert.Equal(t, "Save Exercise", c.SubmitLabel())

	// same selection again does not clobber local edits
	require.NoError(t, c.SetField(FieldCalories, "300"))
	assert.False(t, c.Sync(state))
	assert.Equal(t, 300.0, c.Draft().Calories)
}

func TestEditThenSubmitKeepsPositionAndClearsSelection(t *testing.T) {
	cat := catalog.Builtin()
	c := New(cat)
	state := activity.NewState([]activity.Activity{
		{ID: "a", Category: 1, Name: "Toast", Calories: 90},
		{ID: "b", Category: 2, Name: "Row", Calories: 250},
		{ID: "c", Category: 1, Name: "Soup", Calories: 180},
	})

	state = activity.Reduce(state, activity.SetActiveID{ID: "b"})
	c.Sync(state)
	require.NoError(t, c.SetField(FieldCalories, "275"))
	act, err := c.Submit()
	require.NoError(t, err)
	state = activity.Reduce(state, act)
	c.Sync(state)

	require.Len(t, state.Activities, 3)
	assert.Equal(t, "b", state.Activities[1].ID)
	assert.Equal(t, 275.0, state.Activities[1].Calories)
	assert.Empty(t, state.ActiveID)
	assert.False(t, c.Editing(state))

	// selecting the same activity again after the save reloads it
	state = activity.Reduce(state, activity.SetActiveID{ID: "b"})
	assert.True(t, c.Sync(state))
}

func TestSubmitLabelFollowsCategory(t *testing.T) {
	c := New(catalog.Builtin())
	assert.Equal(t, "Save Food", c.SubmitLabel())
	c.SetCategory(2)
	assert.Equal(t, "Save Exercise", c.SubmitLabel())
}

func TestFieldText(t *testing.T) {
	c := New(catalog.Builtin())
	require.NoError(t, c.SetField(FieldCalories, "42.50"))
	require.NoError(t, c.SetField(FieldName, "Pear"))
	assert.Equal(t, "42.5", c.FieldText(FieldCalories))
	assert.Equal(t, "1", c.FieldText(FieldCategory))
	assert.Equal(t, "Pear", c.FieldText(FieldName))
}

func TestReloadAfterAbandonedEdit(t *testing.T) {
	c := New(catalog.Builtin())
	run := activity.Activity{ID: "run", Category: 2, Name: "Run", Calories: 300}
	state := activity.Reduce(activity.NewState([]activity.Activity{run}), activity.SetActiveID{ID: "run"})

	require.True(t, c.Sync(state))
	c.Reset()
	assert.False(t, c.Editing(state))
	assert.False(t, c.Sync(state), "selection did not change")

	require.True(t, c.Reload(state))
	assert.Equal(t, run, c.Draft())
}
