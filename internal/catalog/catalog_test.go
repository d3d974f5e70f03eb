package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinCatalog(t *testing.T) {
	c := Builtin()

	food, ok := c.Find(1)
	require.True(t, ok)
	assert.Equal(t, "Food", food.Name)
	assert.True(t, food.Consumes())

	exercise, ok := c.Find(2)
	require.True(t, ok)
	assert.Equal(t, "Exercise", exercise.Name)
	assert.True(t, exercise.Expends())

	_, ok = c.Find(3)
	assert.False(t, ok)

	assert.Equal(t, DefaultID, c.Default().ID)
	assert.Len(t, c.All(), 2)
}

func TestNewAppendsExtras(t *testing.T) {
	c, err := New(Category{ID: 3, Name: " Snack ", Kind: "Consumption"})
	require.NoError(t, err)

	snack, ok := c.Find(3)
	require.True(t, ok)
	assert.Equal(t, "Snack", snack.Name)
	assert.Equal(t, KindConsumption, snack.Kind)

	ids := []int{}
	for _, cat := range c.All() {
		ids = append(ids, cat.ID)
	}
	assert.Equal(t, []int{1, 2, 3}, ids)
}

func TestNewRejectsBadCategories(t *testing.T) {
	tests := []struct {
		name string
		cat  Category
	}{
		{"duplicate id", Category{ID: 1, Name: "Breakfast", Kind: KindConsumption}},
		{"zero id", Category{ID: 0, Name: "Nap", Kind: KindExpenditure}},
		{"empty name", Category{ID: 4, Name: "  ", Kind: KindExpenditure}},
		{"unknown kind", Category{ID: 5, Name: "Water", Kind: "neutral"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.cat)
			assert.Error(t, err)
		})
	}
}

func TestAllReturnsCopy(t *testing.T) {
	c := Builtin()
	all := c.All()
	all[0].Name = "changed"
	assert.Equal(t, "Food", c.Label(1))
}

func TestLabelAndNext(t *testing.T) {
	c := Builtin()
	assert.Equal(t, "Exercise", c.Label(2))
	assert.Equal(t, "#9", c.Label(9))

	assert.Equal(t, 2, c.Next(1, 1))
	assert.Equal(t, 1, c.Next(2, 1))
	assert.Equal(t, 2, c.Next(1, -1))
	assert.Equal(t, 1, c.Next(42, 1))
}

func TestLookup(t *testing.T) {
	c := Builtin()
	cat, ok := c.Lookup("2")
	require.True(t, ok)
	assert.Equal(t, "Exercise", cat.Name)

	cat, ok = c.Lookup(" food ")
	require.True(t, ok)
	assert.Equal(t, 1, cat.ID)

	_, ok = c.Lookup("9")
	assert.False(t, ok)
	_, ok = c.Lookup("Sleep")
	assert.False(t, ok)
}
