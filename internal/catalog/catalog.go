// Package catalog holds the static category table used to classify activities.
package catalog

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Kind tells the tracker which side of the balance a category sits on.
type Kind string

const (
	KindConsumption Kind = "consumption"
	KindExpenditure Kind = "expenditure"
)

// DefaultID is the category preselected for new drafts.
const DefaultID = 1

type Category struct {
	ID   int    `json:"id" mapstructure:"id"`
	Name string `json:"name" mapstructure:"name"`
	Kind Kind   `json:"kind" mapstructure:"kind"`
}

func (c Category) Consumes() bool { return c.Kind == KindConsumption }
func (c Category) Expends() bool  { return c.Kind == KindExpenditure }

var builtin = []Category{
	{ID: 1, Name: "Food", Kind: KindConsumption},
	{ID: 2, Name: "Exercise", Kind: KindExpenditure},
}

// Catalog is immutable once built.
type Catalog struct {
	list []Category
	byID map[int]int
}

// New returns the built-in catalog with extra categories appended in order.
func New(extra ...Category) (*Catalog, error) {
	c := &Catalog{byID: map[int]int{}}
	var errs []error
	for _, cat := range append(append([]Category{}, builtin...), extra...) {
		cat.Name = strings.TrimSpace(cat.Name)
		cat.Kind = Kind(strings.ToLower(strings.TrimSpace(string(cat.Kind))))
		if err := validate(cat); err != nil {
			errs = append(errs, err)
			continue
		}
		if _, dup := c.byID[cat.ID]; dup {
			errs = append(errs, fmt.Errorf("category %d: duplicate id", cat.ID))
			continue
		}
		c.byID[cat.ID] = len(c.list)
		c.list = append(c.list, cat)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return c, nil
}

// Builtin is the catalog without configured extensions.
func Builtin() *Catalog {
	c, _ := New()
	return c
}

func validate(cat Category) error {
	if cat.ID <= 0 {
		return fmt.Errorf("category %d: id must be positive", cat.ID)
	}
	if cat.Name == "" {
		return fmt.Errorf("category %d: name is empty", cat.ID)
	}
	switch cat.Kind {
	case KindConsumption, KindExpenditure:
	default:
		return fmt.Errorf("category %d: unknown kind %q (want %s or %s)", cat.ID, cat.Kind, KindConsumption, KindExpenditure)
	}
	return nil
}

func (c *Catalog) Find(id int) (Category, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Category{}, false
	}
	return c.list[i], true
}

// All returns a copy in declaration order.
func (c *Catalog) All() []Category {
	out := make([]Category, len(c.list))
	copy(out, c.list)
	return out
}

func (c *Catalog) Default() Category {
	cat, _ := c.Find(DefaultID)
	return cat
}

// Label is the display name for id, or "#<id>" when the id is unknown.
func (c *Catalog) Label(id int) string {
	if cat, ok := c.Find(id); ok {
		return cat.Name
	}
	return fmt.Sprintf("#%d", id)
}

// Lookup resolves ref as a numeric id first, then as a case-insensitive name.
func (c *Catalog) Lookup(ref string) (Category, bool) {
	ref = strings.TrimSpace(ref)
	if id, err := strconv.Atoi(ref); err == nil {
		return c.Find(id)
	}
	for _, cat := range c.list {
		if strings.EqualFold(cat.Name, ref) {
			return cat, true
		}
	}
	return Category{}, false
}

// Next cycles through the catalog; dir is +1 or -1.
func (c *Catalog) Next(id, dir int) int {
	if len(c.list) == 0 {
		return id
	}
	i, ok := c.byID[id]
	if !ok {
		return c.list[0].ID
	}
	i = (i + dir + len(c.list)) % len(c.list)
	return c.list[i].ID
}
