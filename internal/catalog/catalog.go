// Package catalog holds the board patterns a player can choose from.
package catalog

import (
	"strings"
	"sync"

	"github.com/iancoleman/strcase"
	"github.com/pkg/errors"

	"github.com/pegsolitaire/pegsolitaire/internal/domain"
)

// DefaultPattern is selected when the caller names none.
const DefaultPattern = "Plus 33"

// Builtin shapes, in menu order.
var builtin = []struct {
	name  string
	shape domain.Shape
}{
	{"Plus 33", domain.Shape{Kind: domain.ShapeCentered, Rows: []int{3, 3, 7, 7, 7, 3, 3}}},
	{"Diamond 37", domain.Shape{Kind: domain.ShapeCentered, Rows: []int{3, 5, 7, 7, 7, 5, 3}}},
	{"Square 49", domain.Shape{Kind: domain.ShapeRect, Width: 7, Height: 7}},
	{"Square 25", domain.Shape{Kind: domain.ShapeRect, Width: 5, Height: 5}},
}

// Slug is the lookup key for a pattern name, e.g. "Plus 33" -> "plus-33".
func Slug(name string) string {
	return strcase.ToKebab(strings.TrimSpace(name))
}

// Catalog is a goroutine-safe, insertion-ordered set of patterns keyed by slug.
type Catalog struct {
	mu       sync.RWMutex
	order    []string
	patterns map[string]domain.Pattern
}

func New() *Catalog {
	return &Catalog{patterns: make(map[string]domain.Pattern)}
}

// Builtin returns a catalog holding the standard boards.
func Builtin() *Catalog {
	c := New()
	for _, b := range builtin {
		if err := c.Add(b.name, b.shape); err != nil {
			// Built-in shapes are hard-coded and always valid; panic on bugs.
			panic("builtin pattern " + b.name + ": " + err.Error())
		}
	}
	return c
}

// Add builds shape and registers it under name.
func (c *Catalog) Add(name string, shape domain.Shape) error {
	slug := Slug(name)
	if slug == "" {
		return errors.New("pattern name is empty")
	}
	layout, err := shape.Build()
	if err != nil {
		return errors.Wrapf(err, "pattern %q", name)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.patterns[slug]; ok {
		return errors.Errorf("pattern %q already defined", name)
	}
	c.order = append(c.order, slug)
	c.patterns[slug] = domain.Pattern{Name: strings.TrimSpace(name), Slug: slug, Shape: shape, Layout: layout}
	return nil
}

// List returns every pattern in registration order.
func (c *Catalog) List() []domain.Pattern {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.Pattern, 0, len(c.order))
	for _, slug := range c.order {
		out = append(out, c.patterns[slug])
	}
	return out
}

// Lookup finds a pattern by display name or slug. An empty name selects DefaultPattern.
func (c *Catalog) Lookup(name string) (domain.Pattern, bool) {
	if strings.TrimSpace(name) == "" {
		name = DefaultPattern
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.patterns[Slug(name)]
	return p, ok
}
