package domain

import (
	"fmt"
	"strings"
)

// Shape kinds.
const (
	ShapeCentered = "centered"
	ShapeRect     = "rect"
	ShapeGrid     = "grid"
)

// Shape is a declarative board definition as found in config and pattern files.
type Shape struct {
	Kind string `json:"kind" toml:"kind" yaml:"kind"`
	// Rows holds per-row hole counts for centered shapes.
	Rows   []int `json:"rows,omitempty" toml:"rows,omitempty" yaml:"rows,omitempty"`
	Width  int   `json:"width,omitempty" toml:"width,omitempty" yaml:"width,omitempty"`
	Height int   `json:"height,omitempty" toml:"height,omitempty" yaml:"height,omitempty"`
	// Grid is ASCII art, see ParseGrid.
	Grid string `json:"grid,omitempty" toml:"grid,omitempty" yaml:"grid,omitempty"`
}

// Build validates the shape and constructs its layout.
func (s Shape) Build() (*Layout, error) {
	switch strings.ToLower(strings.TrimSpace(s.Kind)) {
	case ShapeCentered:
		if len(s.Rows) == 0 {
			return nil, fmt.Errorf("centered shape needs rows")
		}
		for i, n := range s.Rows {
			if n <= 0 {
				return nil, fmt.Errorf("centered shape: row %d has %d holes", i+1, n)
			}
		}
		return NewCentered(s.Rows...), nil
	case ShapeRect:
		if s.Width <= 0 || s.Height <= 0 {
			return nil, fmt.Errorf("rect shape: invalid size %dx%d", s.Width, s.Height)
		}
		return NewRect(s.Height, s.Width), nil
	case ShapeGrid:
		return ParseGrid(s.Grid)
	default:
		return nil, fmt.Errorf("unknown shape kind %q", s.Kind)
	}
}

// PatternSpec is a named shape as written in config and pattern files.
type PatternSpec struct {
	Name  string `json:"name" toml:"name" yaml:"name"`
	Shape `yaml:",inline"`
}
