package domain

import (
	"fmt"
	"strings"

	"github.com/lithammer/dedent"
)

// Hole identifies a peg-occupiable position. Valid holes start at 1.
type Hole int

// NoHole marks an empty grid cell, or "no target" when used as a goal.
const NoHole Hole = 0

// Coord is a zero-based grid position.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Translate returns the coordinate n steps away in direction d.
func (c Coord) Translate(d Direction, n int) Coord {
	return Coord{Row: c.Row + d.DRow*n, Col: c.Col + d.DCol*n}
}

// Layout is the geometry of a board and its hole numbering.
//
// Layout is immutable after construction; it is safe to share the same
// pointer between games, solvers and goroutines.
type Layout struct {
	cells [][]Hole
	cols  int
	// pos[h] is the coordinate of hole h; pos[0] is unused.
	pos []Coord
}

// NewCentered builds a layout whose rows hold counts[i] holes, each row
// centred within the widest one. Odd padding puts the extra cell on the right.
func NewCentered(counts ...int) *Layout {
	width := 0
	for _, n := range counts {
		if n > width {
			width = n
		}
	}
	mask := make([][]bool, len(counts))
	for r, n := range counts {
		if n < 0 {
			n = 0
		}
		left := (width - n) / 2
		row := make([]bool, width)
		for c := left; c < left+n; c++ {
			row[c] = true
		}
		mask[r] = row
	}
	return NewFromMask(mask)
}

// NewRect builds a fully populated rows x cols board.
func NewRect(rows, cols int) *Layout {
	mask := make([][]bool, max(rows, 0))
	for r := range mask {
		row := make([]bool, max(cols, 0))
		for c := range row {
			row[c] = true
		}
		mask[r] = row
	}
	return NewFromMask(mask)
}

// NewFromMask builds a layout from an explicit grid where true marks a hole.
// Short rows are padded with empty cells up to the widest row. Holes are
// numbered row-major from 1.
func NewFromMask(mask [][]bool) *Layout {
	cols := 0
	for _, row := range mask {
		if len(row) > cols {
			cols = len(row)
		}
	}
	l := &Layout{
		cells: make([][]Hole, len(mask)),
		cols:  cols,
		pos:   []Coord{{-1, -1}},
	}
	next := Hole(1)
	for r, row := range mask {
		cells := make([]Hole, cols)
		for c, ok := range row {
			if !ok {
				continue
			}
			cells[c] = next
			l.pos = append(l.pos, Coord{Row: r, Col: c})
			next++
		}
		l.cells[r] = cells
	}
	return l
}

// ParseGrid builds a layout from ASCII art. 'o', 'O', '*' and 'x' are holes;
// '.', '_' and spaces are empty cells. Common leading indentation and blank
// leading/trailing lines are ignored.
func ParseGrid(art string) (*Layout, error) {
	text := strings.Trim(dedent.Dedent(art), "\n")
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("grid: empty board")
	}
	lines := strings.Split(text, "\n")
	mask := make([][]bool, len(lines))
	holes := 0
	for r, line := range lines {
		line = strings.TrimRight(line, " \t\r")
		row := make([]bool, 0, len(line))
		for c, ch := range []rune(line) {
			switch ch {
			case 'o', 'O', '*', 'x':
				row = append(row, true)
				holes++
			case '.', '_', ' ':
				row = append(row, false)
			default:
				return nil, fmt.Errorf("grid: unexpected %q at row %d col %d", ch, r+1, c+1)
			}
		}
		mask[r] = row
	}
	if holes == 0 {
		return nil, fmt.Errorf("grid: board has no holes")
	}
	return NewFromMask(mask), nil
}

// Rows returns the number of grid rows.
func (l *Layout) Rows() int { return len(l.cells) }

// Cols returns the grid width.
func (l *Layout) Cols() int { return l.cols }

// Size returns the number of holes.
func (l *Layout) Size() int { return len(l.pos) - 1 }

// At returns the hole at c, or false when c is off-grid or an empty cell.
func (l *Layout) At(c Coord) (Hole, bool) {
	if c.Row < 0 || c.Row >= len(l.cells) || c.Col < 0 || c.Col >= l.cols {
		return NoHole, false
	}
	h := l.cells[c.Row][c.Col]
	return h, h != NoHole
}

// CoordOf returns the grid position of h.
func (l *Layout) CoordOf(h Hole) (Coord, bool) {
	if !l.Contains(h) {
		return Coord{}, false
	}
	return l.pos[h], true
}

// Contains reports whether h is a hole of this layout.
func (l *Layout) Contains(h Hole) bool {
	return h >= 1 && int(h) < len(l.pos)
}

// Holes returns every hole id in ascending order.
func (l *Layout) Holes() []Hole {
	out := make([]Hole, 0, l.Size())
	for h := 1; h < len(l.pos); h++ {
		out = append(out, Hole(h))
	}
	return out
}

// Full returns a peg set occupying every hole.
func (l *Layout) Full() PegSet {
	return NewPegSet(l.Holes()...)
}

// Grid returns a copy of the cells; NoHole marks empty cells.
func (l *Layout) Grid() [][]Hole {
	out := make([][]Hole, len(l.cells))
	for r, row := range l.cells {
		out[r] = append([]Hole(nil), row...)
	}
	return out
}

// Center returns the hole in the middle cell of the grid, if there is one.
func (l *Layout) Center() (Hole, bool) {
	return l.At(Coord{Row: len(l.cells) / 2, Col: l.cols / 2})
}

// Opening is the classic start: every hole filled except the center. Boards
// without a center hole start full.
func (l *Layout) Opening() PegSet {
	pegs := l.Full()
	if c, ok := l.Center(); ok {
		pegs.Remove(c)
	}
	return pegs
}
