package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutIdsAreContiguous(t *testing.T) {
	tests := []struct {
		name   string
		layout *Layout
		want   int
	}{
		{"plus 33", NewCentered(3, 3, 7, 7, 7, 3, 3), 33},
		{"diamond 37", NewCentered(3, 5, 7, 7, 7, 5, 3), 37},
		{"square 49", NewRect(7, 7), 49},
		{"square 25", NewRect(5, 5), 25},
		{"row", NewRect(1, 3), 3},
		{"mask", NewFromMask([][]bool{{true, false, true}, {false}, {true}}), 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.layout.Size())

			seen := map[Hole]bool{}
			var order []Hole
			for _, row := range tt.layout.Grid() {
				for _, h := range row {
					if h == NoHole {
						continue
					}
					assert.False(t, seen[h], "duplicate hole %d", h)
					seen[h] = true
					order = append(order, h)
				}
			}
			// row-major traversal yields 1..N in order
			for i, h := range order {
				assert.Equal(t, Hole(i+1), h)
			}
			assert.Equal(t, order, tt.layout.Holes())
		})
	}
}

func TestNewCenteredPadding(t *testing.T) {
	l := NewCentered(2, 3)
	assert.Equal(t, [][]Hole{
		{1, 2, NoHole},
		{3, 4, 5},
	}, l.Grid())

	plus := NewCentered(3, 3, 7, 7, 7, 3, 3)
	center, ok := plus.At(Coord{Row: 3, Col: 3})
	require.True(t, ok)
	assert.Equal(t, Hole(17), center)

	_, ok = plus.At(Coord{Row: 0, Col: 0})
	assert.False(t, ok, "corner of plus board is not a hole")
}

func TestNewRectNumbering(t *testing.T) {
	l := NewRect(5, 5)
	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			h, ok := l.At(Coord{Row: r, Col: c})
			require.True(t, ok)
			assert.Equal(t, Hole(r*5+c+1), h)
		}
	}
}

func TestLayoutPositionIndex(t *testing.T) {
	l := NewCentered(3, 5, 7, 7, 7, 5, 3)
	for _, h := range l.Holes() {
		c, ok := l.CoordOf(h)
		require.True(t, ok)
		back, ok := l.At(c)
		require.True(t, ok)
		assert.Equal(t, h, back)
	}
	_, ok := l.CoordOf(0)
	assert.False(t, ok)
	_, ok = l.CoordOf(38)
	assert.False(t, ok)
	_, ok = l.At(Coord{Row: -1, Col: 2})
	assert.False(t, ok)
	_, ok = l.At(Coord{Row: 2, Col: 7})
	assert.False(t, ok)
}

func TestLayoutIsImmutable(t *testing.T) {
	l := NewRect(2, 2)
	g := l.Grid()
	g[0][0] = 99
	h, _ := l.At(Coord{0, 0})
	assert.Equal(t, Hole(1), h)
}

func TestParseGrid(t *testing.T) {
	l, err := ParseGrid(`
		..ooo..
		..ooo..
		ooooooo
		ooooooo
		ooooooo
		..ooo..
		..ooo..
	`)
	require.NoError(t, err)
	assert.Equal(t, NewCentered(3, 3, 7, 7, 7, 3, 3).Grid(), l.Grid())

	_, err = ParseGrid("oo\no#")
	assert.Error(t, err)

	_, err = ParseGrid("...\n...")
	assert.Error(t, err)

	_, err = ParseGrid("   \n")
	assert.Error(t, err)
}

func TestShapeBuild(t *testing.T) {
	tests := []struct {
		name    string
		shape   Shape
		size    int
		wantErr bool
	}{
		{name: "centered", shape: Shape{Kind: "centered", Rows: []int{1, 3, 1}}, size: 5},
		{name: "rect", shape: Shape{Kind: "Rect", Width: 4, Height: 2}, size: 8},
		{name: "grid", shape: Shape{Kind: "grid", Grid: "ooo\n.o."}, size: 4},
		{name: "centered without rows", shape: Shape{Kind: "centered"}, wantErr: true},
		{name: "centered zero row", shape: Shape{Kind: "centered", Rows: []int{3, 0}}, wantErr: true},
		{name: "rect zero width", shape: Shape{Kind: "rect", Height: 2}, wantErr: true},
		{name: "unknown kind", shape: Shape{Kind: "hex"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := tt.shape.Build()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.size, l.Size())
		})
	}
}

func TestOpening(t *testing.T) {
	plus := NewCentered(3, 3, 7, 7, 7, 3, 3)
	c, ok := plus.Center()
	require.True(t, ok)
	assert.Equal(t, Hole(17), c)
	open := plus.Opening()
	assert.Equal(t, 32, open.Len())
	assert.False(t, open.Contains(17))

	sq := NewRect(5, 5)
	c, ok = sq.Center()
	require.True(t, ok)
	assert.Equal(t, Hole(13), c)

	ring, err := ParseGrid(`
		ooo
		o.o
		ooo
	`)
	require.NoError(t, err)
	_, ok = ring.Center()
	assert.False(t, ok)
	assert.Equal(t, 8, ring.Opening().Len())
}
