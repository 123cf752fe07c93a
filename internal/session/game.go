package session

import (
	"errors"

	"github.com/pegsolitaire/pegsolitaire/internal/domain"
)

var (
	// ErrEmptyBoard is returned when starting a game without pegs.
	ErrEmptyBoard = errors.New("starting placement has no pegs")
	// ErrNotStarted is returned by play operations before Start.
	ErrNotStarted = errors.New("game not started")
)

// Game is a board being edited or played. Editing the starting placement
// discards the history.
type Game struct {
	ID      string
	Pattern domain.Pattern
	Initial domain.PegSet
	History *History
}

// NewGame opens the editor on p with every hole filled.
func NewGame(id string, p domain.Pattern) *Game {
	return &Game{ID: id, Pattern: p, Initial: p.Layout.Full()}
}

func (g *Game) Started() bool { return g.History != nil }

// Toggle adds or removes a peg from the starting placement.
func (g *Game) Toggle(h domain.Hole) error {
	if !g.Pattern.Layout.Contains(h) {
		return domain.ErrInvalidPegs
	}
	next := g.Initial.Clone()
	if !next.Remove(h) {
		next.Add(h)
	}
	g.Initial = next
	g.History = nil
	return nil
}

// ToggleFull fills every hole, or empties the board when it is already full.
func (g *Game) ToggleFull() {
	if g.Initial.Len() == g.Pattern.Layout.Size() {
		g.Initial = domain.NewPegSet()
	} else {
		g.Initial = g.Pattern.Layout.Full()
	}
	g.History = nil
}

// SetInitial replaces the starting placement.
func (g *Game) SetInitial(pegs domain.PegSet) error {
	for h := range pegs {
		if !g.Pattern.Layout.Contains(h) {
			return domain.ErrInvalidPegs
		}
	}
	g.Initial = pegs.Clone()
	g.History = nil
	return nil
}

// Start begins play from the starting placement, discarding any history.
func (g *Game) Start() error {
	if g.Initial.Len() == 0 {
		return ErrEmptyBoard
	}
	g.History = New(g.Pattern.Layout, g.Initial)
	return nil
}

// Play returns the history or ErrNotStarted.
func (g *Game) Play() (*History, error) {
	if g.History == nil {
		return nil, ErrNotStarted
	}
	return g.History, nil
}
