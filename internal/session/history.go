// Package session holds the mutable state of a game in progress: the
// editable starting placement and a linear undo/redo history of positions.
// The engine in package domain stays pure; everything here works on snapshots.
package session

import (
	"github.com/pegsolitaire/pegsolitaire/internal/domain"
)

// Entry is one position in the history and the move that produced it.
// The first entry has no move.
type Entry struct {
	Pegs domain.PegSet `json:"pegs"`
	Move *domain.Move  `json:"move,omitempty"`
}

// History is a linear log of positions with a cursor. Applying a move after
// undoing drops the entries past the cursor.
type History struct {
	layout  *domain.Layout
	entries []Entry
	idx     int
}

// New starts a history at initial. The peg set is copied.
func New(l *domain.Layout, initial domain.PegSet) *History {
	return &History{
		layout:  l,
		entries: []Entry{{Pegs: initial.Clone()}},
	}
}

func (h *History) Layout() *domain.Layout { return h.layout }

// Current returns the entry under the cursor.
func (h *History) Current() Entry { return h.entries[h.idx] }

// Index is the cursor position into Entries.
func (h *History) Index() int { return h.idx }

// Entries returns a copy of the log.
func (h *History) Entries() []Entry {
	return append([]Entry(nil), h.entries...)
}

// LegalMoves lists the moves available from the current position.
func (h *History) LegalMoves() []domain.Move {
	return domain.LegalMoves(h.layout, h.Current().Pegs)
}

// Apply plays m from the current position.
func (h *History) Apply(m domain.Move) error {
	cur := h.Current().Pegs
	if err := domain.CheckMove(h.layout, cur, m); err != nil {
		return err
	}
	h.push(domain.Apply(cur, m), m)
	return nil
}

func (h *History) push(pegs domain.PegSet, m domain.Move) {
	h.entries = append(h.entries[:h.idx+1], Entry{Pegs: pegs, Move: &m})
	h.idx = len(h.entries) - 1
}

// Step plays the first generated legal move. ok is false when none exists.
func (h *History) Step() (domain.Move, bool) {
	moves := h.LegalMoves()
	if len(moves) == 0 {
		return domain.Move{}, false
	}
	h.push(domain.Apply(h.Current().Pegs, moves[0]), moves[0])
	return moves[0], true
}

// AppendPath replaces everything after the cursor with the positions reached
// by playing path, leaving the cursor on the last one. Nothing changes if any
// move is invalid.
func (h *History) AppendPath(path []domain.Move) error {
	pegs := h.Current().Pegs
	next := make([]Entry, 0, len(path))
	for _, m := range path {
		if err := domain.CheckMove(h.layout, pegs, m); err != nil {
			return err
		}
		pegs = domain.Apply(pegs, m)
		mv := m
		next = append(next, Entry{Pegs: pegs, Move: &mv})
	}
	h.entries = append(h.entries[:h.idx+1], next...)
	h.idx = len(h.entries) - 1
	return nil
}

func (h *History) CanUndo() bool { return h.idx > 0 }

func (h *History) CanRedo() bool { return h.idx < len(h.entries)-1 }

// Undo moves the cursor back one entry.
func (h *History) Undo() bool {
	if !h.CanUndo() {
		return false
	}
	h.idx--
	return true
}

// Redo moves the cursor forward one entry.
func (h *History) Redo() bool {
	if !h.CanRedo() {
		return false
	}
	h.idx++
	return true
}

// Cleared reports whether exactly one peg remains.
func (h *History) Cleared() bool { return h.Current().Pegs.Len() == 1 }

// Stuck reports whether more than one peg remains and no move is possible.
func (h *History) Stuck() bool {
	return h.Current().Pegs.Len() > 1 && len(h.LegalMoves()) == 0
}
