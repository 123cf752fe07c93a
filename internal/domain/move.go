package domain

import "fmt"

// Move jumps the peg at From over the peg at Over into the empty hole To.
type Move struct {
	From Hole `json:"from"`
	Over Hole `json:"over"`
	To   Hole `json:"to"`
}

func (m Move) String() string {
	return fmt.Sprintf("%d→%d→%d", m.From, m.Over, m.To)
}

// LegalMoves lists every legal jump. Pegs are visited in ascending hole order
// and each peg tries right, left, down, up. Pegs that are not holes of l are
// ignored.
func LegalMoves(l *Layout, pegs PegSet) []Move {
	var moves []Move
	for _, f := range pegs.Sorted() {
		at, ok := l.CoordOf(f)
		if !ok {
			continue
		}
		for _, d := range Directions {
			o, ok := l.At(at.Translate(d, 1))
			if !ok {
				continue
			}
			t, ok := l.At(at.Translate(d, 2))
			if !ok {
				continue
			}
			if pegs.Contains(o) && !pegs.Contains(t) {
				moves = append(moves, Move{From: f, Over: o, To: t})
			}
		}
	}
	return moves
}

// Apply returns pegs - {From, Over} + {To}. The input set is never modified.
// The move is not validated; use CheckMove for untrusted moves.
func Apply(pegs PegSet, m Move) PegSet {
	out := pegs.Clone()
	out.Remove(m.From)
	out.Remove(m.Over)
	out.Add(m.To)
	return out
}

// CheckMove reports an *InvalidMoveError unless m is a legal jump for pegs on l.
func CheckMove(l *Layout, pegs PegSet, m Move) error {
	from, ok := l.CoordOf(m.From)
	if !ok {
		return &InvalidMoveError{Move: m, Reason: "from is not a hole"}
	}
	var dir *Direction
	for i, d := range Directions {
		if h, ok := l.At(from.Translate(d, 1)); ok && h == m.Over {
			if t, ok := l.At(from.Translate(d, 2)); ok && t == m.To {
				dir = &Directions[i]
				break
			}
		}
	}
	switch {
	case dir == nil:
		return &InvalidMoveError{Move: m, Reason: "not a straight jump over an adjacent hole"}
	case !pegs.Contains(m.From):
		return &InvalidMoveError{Move: m, Reason: "from is empty"}
	case !pegs.Contains(m.Over):
		return &InvalidMoveError{Move: m, Reason: "over is empty"}
	case pegs.Contains(m.To):
		return &InvalidMoveError{Move: m, Reason: "to is occupied"}
	}
	return nil
}

// ReverseMoves lists every move that could have produced pegs: To is occupied
// while From and Over are empty holes in a straight line behind it.
func ReverseMoves(l *Layout, pegs PegSet) []Move {
	var moves []Move
	for _, t := range pegs.Sorted() {
		at, ok := l.CoordOf(t)
		if !ok {
			continue
		}
		for _, d := range Directions {
			o, ok := l.At(at.Translate(d, 1))
			if !ok {
				continue
			}
			f, ok := l.At(at.Translate(d, 2))
			if !ok {
				continue
			}
			if !pegs.Contains(o) && !pegs.Contains(f) {
				moves = append(moves, Move{From: f, Over: o, To: t})
			}
		}
	}
	return moves
}

// Unapply undoes m: pegs - {To} + {From, Over}, as a new set.
func Unapply(pegs PegSet, m Move) PegSet {
	out := pegs.Clone()
	out.Remove(m.To)
	out.Add(m.From, m.Over)
	return out
}
