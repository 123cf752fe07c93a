package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidMove matches every *InvalidMoveError through errors.Is.
	ErrInvalidMove = errors.New("invalid move")
	// ErrInvalidPegs is returned when a peg set names holes outside its layout.
	ErrInvalidPegs = errors.New("pegs outside layout")
)

// InvalidMoveError describes a move that cannot be applied to a position.
type InvalidMoveError struct {
	Move   Move
	Reason string
}

func (e *InvalidMoveError) Error() string {
	return fmt.Sprintf("invalid move %s: %s", e.Move, e.Reason)
}

func (e *InvalidMoveError) Is(target error) bool {
	return target == ErrInvalidMove
}
