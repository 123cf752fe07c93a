package generator

// ReverseGenerator creates puzzles by playing the game backwards from a single
// peg. Every position it returns is solvable by replaying the reverse moves.
type ReverseGenerator struct {
	// Attempts bounds the number of restarts when a walk gets stuck before
	// reaching the requested peg count.
	Attempts int
}

// NewReverseGenerator wires a generator with the default restart budget.
func NewReverseGenerator() *ReverseGenerator {
	return &ReverseGenerator{Attempts: 64}
}

// Note: The Generate method is implemented in reverse.go.
