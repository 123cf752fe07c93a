package ports

import (
	"context"
	"time"

	"github.com/pegsolitaire/pegsolitaire/internal/domain"
)

//go:generate mockgen -source=./ports.go --destination=../usecase/ports_mock_test.go --package=usecase

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	MemoHits int
	Duration time.Duration
}

// SolveRequest names the position to solve. Target NoHole accepts any final hole.
type SolveRequest struct {
	Layout *domain.Layout
	Pegs   domain.PegSet
	Target domain.Hole
}

// Solver searches for a sequence of moves leaving a single peg.
// A position without solution yields Solution.Found == false and a nil error.
type Solver interface {
	Solve(ctx context.Context, req SolveRequest) (domain.Solution, Stats, error)
}

// Generator creates solvable starting positions at a target difficulty.
type Generator interface {
	Generate(ctx context.Context, p domain.Pattern, seed int64, difficulty domain.Difficulty, target domain.Hole) (*domain.Puzzle, Stats, error)
}

// Validator checks that a peg set fits its layout and that a move is legal.
type Validator interface {
	Validate(ctx context.Context, l *domain.Layout, pegs domain.PegSet) (ok bool, invalid []domain.Hole, err error)
	CheckMove(l *domain.Layout, pegs domain.PegSet, m domain.Move) error
}

// Hinter suggests the next move for a position.
type Hinter interface {
	Hint(ctx context.Context, l *domain.Layout, pegs domain.PegSet) (domain.Hint, bool, error)
}

// Patterns resolves board patterns by name or slug.
type Patterns interface {
	List() []domain.Pattern
	Lookup(name string) (domain.Pattern, bool)
}
