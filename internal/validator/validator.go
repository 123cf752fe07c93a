package validator

import (
	"context"

	"github.com/pegsolitaire/pegsolitaire/internal/domain"
)

type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

// Validate reports every peg that is not a hole of l, in ascending order.
func (v *FastValidator) Validate(ctx context.Context, l *domain.Layout, pegs domain.PegSet) (bool, []domain.Hole, error) {
	if err := ctx.Err(); err != nil {
		return false, nil, err
	}
	var invalid []domain.Hole
	for _, h := range pegs.Sorted() {
		if !l.Contains(h) {
			invalid = append(invalid, h)
		}
	}
	return len(invalid) == 0, invalid, nil
}

// CheckMove validates a move against a position; see domain.CheckMove.
func (v *FastValidator) CheckMove(l *domain.Layout, pegs domain.PegSet, m domain.Move) error {
	if ok, _, _ := v.Validate(context.Background(), l, pegs); !ok {
		return domain.ErrInvalidPegs
	}
	return domain.CheckMove(l, pegs, m)
}
