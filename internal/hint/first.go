package hint

import (
	"context"
	"fmt"

	"github.com/pegsolitaire/pegsolitaire/internal/domain"
)

// FirstMove suggests the first generated legal move. It does not look ahead,
// so following it may lead to a dead end.
type FirstMove struct{}

func NewFirstMove() *FirstMove { return &FirstMove{} }

// Hint returns the first legal move, or false when the position is stuck or cleared.
func (h *FirstMove) Hint(ctx context.Context, l *domain.Layout, pegs domain.PegSet) (domain.Hint, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.Hint{}, false, err
	}
	moves := domain.LegalMoves(l, pegs)
	if len(moves) == 0 {
		return domain.Hint{}, false, nil
	}
	m := moves[0]
	return domain.Hint{
		Move:    m,
		Message: fmt.Sprintf("Jump %d over %d into %d", m.From, m.Over, m.To),
	}, true, nil
}
