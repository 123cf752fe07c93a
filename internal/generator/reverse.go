package generator

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/pegsolitaire/pegsolitaire/internal/domain"
	"github.com/pegsolitaire/pegsolitaire/internal/ports"
)

// targetPegs is the peg count aimed for on a board of n holes.
func targetPegs(d domain.Difficulty, n int) int {
	var want int
	switch d {
	case domain.Easy:
		want = n / 4
	case domain.Medium:
		want = n / 2
	case domain.Hard:
		want = n * 3 / 4
	default:
		want = n - 1 // Expert
	}
	if want < 2 {
		want = 2
	}
	if want > n-1 {
		want = n - 1
	}
	return want
}

// Generate builds a solvable position on p. When target is NoHole the final
// hole is picked at random. The returned position has at most the difficulty's
// peg count; fewer when every walk got stuck earlier.
func (g *ReverseGenerator) Generate(ctx context.Context, p domain.Pattern, seed int64, diff domain.Difficulty, target domain.Hole) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	l := p.Layout
	if l == nil {
		return nil, ports.Stats{}, errors.New("generate: pattern has no layout")
	}
	if l.Size() < 3 {
		return nil, ports.Stats{}, fmt.Errorf("generate: board %q is too small", p.Name)
	}
	if target != domain.NoHole && !l.Contains(target) {
		return nil, ports.Stats{}, fmt.Errorf("generate: target %d: %w", target, domain.ErrInvalidPegs)
	}

	rng := rand.New(rand.NewSource(seed))
	want := targetPegs(diff, l.Size())
	attempts := g.Attempts
	if attempts < 1 {
		attempts = 1
	}

	var best domain.PegSet
	var bestTarget domain.Hole
	nodes := 0
	for i := 0; i < attempts; i++ {
		if err := ctx.Err(); err != nil {
			return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
		}
		end := target
		if end == domain.NoHole {
			end = domain.Hole(rng.Intn(l.Size()) + 1)
		}
		pegs := domain.NewPegSet(end)
		for pegs.Len() < want {
			rev := domain.ReverseMoves(l, pegs)
			if len(rev) == 0 {
				break
			}
			pegs = domain.Unapply(pegs, rev[rng.Intn(len(rev))])
			nodes++
		}
		if best == nil || pegs.Len() > best.Len() {
			best, bestTarget = pegs, end
		}
		if best.Len() == want {
			break
		}
	}

	zap.S().Debugf("generated %s puzzle on %q: pegs=%d want=%d nodes=%d", diff, p.Name, best.Len(), want, nodes)
	puz := &domain.Puzzle{
		Pattern:    p.Name,
		Seed:       seed,
		Difficulty: diff,
		Pegs:       best,
		Target:     bestTarget,
		CreatedAt:  time.Now().UnixNano(),
	}
	return puz, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}
