package solver

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/pegsolitaire/pegsolitaire/internal/domain"
	"github.com/pegsolitaire/pegsolitaire/internal/ports"
)

// Recursive is a depth-first solver using native recursion and a memo of
// visited positions.
type Recursive struct{}

func NewRecursive() *Recursive { return &Recursive{} }

func (r *Recursive) Solve(ctx context.Context, req ports.SolveRequest) (domain.Solution, ports.Stats, error) {
	start := time.Now()
	s, err := newSearch(ctx, req)
	if err != nil {
		return domain.Solution{}, ports.Stats{}, err
	}
	if req.Pegs.Len() == 0 {
		return domain.Solution{}, ports.Stats{Duration: time.Since(start)}, nil
	}

	var dfs func(pegs domain.PegSet) ([]domain.Move, bool)
	dfs = func(pegs domain.PegSet) ([]domain.Move, bool) {
		if ctx.Err() != nil {
			return nil, false
		}
		key := pegs.Key()
		if v, ok := s.resolve(pegs, key); ok {
			return v.path, v.solved
		}
		s.stats.Nodes++
		for _, m := range domain.LegalMoves(s.layout, pegs) {
			if rest, ok := dfs(domain.Apply(pegs, m)); ok {
				path := append([]domain.Move{m}, rest...)
				s.memo[key] = verdict{solved: true, path: path}
				return path, true
			}
		}
		s.memo[key] = verdict{}
		return nil, false
	}

	path, found := dfs(req.Pegs)
	s.stats.Duration = time.Since(start)
	if err := ctx.Err(); err != nil {
		return domain.Solution{}, s.stats, err
	}
	zap.S().Debugf("recursive solve: pegs=%d found=%t moves=%d nodes=%d memo_hits=%d dur=%s",
		req.Pegs.Len(), found, len(path), s.stats.Nodes, s.stats.MemoHits, s.stats.Duration)
	if !found {
		return domain.Solution{}, s.stats, nil
	}
	if path == nil {
		path = []domain.Move{}
	}
	return domain.Solution{Found: true, Moves: path}, s.stats, nil
}
