package solver

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/pegsolitaire/pegsolitaire/internal/domain"
	"github.com/pegsolitaire/pegsolitaire/internal/ports"
)

// Stack is the same memoized depth-first search as Recursive, driven by an
// explicit frame stack instead of the call stack. Both visit moves in the
// same order and so return the same first solution.
type Stack struct{}

func NewStack() *Stack { return &Stack{} }

// frame is one expanded position on the search path.
type frame struct {
	pegs  domain.PegSet
	key   string
	moves []domain.Move
	next  int
}

func (st *Stack) Solve(ctx context.Context, req ports.SolveRequest) (domain.Solution, ports.Stats, error) {
	start := time.Now()
	s, err := newSearch(ctx, req)
	if err != nil {
		return domain.Solution{}, ports.Stats{}, err
	}
	if req.Pegs.Len() == 0 {
		return domain.Solution{}, ports.Stats{Duration: time.Since(start)}, nil
	}

	path, found := s.runStack(req.Pegs)
	s.stats.Duration = time.Since(start)
	if err := ctx.Err(); err != nil {
		return domain.Solution{}, s.stats, err
	}
	zap.S().Debugf("stack solve: pegs=%d found=%t moves=%d nodes=%d memo_hits=%d dur=%s",
		req.Pegs.Len(), found, len(path), s.stats.Nodes, s.stats.MemoHits, s.stats.Duration)
	if !found {
		return domain.Solution{}, s.stats, nil
	}
	return domain.Solution{Found: true, Moves: path}, s.stats, nil
}

func (s *search) push(stack []*frame, pegs domain.PegSet, key string) []*frame {
	s.stats.Nodes++
	return append(stack, &frame{
		pegs:  pegs,
		key:   key,
		moves: domain.LegalMoves(s.layout, pegs),
	})
}

func (s *search) runStack(root domain.PegSet) ([]domain.Move, bool) {
	rootKey := root.Key()
	if v, ok := s.resolve(root, rootKey); ok {
		if v.solved {
			return append([]domain.Move{}, v.path...), true
		}
		return nil, false
	}

	stack := s.push(nil, root, rootKey)
	// taken[i] is the move leading from stack[i] to stack[i+1].
	var taken []domain.Move
	for len(stack) > 0 {
		if s.ctx.Err() != nil {
			return nil, false
		}
		top := stack[len(stack)-1]
		if top.next == len(top.moves) {
			s.memo[top.key] = verdict{}
			stack = stack[:len(stack)-1]
			if len(taken) > 0 {
				taken = taken[:len(taken)-1]
			}
			continue
		}
		m := top.moves[top.next]
		top.next++

		child := domain.Apply(top.pegs, m)
		key := child.Key()
		v, ok := s.resolve(child, key)
		if !ok {
			taken = append(taken, m)
			stack = s.push(stack, child, key)
			continue
		}
		if !v.solved {
			continue
		}

		path := make([]domain.Move, 0, len(taken)+1+len(v.path))
		path = append(path, taken...)
		path = append(path, m)
		path = append(path, v.path...)
		for i, f := range stack {
			s.memo[f.key] = verdict{solved: true, path: path[i:]}
		}
		return path, true
	}
	return nil, false
}
