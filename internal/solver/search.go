package solver

import (
	"context"
	"errors"
	"fmt"

	"github.com/pegsolitaire/pegsolitaire/internal/domain"
	"github.com/pegsolitaire/pegsolitaire/internal/ports"
)

var errNoLayout = errors.New("solve: nil layout")

// verdict is a memoized search result for one position.
type verdict struct {
	solved bool
	// path leads from the position to the goal; only set when solved.
	path []domain.Move
}

// search is the state of a single solve: the memo table never outlives it.
type search struct {
	ctx    context.Context
	layout *domain.Layout
	target domain.Hole
	memo   map[string]verdict
	stats  ports.Stats
}

func newSearch(ctx context.Context, req ports.SolveRequest) (*search, error) {
	if req.Layout == nil {
		return nil, errNoLayout
	}
	for h := range req.Pegs {
		if !req.Layout.Contains(h) {
			return nil, fmt.Errorf("solve: hole %d: %w", h, domain.ErrInvalidPegs)
		}
	}
	if req.Target != domain.NoHole && !req.Layout.Contains(req.Target) {
		return nil, fmt.Errorf("solve: target %d: %w", req.Target, domain.ErrInvalidPegs)
	}
	return &search{
		ctx:    ctx,
		layout: req.Layout,
		target: req.Target,
		memo:   make(map[string]verdict),
	}, nil
}

// resolve answers a position without expanding it, from the memo or because
// it is terminal. ok is false when the position must be searched.
func (s *search) resolve(pegs domain.PegSet, key string) (v verdict, ok bool) {
	if v, ok := s.memo[key]; ok {
		s.stats.MemoHits++
		return v, true
	}
	only, single := pegs.Only()
	if !single {
		return verdict{}, false
	}
	s.stats.Nodes++
	if s.target == domain.NoHole || only == s.target {
		return verdict{solved: true}, true
	}
	s.memo[key] = verdict{}
	return verdict{}, true
}
