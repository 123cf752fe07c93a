package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pegsolitaire/pegsolitaire/internal/domain"
	"github.com/pegsolitaire/pegsolitaire/internal/ports"
	"github.com/pegsolitaire/pegsolitaire/internal/session"
)

type Service struct {
	Solver    ports.Solver
	Generator ports.Generator
	Validator ports.Validator
	Hinter    ports.Hinter
	Patterns  ports.Patterns
	Games     *session.Store
	// SolveTimeout bounds each search; zero means no limit beyond the caller's ctx.
	SolveTimeout time.Duration
}

func NewService(s ports.Solver, g ports.Generator, v ports.Validator, h ports.Hinter, p ports.Patterns, games *session.Store) *Service {
	return &Service{Solver: s, Generator: g, Validator: v, Hinter: h, Patterns: p, Games: games}
}

var (
	errNotConfigured = errors.New("usecase dependency not configured")
	// ErrUnknownPattern is returned when no pattern matches a name.
	ErrUnknownPattern = errors.New("unknown pattern")
	// ErrConflict is returned when a game changed while its solve was running.
	ErrConflict = errors.New("game changed during solve")
)

// Pattern resolves a pattern by name or slug; empty selects the default.
func (u *Service) Pattern(name string) (domain.Pattern, error) {
	if u.Patterns == nil {
		return domain.Pattern{}, errNotConfigured
	}
	p, ok := u.Patterns.Lookup(name)
	if !ok {
		return domain.Pattern{}, fmt.Errorf("%w: %q", ErrUnknownPattern, name)
	}
	return p, nil
}

func (u *Service) ListPatterns() ([]domain.Pattern, error) {
	if u.Patterns == nil {
		return nil, errNotConfigured
	}
	return u.Patterns.List(), nil
}

func (u *Service) checkPegs(ctx context.Context, l *domain.Layout, pegs domain.PegSet) error {
	if u.Validator == nil {
		return errNotConfigured
	}
	ok, invalid, err := u.Validator.Validate(ctx, l, pegs)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("holes %v: %w", invalid, domain.ErrInvalidPegs)
	}
	return nil
}

func (u *Service) Validate(ctx context.Context, pattern string, pegs domain.PegSet) (bool, []domain.Hole, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	p, err := u.Pattern(pattern)
	if err != nil {
		return false, nil, err
	}
	return u.Validator.Validate(ctx, p.Layout, pegs)
}

func (u *Service) LegalMoves(ctx context.Context, pattern string, pegs domain.PegSet) ([]domain.Move, error) {
	p, err := u.Pattern(pattern)
	if err != nil {
		return nil, err
	}
	if err := u.checkPegs(ctx, p.Layout, pegs); err != nil {
		return nil, err
	}
	return domain.LegalMoves(p.Layout, pegs), nil
}

// Apply plays m on pegs after checking it; the input set is not modified.
func (u *Service) Apply(ctx context.Context, pattern string, pegs domain.PegSet, m domain.Move) (domain.PegSet, error) {
	if u.Validator == nil {
		return nil, errNotConfigured
	}
	p, err := u.Pattern(pattern)
	if err != nil {
		return nil, err
	}
	if err := u.Validator.CheckMove(p.Layout, pegs, m); err != nil {
		return nil, err
	}
	return domain.Apply(pegs, m), nil
}

func (u *Service) Solve(ctx context.Context, pattern string, pegs domain.PegSet, target domain.Hole) (domain.Solution, ports.Stats, error) {
	if u.Solver == nil {
		return domain.Solution{}, ports.Stats{}, errNotConfigured
	}
	p, err := u.Pattern(pattern)
	if err != nil {
		return domain.Solution{}, ports.Stats{}, err
	}
	return u.solve(ctx, ports.SolveRequest{Layout: p.Layout, Pegs: pegs, Target: target})
}

func (u *Service) solve(ctx context.Context, req ports.SolveRequest) (domain.Solution, ports.Stats, error) {
	if u.SolveTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, u.SolveTimeout)
		defer cancel()
	}
	return u.Solver.Solve(ctx, req)
}

func (u *Service) Hint(ctx context.Context, pattern string, pegs domain.PegSet) (domain.Hint, bool, error) {
	if u.Hinter == nil {
		return domain.Hint{}, false, errNotConfigured
	}
	p, err := u.Pattern(pattern)
	if err != nil {
		return domain.Hint{}, false, err
	}
	if err := u.checkPegs(ctx, p.Layout, pegs); err != nil {
		return domain.Hint{}, false, err
	}
	return u.Hinter.Hint(ctx, p.Layout, pegs)
}

func (u *Service) Generate(ctx context.Context, pattern string, seed int64, d domain.Difficulty, target domain.Hole) (*domain.Puzzle, ports.Stats, error) {
	if u.Generator == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	p, err := u.Pattern(pattern)
	if err != nil {
		return nil, ports.Stats{}, err
	}
	return u.Generator.Generate(ctx, p, seed, d, target)
}
