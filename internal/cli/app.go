package cli

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/pegsolitaire/pegsolitaire/internal/catalog"
	"github.com/pegsolitaire/pegsolitaire/internal/config"
	"github.com/pegsolitaire/pegsolitaire/internal/generator"
	"github.com/pegsolitaire/pegsolitaire/internal/hint"
	"github.com/pegsolitaire/pegsolitaire/internal/infrastructure/storage"
	"github.com/pegsolitaire/pegsolitaire/internal/ports"
	"github.com/pegsolitaire/pegsolitaire/internal/session"
	"github.com/pegsolitaire/pegsolitaire/internal/solver"
	"github.com/pegsolitaire/pegsolitaire/internal/usecase"
	"github.com/pegsolitaire/pegsolitaire/internal/validator"
)

// app holds the wired service for one command invocation.
type app struct {
	svc  *usecase.Service
	pool *solver.Pooled
}

func (a *app) Close() {
	if a.pool != nil {
		a.pool.Stop()
	}
}

// newApp wires providers into a usecase.Service according to c.
func newApp(ctx context.Context, c *config.Config) (*app, error) {
	cat, err := loadCatalog(ctx, c.Patterns)
	if err != nil {
		return nil, err
	}
	pool := solver.NewPooled(newSolver(c.Solver.Kind), c.Solver.Workers, c.Solver.Queue)
	svc := usecase.NewService(pool, generator.NewReverseGenerator(), validator.New(), hint.NewFirstMove(), cat, session.NewStore())
	svc.SolveTimeout = c.Solver.SolveTimeout()
	return &app{svc: svc, pool: pool}, nil
}

func newSolver(kind string) ports.Solver {
	if strings.EqualFold(kind, config.SolverStack) {
		return solver.NewStack()
	}
	return solver.NewRecursive()
}

// loadCatalog returns the built-in patterns plus those from the config file
// and the pattern directory, in that order.
func loadCatalog(ctx context.Context, pc config.PatternsConfig) (*catalog.Catalog, error) {
	cat := catalog.Builtin()
	for _, spec := range pc.Custom {
		if err := cat.Add(spec.Name, spec.Shape); err != nil {
			return nil, errors.Wrap(err, "config pattern")
		}
	}
	if pc.Dir == "" {
		return cat, nil
	}
	specs, err := storage.NewFS(pc.Dir).List(ctx)
	if err != nil {
		return nil, err
	}
	for _, spec := range specs {
		if err := cat.Add(spec.Name, spec.Shape); err != nil {
			zap.S().Warnf("skipping pattern %q from %s: %v", spec.Name, pc.Dir, err)
		}
	}
	return cat, nil
}
