package solver

import (
	"context"
	"errors"

	"github.com/alitto/pond"
	"go.uber.org/atomic"
	"go.uber.org/zap"

	"github.com/pegsolitaire/pegsolitaire/internal/domain"
	"github.com/pegsolitaire/pegsolitaire/internal/ports"
)

// ErrBusy is returned when every worker is busy and the queue is full.
var ErrBusy = errors.New("solver pool is busy")

// Pooled runs another Solver on a bounded worker pool so callers never search
// on their own goroutine. Solve still blocks until the result is ready or ctx
// is done; the inner solver observes the same ctx and stops early.
type Pooled struct {
	inner    ports.Solver
	pool     *pond.WorkerPool
	inFlight *atomic.Int64
	finished *atomic.Int64
}

func NewPooled(inner ports.Solver, workers, queue int) *Pooled {
	if workers < 1 {
		workers = 1
	}
	if queue < 0 {
		queue = 0
	}
	return &Pooled{
		inner:    inner,
		pool:     pond.New(workers, queue, pond.Strategy(pond.Lazy())),
		inFlight: atomic.NewInt64(0),
		finished: atomic.NewInt64(0),
	}
}

type pooledResult struct {
	sol   domain.Solution
	stats ports.Stats
	err   error
}

func (p *Pooled) Solve(ctx context.Context, req ports.SolveRequest) (domain.Solution, ports.Stats, error) {
	done := make(chan pooledResult, 1)
	ok := p.pool.TrySubmit(func() {
		if err := ctx.Err(); err != nil {
			done <- pooledResult{err: err}
			return
		}
		p.inFlight.Inc()
		sol, st, err := p.inner.Solve(ctx, req)
		p.inFlight.Dec()
		p.finished.Inc()
		done <- pooledResult{sol: sol, stats: st, err: err}
	})
	if !ok {
		zap.S().Warnf("solver pool rejected job: in_flight=%d", p.inFlight.Load())
		return domain.Solution{}, ports.Stats{}, ErrBusy
	}

	select {
	case r := <-done:
		return r.sol, r.stats, r.err
	case <-ctx.Done():
		return domain.Solution{}, ports.Stats{}, ctx.Err()
	}
}

// InFlight is the number of searches currently running.
func (p *Pooled) InFlight() int64 { return p.inFlight.Load() }

// Finished is the number of searches completed since creation.
func (p *Pooled) Finished() int64 { return p.finished.Load() }

// Stop waits for running searches and releases the workers.
func (p *Pooled) Stop() {
	p.pool.StopAndWait()
}
