package usecase

import (
	"context"

	"github.com/pegsolitaire/pegsolitaire/internal/domain"
	"github.com/pegsolitaire/pegsolitaire/internal/ports"
	"github.com/pegsolitaire/pegsolitaire/internal/session"
)

// GameView is a snapshot of a game safe to hand out after the store lock is released.
type GameView struct {
	ID         string          `json:"id"`
	Pattern    string          `json:"pattern"`
	Initial    domain.PegSet   `json:"initial"`
	Started    bool            `json:"started"`
	Index      int             `json:"index"`
	History    []session.Entry `json:"history,omitempty"`
	Current    domain.PegSet   `json:"current"`
	LegalMoves []domain.Move   `json:"legalMoves"`
	Cleared    bool            `json:"cleared"`
	Stuck      bool            `json:"stuck"`
	CanUndo    bool            `json:"canUndo"`
	CanRedo    bool            `json:"canRedo"`
}

func viewOf(g *session.Game) GameView {
	v := GameView{
		ID:      g.ID,
		Pattern: g.Pattern.Name,
		Initial: g.Initial.Clone(),
		Current: g.Initial.Clone(),
	}
	if !g.Started() {
		v.LegalMoves = domain.LegalMoves(g.Pattern.Layout, g.Initial)
		return v
	}
	h := g.History
	v.Started = true
	v.Index = h.Index()
	v.History = h.Entries()
	v.Current = h.Current().Pegs.Clone()
	v.LegalMoves = h.LegalMoves()
	v.Cleared = h.Cleared()
	v.Stuck = h.Stuck()
	v.CanUndo = h.CanUndo()
	v.CanRedo = h.CanRedo()
	return v
}

func (u *Service) games() (*session.Store, error) {
	if u.Games == nil {
		return nil, errNotConfigured
	}
	return u.Games, nil
}

// update applies fn to game id and returns the resulting view.
func (u *Service) update(id string, fn func(g *session.Game) error) (GameView, error) {
	st, err := u.games()
	if err != nil {
		return GameView{}, err
	}
	var v GameView
	err = st.Update(id, func(g *session.Game) error {
		if err := fn(g); err != nil {
			return err
		}
		v = viewOf(g)
		return nil
	})
	return v, err
}

// play is update for operations that need a started game.
func (u *Service) play(id string, fn func(h *session.History) error) (GameView, error) {
	return u.update(id, func(g *session.Game) error {
		h, err := g.Play()
		if err != nil {
			return err
		}
		return fn(h)
	})
}

// NewGame opens the editor for pattern with every hole filled.
func (u *Service) NewGame(pattern string) (GameView, error) {
	st, err := u.games()
	if err != nil {
		return GameView{}, err
	}
	p, err := u.Pattern(pattern)
	if err != nil {
		return GameView{}, err
	}
	g := st.Create(p)
	return u.Game(g.ID)
}

func (u *Service) Game(id string) (GameView, error) {
	return u.update(id, func(*session.Game) error { return nil })
}

func (u *Service) Toggle(id string, h domain.Hole) (GameView, error) {
	return u.update(id, func(g *session.Game) error { return g.Toggle(h) })
}

func (u *Service) ToggleFull(id string) (GameView, error) {
	return u.update(id, func(g *session.Game) error {
		g.ToggleFull()
		return nil
	})
}

func (u *Service) SetInitial(id string, pegs domain.PegSet) (GameView, error) {
	return u.update(id, func(g *session.Game) error { return g.SetInitial(pegs) })
}

func (u *Service) Start(id string) (GameView, error) {
	return u.update(id, func(g *session.Game) error { return g.Start() })
}

func (u *Service) Move(id string, m domain.Move) (GameView, error) {
	return u.play(id, func(h *session.History) error { return h.Apply(m) })
}

// Step plays the first legal move. A stuck or cleared game is returned unchanged.
func (u *Service) Step(id string) (GameView, error) {
	return u.play(id, func(h *session.History) error {
		h.Step()
		return nil
	})
}

func (u *Service) Undo(id string) (GameView, error) {
	return u.play(id, func(h *session.History) error {
		h.Undo()
		return nil
	})
}

func (u *Service) Redo(id string) (GameView, error) {
	return u.play(id, func(h *session.History) error {
		h.Redo()
		return nil
	})
}

// AutoClear solves from the current position and appends the solution to the
// history. The store lock is not held while searching; if the game moved in
// the meantime ErrConflict is returned and the game is left as it is.
func (u *Service) AutoClear(ctx context.Context, id string) (GameView, domain.Solution, ports.Stats, error) {
	if u.Solver == nil {
		return GameView{}, domain.Solution{}, ports.Stats{}, errNotConfigured
	}
	var req ports.SolveRequest
	var key string
	if _, err := u.play(id, func(h *session.History) error {
		cur := h.Current().Pegs
		req = ports.SolveRequest{Layout: h.Layout(), Pegs: cur.Clone()}
		key = cur.Key()
		return nil
	}); err != nil {
		return GameView{}, domain.Solution{}, ports.Stats{}, err
	}

	sol, st, err := u.solve(ctx, req)
	if err != nil {
		return GameView{}, sol, st, err
	}
	if !sol.Found {
		v, err := u.Game(id)
		return v, sol, st, err
	}
	v, err := u.play(id, func(h *session.History) error {
		if h.Current().Pegs.Key() != key {
			return ErrConflict
		}
		return h.AppendPath(sol.Moves)
	})
	return v, sol, st, err
}

func (u *Service) EndGame(id string) bool {
	if u.Games == nil {
		return false
	}
	return u.Games.Delete(id)
}
