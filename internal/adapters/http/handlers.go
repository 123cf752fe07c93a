package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/pegsolitaire/pegsolitaire/internal/domain"
	"github.com/pegsolitaire/pegsolitaire/internal/session"
	"github.com/pegsolitaire/pegsolitaire/internal/solver"
	"github.com/pegsolitaire/pegsolitaire/internal/usecase"
)

type Handler struct {
	UC *usecase.Service
}

func New(uc *usecase.Service) *Handler { return &Handler{UC: uc} }

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/patterns", h.handlePatterns)
	mux.HandleFunc("/api/moves", h.handleMoves)
	mux.HandleFunc("/api/apply", h.handleApply)
	mux.HandleFunc("/api/solve", h.handleSolve)
	mux.HandleFunc("/api/hint", h.handleHint)
	mux.HandleFunc("/api/generate", h.handleGenerate)
	mux.HandleFunc("/api/validate", h.handleValidate)

	mux.HandleFunc("/api/games", h.handleNewGame)
	mux.HandleFunc("/api/games/get", h.gameOp(func(uc *usecase.Service, r *http.Request, req gameReq) (usecase.GameView, error) {
		return uc.Game(req.ID)
	}))
	mux.HandleFunc("/api/games/toggle", h.gameOp(func(uc *usecase.Service, r *http.Request, req gameReq) (usecase.GameView, error) {
		return uc.Toggle(req.ID, req.Hole)
	}))
	mux.HandleFunc("/api/games/fill", h.gameOp(func(uc *usecase.Service, r *http.Request, req gameReq) (usecase.GameView, error) {
		return uc.ToggleFull(req.ID)
	}))
	mux.HandleFunc("/api/games/start", h.gameOp(func(uc *usecase.Service, r *http.Request, req gameReq) (usecase.GameView, error) {
		return uc.Start(req.ID)
	}))
	mux.HandleFunc("/api/games/move", h.gameOp(func(uc *usecase.Service, r *http.Request, req gameReq) (usecase.GameView, error) {
		if req.Move == nil {
			return usecase.GameView{}, errMissingMove
		}
		return uc.Move(req.ID, *req.Move)
	}))
	mux.HandleFunc("/api/games/step", h.gameOp(func(uc *usecase.Service, r *http.Request, req gameReq) (usecase.GameView, error) {
		return uc.Step(req.ID)
	}))
	mux.HandleFunc("/api/games/undo", h.gameOp(func(uc *usecase.Service, r *http.Request, req gameReq) (usecase.GameView, error) {
		return uc.Undo(req.ID)
	}))
	mux.HandleFunc("/api/games/redo", h.gameOp(func(uc *usecase.Service, r *http.Request, req gameReq) (usecase.GameView, error) {
		return uc.Redo(req.ID)
	}))
	mux.HandleFunc("/api/games/autoclear", h.handleAutoClear)
	mux.HandleFunc("/api/games/delete", h.handleDeleteGame)
}

var (
	errMissingMove  = errors.New("missing move")
	errMissingID    = errors.New("missing id")
	errBadSeedValue = errors.New("seed must not be negative")
)

type errorResp struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.S().Debugf("write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusFor(err), errorResp{Error: err.Error()})
}

// statusFor maps service errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, usecase.ErrUnknownPattern), errors.Is(err, session.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidMove), errors.Is(err, domain.ErrInvalidPegs):
		return http.StatusUnprocessableEntity
	case errors.Is(err, session.ErrNotStarted), errors.Is(err, session.ErrEmptyBoard), errors.Is(err, usecase.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, errMissingMove), errors.Is(err, errMissingID), errors.Is(err, errBadSeedValue):
		return http.StatusBadRequest
	case errors.Is(err, solver.ErrBusy):
		return http.StatusServiceUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func allow(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method != method {
		w.Header().Set("Allow", method)
		writeJSON(w, http.StatusMethodNotAllowed, errorResp{Error: "method not allowed"})
		return false
	}
	return true
}

// decode reads a JSON body into v. An empty body leaves v at its zero value.
func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		writeJSON(w, http.StatusBadRequest, errorResp{Error: "invalid JSON: " + err.Error()})
		return false
	}
	return true
}

// ---- Patterns ----

type patternResp struct {
	Name  string          `json:"name"`
	Slug  string          `json:"slug"`
	Shape domain.Shape    `json:"shape"`
	Size  int             `json:"size"`
	Grid  [][]domain.Hole `json:"grid"`
}

type patternsResp struct {
	Patterns []patternResp `json:"patterns"`
}

func (h *Handler) handlePatterns(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodGet) {
		return
	}
	ps, err := h.UC.ListPatterns()
	if err != nil {
		writeError(w, err)
		return
	}
	out := patternsResp{Patterns: make([]patternResp, 0, len(ps))}
	for _, p := range ps {
		out.Patterns = append(out.Patterns, patternResp{
			Name:  p.Name,
			Slug:  p.Slug,
			Shape: p.Shape,
			Size:  p.Layout.Size(),
			Grid:  p.Layout.Grid(),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// ---- Moves / Apply ----

type boardReq struct {
	Pattern string        `json:"pattern,omitempty"`
	Pegs    domain.PegSet `json:"pegs"`
}

type movesResp struct {
	Moves []domain.Move `json:"moves"`
}

func (h *Handler) handleMoves(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodPost) {
		return
	}
	var req boardReq
	if !decode(w, r, &req) {
		return
	}
	moves, err := h.UC.LegalMoves(r.Context(), req.Pattern, req.Pegs)
	if err != nil {
		writeError(w, err)
		return
	}
	if moves == nil {
		moves = []domain.Move{}
	}
	writeJSON(w, http.StatusOK, movesResp{Moves: moves})
}

type applyReq struct {
	Pattern string        `json:"pattern,omitempty"`
	Pegs    domain.PegSet `json:"pegs"`
	Move    *domain.Move  `json:"move"`
}

type applyResp struct {
	Pegs    domain.PegSet `json:"pegs"`
	Cleared bool          `json:"cleared"`
}

func (h *Handler) handleApply(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodPost) {
		return
	}
	var req applyReq
	if !decode(w, r, &req) {
		return
	}
	if req.Move == nil {
		writeError(w, errMissingMove)
		return
	}
	next, err := h.UC.Apply(r.Context(), req.Pattern, req.Pegs, *req.Move)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, applyResp{Pegs: next, Cleared: next.Len() == 1})
}

// ---- Solve ----

type solveReq struct {
	Pattern string        `json:"pattern,omitempty"`
	Pegs    domain.PegSet `json:"pegs"`
	Target  domain.Hole   `json:"target,omitempty"`
}

type solveResp struct {
	Found      bool          `json:"found"`
	Moves      []domain.Move `json:"moves"`
	Nodes      int           `json:"nodes"`
	MemoHits   int           `json:"memoHits"`
	DurationMs int64         `json:"durationMs"`
}

func (h *Handler) handleSolve(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodPost) {
		return
	}
	var req solveReq
	if !decode(w, r, &req) {
		return
	}
	sol, st, err := h.UC.Solve(r.Context(), req.Pattern, req.Pegs, req.Target)
	if err != nil {
		writeError(w, err)
		return
	}
	moves := sol.Moves
	if moves == nil {
		moves = []domain.Move{}
	}
	writeJSON(w, http.StatusOK, solveResp{
		Found:      sol.Found,
		Moves:      moves,
		Nodes:      st.Nodes,
		MemoHits:   st.MemoHits,
		DurationMs: st.Duration.Milliseconds(),
	})
}

// ---- Hint ----

type hintResp struct {
	Found bool         `json:"found"`
	Hint  *domain.Hint `json:"hint,omitempty"`
}

func (h *Handler) handleHint(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodPost) {
		return
	}
	var req boardReq
	if !decode(w, r, &req) {
		return
	}
	hh, ok, err := h.UC.Hint(r.Context(), req.Pattern, req.Pegs)
	if err != nil {
		writeError(w, err)
		return
	}
	resp := hintResp{Found: ok}
	if ok {
		resp.Hint = &hh
	}
	writeJSON(w, http.StatusOK, resp)
}

// ---- Generate ----

type generateReq struct {
	Pattern    string      `json:"pattern,omitempty"`
	Difficulty string      `json:"difficulty,omitempty"`
	Seed       int64       `json:"seed,omitempty"`
	Target     domain.Hole `json:"target,omitempty"`
}

type generateResp struct {
	Puzzle     *domain.Puzzle `json:"puzzle"`
	Difficulty string         `json:"difficulty"`
	DurationMs int64          `json:"durationMs"`
	Nodes      int            `json:"nodes"`
}

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodPost) {
		return
	}
	var req generateReq
	if !decode(w, r, &req) {
		return
	}
	if req.Seed < 0 {
		writeError(w, errBadSeedValue)
		return
	}
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	diff := domain.ParseDifficulty(req.Difficulty)
	p, st, err := h.UC.Generate(r.Context(), req.Pattern, seed, diff, req.Target)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, generateResp{
		Puzzle:     p,
		Difficulty: diff.String(),
		DurationMs: st.Duration.Milliseconds(),
		Nodes:      st.Nodes,
	})
}

// ---- Validate ----

type validateResp struct {
	OK      bool          `json:"ok"`
	Invalid []domain.Hole `json:"invalid,omitempty"`
}

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodPost) {
		return
	}
	var req boardReq
	if !decode(w, r, &req) {
		return
	}
	ok, invalid, err := h.UC.Validate(r.Context(), req.Pattern, req.Pegs)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, validateResp{OK: ok, Invalid: invalid})
}

// ---- Games ----

type newGameReq struct {
	Pattern string `json:"pattern,omitempty"`
	// Pegs optionally replaces the full starting placement.
	Pegs domain.PegSet `json:"pegs,omitempty"`
}

func (h *Handler) handleNewGame(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodPost) {
		return
	}
	var req newGameReq
	if !decode(w, r, &req) {
		return
	}
	v, err := h.UC.NewGame(req.Pattern)
	if err != nil {
		writeError(w, err)
		return
	}
	if req.Pegs != nil {
		id := v.ID
		if v, err = h.UC.SetInitial(id, req.Pegs); err != nil {
			h.UC.EndGame(id)
			writeError(w, err)
			return
		}
	}
	writeJSON(w, http.StatusCreated, v)
}

type gameReq struct {
	ID   string       `json:"id"`
	Hole domain.Hole  `json:"hole,omitempty"`
	Move *domain.Move `json:"move,omitempty"`
}

type gameFunc func(uc *usecase.Service, r *http.Request, req gameReq) (usecase.GameView, error)

// gameOp wraps a single-game operation: POST, decode, require id, respond with the view.
func (h *Handler) gameOp(fn gameFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := h.gameRequest(w, r)
		if !ok {
			return
		}
		v, err := fn(h.UC, r, req)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, v)
	}
}

func (h *Handler) gameRequest(w http.ResponseWriter, r *http.Request) (gameReq, bool) {
	var req gameReq
	if !allow(w, r, http.MethodPost) || !decode(w, r, &req) {
		return req, false
	}
	if req.ID == "" {
		writeError(w, errMissingID)
		return req, false
	}
	return req, true
}

type autoClearResp struct {
	Game       usecase.GameView `json:"game"`
	Found      bool             `json:"found"`
	Moves      []domain.Move    `json:"moves"`
	Nodes      int              `json:"nodes"`
	DurationMs int64            `json:"durationMs"`
}

func (h *Handler) handleAutoClear(w http.ResponseWriter, r *http.Request) {
	req, ok := h.gameRequest(w, r)
	if !ok {
		return
	}
	v, sol, st, err := h.UC.AutoClear(r.Context(), req.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	moves := sol.Moves
	if moves == nil {
		moves = []domain.Move{}
	}
	writeJSON(w, http.StatusOK, autoClearResp{
		Game:       v,
		Found:      sol.Found,
		Moves:      moves,
		Nodes:      st.Nodes,
		DurationMs: st.Duration.Milliseconds(),
	})
}

type deleteResp struct {
	Deleted bool `json:"deleted"`
}

func (h *Handler) handleDeleteGame(w http.ResponseWriter, r *http.Request) {
	req, ok := h.gameRequest(w, r)
	if !ok {
		return
	}
	if !h.UC.EndGame(req.ID) {
		writeError(w, session.ErrNotFound)
		return
	}
	writeJSON(w, http.StatusOK, deleteResp{Deleted: true})
}
