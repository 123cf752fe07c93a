package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pegsolitaire/pegsolitaire/internal/domain"
	"github.com/pegsolitaire/pegsolitaire/internal/usecase"
)

var (
	playPattern string
	playPos     positionFlags
)

const playHelp = `Play a game on the terminal. The game opens in the editor: toggle holes
to set up the starting placement, then start playing.

Commands:
  toggle N       add or remove the peg in hole N (editor)
  fill           fill every hole, or empty a full board (editor)
  start          start playing from the placement
  FROM TO        jump, e.g. "5 17"; FROM OVER TO also works
  moves          list legal jumps
  hint           suggest a jump
  step           play the first legal jump
  auto           solve from here and play the solution
  undo, redo     move through the history
  history        list the history
  show           draw the board
  quit           leave`

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play interactively",
	Long:  playHelp,
	Args:  cobra.NoArgs,
	RunE:  runPlay,
}

func init() {
	addPositionFlags(playCmd, &playPattern, &playPos)
}

func runPlay(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	v, err := a.svc.NewGame(playPattern)
	if err != nil {
		return err
	}
	defer a.svc.EndGame(v.ID)

	p, err := a.svc.Pattern(v.Pattern)
	if err != nil {
		return err
	}
	pegs, err := playPos.resolve(p.Layout)
	if err != nil {
		return err
	}
	if _, err := a.svc.SetInitial(v.ID, pegs); err != nil {
		return err
	}
	s := &playSession{svc: a.svc, id: v.ID, layout: p.Layout, out: cmd.OutOrStdout(), errOut: cmd.ErrOrStderr()}
	return s.run(cmd.Context(), cmd.InOrStdin())
}

// playSession is a line-oriented game loop over a service game.
type playSession struct {
	svc    *usecase.Service
	id     string
	layout *domain.Layout
	out    io.Writer
	errOut io.Writer
	// quiet disables the spinner during auto.
	quiet bool
}

func (s *playSession) run(ctx context.Context, in io.Reader) error {
	v, err := s.svc.Game(s.id)
	if err != nil {
		return err
	}
	s.draw(v, nil)

	sc := bufio.NewScanner(in)
	for {
		fmt.Fprint(s.out, "> ")
		if !sc.Scan() {
			fmt.Fprintln(s.out)
			return sc.Err()
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		quit, err := s.exec(ctx, strings.Fields(line))
		if err != nil {
			fromColor.Fprintf(s.out, "%v\n", err)
		}
		if quit {
			return nil
		}
	}
}

// exec runs one command. quit is true when the session should end.
func (s *playSession) exec(ctx context.Context, fields []string) (quit bool, err error) {
	var v usecase.GameView
	var last *domain.Move
	switch cmd := strings.ToLower(fields[0]); cmd {
	case "quit", "exit", "q":
		return true, nil
	case "help", "?":
		fmt.Fprintln(s.out, playHelp)
		return false, nil
	case "show":
		v, err = s.svc.Game(s.id)
	case "toggle", "t":
		if len(fields) != 2 {
			return false, fmt.Errorf("usage: toggle N")
		}
		h, perr := parseHole(fields[1])
		if perr != nil {
			return false, perr
		}
		v, err = s.svc.Toggle(s.id, h)
	case "fill":
		v, err = s.svc.ToggleFull(s.id)
	case "start":
		v, err = s.svc.Start(s.id)
	case "moves", "m":
		v, err = s.svc.Game(s.id)
		if err == nil {
			renderMoves(s.out, v.LegalMoves)
		}
		return false, err
	case "hint":
		return false, s.hint(ctx)
	case "step", "s":
		v, err = s.svc.Step(s.id)
		last = lastMove(v)
	case "auto", "a":
		return false, s.auto(ctx)
	case "undo", "u":
		v, err = s.svc.Undo(s.id)
	case "redo", "r":
		v, err = s.svc.Redo(s.id)
		last = lastMove(v)
	case "history", "h":
		v, err = s.svc.Game(s.id)
		if err == nil {
			s.history(v)
		}
		return false, err
	default:
		if _, perr := parseHole(fields[0]); perr != nil {
			return false, fmt.Errorf("unknown command %q (try help)", cmd)
		}
		cur, gerr := s.svc.Game(s.id)
		if gerr != nil {
			return false, gerr
		}
		m, perr := parseMoveArgs(fields, cur.LegalMoves)
		if perr != nil {
			return false, perr
		}
		v, err = s.svc.Move(s.id, m)
		last = &m
	}
	if err != nil {
		return false, err
	}
	s.draw(v, last)
	return false, nil
}

func lastMove(v usecase.GameView) *domain.Move {
	if v.Index == 0 || v.Index >= len(v.History) {
		return nil
	}
	return v.History[v.Index].Move
}

func (s *playSession) hint(ctx context.Context) error {
	v, err := s.svc.Game(s.id)
	if err != nil {
		return err
	}
	h, ok, err := s.svc.Hint(ctx, v.Pattern, v.Current)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(s.out, "no legal moves")
		return nil
	}
	fmt.Fprintln(s.out, h.Message)
	return nil
}

func (s *playSession) auto(ctx context.Context) error {
	stop := func() {}
	if !s.quiet {
		stop = startSpinner(s.errOut, "solving")
	}
	v, sol, st, err := s.svc.AutoClear(ctx, s.id)
	stop()
	if err != nil {
		return err
	}
	if !sol.Found {
		fmt.Fprintf(s.out, "no solution from here (%d positions)\n", st.Nodes)
		return nil
	}
	renderMoves(s.out, sol.Moves)
	s.draw(v, lastMove(v))
	return nil
}

func (s *playSession) history(v usecase.GameView) {
	if !v.Started {
		fmt.Fprintln(s.out, "not started")
		return
	}
	for i, e := range v.History {
		marker := "  "
		if i == v.Index {
			marker = "→ "
		}
		desc := "start"
		if e.Move != nil {
			desc = e.Move.String()
		}
		fmt.Fprintf(s.out, "%s%3d. %-14s %2d pegs\n", marker, i, desc, e.Pegs.Len())
	}
}

func (s *playSession) draw(v usecase.GameView, last *domain.Move) {
	renderBoard(s.out, s.layout, v.Current, last)
	switch {
	case !v.Started:
		fmt.Fprintf(s.out, "editing: %d pegs, type start to play\n", v.Initial.Len())
	case v.Cleared:
		toColor.Fprintf(s.out, "cleared in %d jumps\n", v.Index)
	case v.Stuck:
		fromColor.Fprintf(s.out, "stuck with %d pegs\n", v.Current.Len())
	default:
		fmt.Fprintf(s.out, "%d pegs, %d legal moves\n", v.Current.Len(), len(v.LegalMoves))
	}
}
