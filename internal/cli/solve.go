package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pegsolitaire/pegsolitaire/internal/domain"
)

var (
	solvePattern string
	solvePos     positionFlags
	solveTarget  int
	solveReplay  bool
	solveQuiet   bool
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Find a sequence of jumps leaving one peg",
	Long: `Search for a sequence of jumps that leaves a single peg, optionally in a
given hole. A position without solution is reported, not treated as an error.

Examples:
  pegsolitaire solve
  pegsolitaire solve --pattern square-25 --pegs 1,2,6,7 --target 3
  pegsolitaire solve --empty 17 --target 17 --replay`,
	Args: cobra.NoArgs,
	RunE: runSolve,
}

func init() {
	addPositionFlags(solveCmd, &solvePattern, &solvePos)
	f := solveCmd.Flags()
	f.IntVarP(&solveTarget, "target", "t", 0, "Hole the last peg must end in (0 for any)")
	f.BoolVar(&solveReplay, "replay", false, "Draw the board after every jump")
	f.BoolVarP(&solveQuiet, "quiet", "q", false, "Hide the progress spinner")
}

func runSolve(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	p, err := a.svc.Pattern(solvePattern)
	if err != nil {
		return err
	}
	pegs, err := solvePos.resolve(p.Layout)
	if err != nil {
		return err
	}

	stop := func() {}
	if !solveQuiet {
		stop = startSpinner(cmd.ErrOrStderr(), "solving "+p.Name)
	}
	sol, st, err := a.svc.Solve(cmd.Context(), p.Name, pegs, domain.Hole(solveTarget))
	stop()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !sol.Found {
		fmt.Fprintf(out, "no solution (%d positions, %s)\n", st.Nodes, st.Duration.Round(time.Millisecond))
		return nil
	}
	renderTitle(out, "solved %s in %d jumps (%d positions, %d memo hits, %s)",
		p.Name, len(sol.Moves), st.Nodes, st.MemoHits, st.Duration.Round(time.Millisecond))
	if !solveReplay {
		renderMoves(out, sol.Moves)
		return nil
	}
	renderBoard(out, p.Layout, pegs, nil)
	for i, m := range sol.Moves {
		pegs = domain.Apply(pegs, m)
		fmt.Fprintf(out, "\n%d. %s\n", i+1, m)
		mv := m
		renderBoard(out, p.Layout, pegs, &mv)
	}
	return nil
}
