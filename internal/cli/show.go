package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	showPattern string
	showPos     positionFlags
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Draw a board position",
	Long: `Draw a pattern with its hole numbers. Without --pegs or --empty the
opening position is shown: every hole filled except the center.

Examples:
  pegsolitaire show
  pegsolitaire show --pattern square-25 --empty 7,13`,
	Args: cobra.NoArgs,
	RunE: runShow,
}

func init() {
	addPositionFlags(showCmd, &showPattern, &showPos)
}

func addPositionFlags(cmd *cobra.Command, pattern *string, pos *positionFlags) {
	f := cmd.Flags()
	f.StringVarP(pattern, "pattern", "p", "", "Board pattern name or slug (default \"Plus 33\")")
	f.StringVar(&pos.pegs, "pegs", "", "Occupied holes, e.g. 1,2,5-9")
	f.StringVar(&pos.empty, "empty", "", "Start from a full board and empty these holes")
	f.BoolVar(&pos.full, "full", false, "Start from a full board")
}

func runShow(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	p, err := a.svc.Pattern(showPattern)
	if err != nil {
		return err
	}
	pegs, err := showPos.resolve(p.Layout)
	if err != nil {
		return err
	}
	if _, err := a.svc.LegalMoves(cmd.Context(), p.Name, pegs); err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	renderTitle(out, "%s (%d holes, %d pegs)", p.Name, p.Layout.Size(), pegs.Len())
	renderBoard(out, p.Layout, pegs, nil)
	fmt.Fprintf(out, "pegs: %s\n", pegs)
	return nil
}
