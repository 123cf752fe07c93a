package cli

import (
	"github.com/spf13/cobra"
)

var (
	movesPattern string
	movesPos     positionFlags
)

var movesCmd = &cobra.Command{
	Use:   "moves",
	Short: "List the legal moves of a position",
	Long: `List every legal jump of a position in generation order: pegs in
ascending hole order, each trying right, left, down and up.`,
	Args: cobra.NoArgs,
	RunE: runMoves,
}

func init() {
	addPositionFlags(movesCmd, &movesPattern, &movesPos)
}

func runMoves(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	p, err := a.svc.Pattern(movesPattern)
	if err != nil {
		return err
	}
	pegs, err := movesPos.resolve(p.Layout)
	if err != nil {
		return err
	}
	moves, err := a.svc.LegalMoves(cmd.Context(), p.Name, pegs)
	if err != nil {
		return err
	}
	renderMoves(cmd.OutOrStdout(), moves)
	return nil
}
