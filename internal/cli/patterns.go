package cli

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/pegsolitaire/pegsolitaire/internal/domain"
	"github.com/pegsolitaire/pegsolitaire/internal/infrastructure/storage"
)

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "List board patterns",
	Long: `List the built-in board patterns together with those defined in the
config file and the pattern directory.`,
	Args: cobra.NoArgs,
	RunE: runPatterns,
}

var patternsExportCmd = &cobra.Command{
	Use:   "export NAME DIR",
	Short: "Write a pattern to a pattern file",
	Long: `Write the named pattern as a TOML pattern file into DIR. Point
--patterns-dir (or patterns.dir in the config) at DIR to load it back.`,
	Args: cobra.ExactArgs(2),
	RunE: runPatternsExport,
}

func init() {
	patternsCmd.AddCommand(patternsExportCmd)
}

func runPatterns(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	ps, err := a.svc.ListPatterns()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, p := range ps {
		titleColor.Fprintf(out, "%-14s", p.Name)
		fmt.Fprintf(out, " %-12s %3d holes  %s\n", p.Slug, p.Layout.Size(), p.Shape.Kind)
	}
	return nil
}

func runPatternsExport(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	p, err := a.svc.Pattern(args[0])
	if err != nil {
		return err
	}
	spec := domain.PatternSpec{Name: p.Name, Shape: p.Shape}
	if err := storage.NewFS(args[1]).Save(cmd.Context(), spec); err != nil {
		return errors.Wrapf(err, "export %q", p.Name)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "exported %s to %s\n", p.Name, args[1])
	return nil
}
