// Package cli implements the pegsolitaire command-line interface.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pegsolitaire/pegsolitaire/internal/config"
	"github.com/pegsolitaire/pegsolitaire/internal/logging"
)

var rootOpts struct {
	configPath  string
	logLevel    string
	logJSON     bool
	patternsDir string
	solverKind  string
}

// cfg is the effective configuration, loaded before any command runs.
var cfg = config.Default()

var restoreLogging = func() {}

var rootCmd = &cobra.Command{
	Use:   "pegsolitaire",
	Short: "Peg solitaire solver, generator and player",
	Long: `pegsolitaire plays and solves peg solitaire on the classic boards
or on boards of your own.

Holes are numbered left to right, top to bottom starting at 1. Positions are
given as lists of occupied holes, e.g. --pegs 1,2,4-9.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
	PersistentPostRun: func(cmd *cobra.Command, args []string) { restoreLogging() },
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		exitError("%v", err)
	}
}

func init() {
	f := rootCmd.PersistentFlags()
	f.StringVarP(&rootOpts.configPath, "config", "c", os.Getenv("PEGSOLITAIRE_CONFIG"), "Config file (TOML)")
	f.StringVar(&rootOpts.logLevel, "log-level", "", "Log level (debug|info|warn|error)")
	f.BoolVar(&rootOpts.logJSON, "log-json", false, "Log as JSON")
	f.StringVar(&rootOpts.patternsDir, "patterns-dir", "", "Directory of extra pattern files")
	f.StringVar(&rootOpts.solverKind, "solver", "", "Solver to use (recursive|stack)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(patternsCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(movesCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig(cmd *cobra.Command, args []string) error {
	c, err := config.Load(rootOpts.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		c.Log.Level = rootOpts.logLevel
	}
	if flags.Changed("log-json") {
		c.Log.JSON = rootOpts.logJSON
	}
	if flags.Changed("patterns-dir") {
		c.Patterns.Dir = rootOpts.patternsDir
	}
	if flags.Changed("solver") {
		c.Solver.Kind = rootOpts.solverKind
	}
	if err := c.Validate(); err != nil {
		return err
	}
	restore, err := logging.Setup(c.Log)
	if err != nil {
		return err
	}
	cfg = c
	restoreLogging = restore
	return nil
}

// exitError prints an error and exits
func exitError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	os.Exit(1)
}
