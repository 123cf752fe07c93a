package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	httpadapter "github.com/pegsolitaire/pegsolitaire/internal/adapters/http"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the JSON API over HTTP",
	Long: `Serve the JSON API: patterns, moves, solve, hint, generate, validate
and game sessions under /api/. Games live in memory until the server stops.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default from config, \":8080\")")
}

func runServe(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	addr := cfg.Server.Addr
	if serveAddr != "" {
		addr = serveAddr
	}
	srv := httpadapter.NewServer(addr, cfg.Server.HeaderTimeout(), httpadapter.New(a.svc))

	ctx := cmd.Context()
	errc := make(chan error, 1)
	go func() {
		zap.S().Infof("listening on %s (solver=%s workers=%d)", addr, cfg.Solver.Kind, cfg.Solver.Workers)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	zap.S().Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	zap.S().Infof("served %d solves", a.pool.Finished())
	return nil
}
