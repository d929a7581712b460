package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/SzerokiGeralt/MemeSwipe/backend"
	"github.com/SzerokiGeralt/MemeSwipe/memeswipe"
)

var shutdownTimeout time.Duration

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		initCtx, cancel := context.WithTimeout(ctx, 2*time.Minute)
		app, err := memeswipe.New(initCtx, *cfg, version, commit)
		cancel()
		if err != nil {
			slog.Error("Failed to initialize engine",
				slog.String("type", "sys"),
				slog.Any("error", err))
			return err
		}
		defer app.Close()

		srv := backend.NewServer(app)

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			return srv.Run(gctx, shutdownTimeout)
		})

		if err := g.Wait(); err != nil {
			slog.Error("Server stopped with error",
				slog.String("type", "sys"),
				slog.Any("error", err))
			return err
		}

		slog.Info("Server shutdown complete", slog.String("type", "sys"))
		return nil
	},
}

func init() {
	serveCmd.Flags().DurationVar(&shutdownTimeout, "shutdown-timeout", 15*time.Second, "time allowed for in-flight requests on shutdown")
	rootCmd.AddCommand(serveCmd)
}
