package cmd

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Taichi-iskw/videominer/internal/database"
	"github.com/Taichi-iskw/videominer/internal/middleware"
	"github.com/Taichi-iskw/videominer/internal/router"
)

const shutdownTimeout = 10 * time.Second

// serveCmd starts the HTTP API
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start the HTTP server exposing /videominer, the health probes and /metrics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		if migrate, _ := cmd.Flags().GetBool("migrate"); migrate {
			if err := database.RunMigrations(a.cfg.DatabaseURL, a.logger); err != nil {
				return err
			}
		}

		metrics := middleware.NewMetrics()
		metrics.RegisterPool(a.pool)

		srv := &http.Server{
			Addr: a.cfg.Addr(),
			Handler: router.New(a.services, router.Options{
				Production: a.cfg.IsProduction(),
				Logger:     a.logger,
				Metrics:    metrics,
				DB:         a.pool,
			}),
			ReadHeaderTimeout: 5 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			a.logger.Info().Str("addr", srv.Addr).Str("env", a.cfg.Env).Msg("server listening")
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		a.logger.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return <-errCh
	},
}

func init() {
	serveCmd.Flags().Bool("migrate", false, "Apply pending migrations before serving")
	rootCmd.AddCommand(serveCmd)
}
