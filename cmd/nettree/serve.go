package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/jbweber/homelab/nettree/internal/api"
	"github.com/jbweber/homelab/nettree/internal/config"
	"github.com/jbweber/homelab/nettree/internal/inventory"
	"github.com/jbweber/homelab/nettree/internal/logger"
	"github.com/jbweber/homelab/nettree/internal/repository"
)

const shutdownTimeout = 5 * time.Second

func newServeCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the inventory over HTTP.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			handler, err := newServerHandler(ctx)
			if err != nil {
				return err
			}
			return serve(ctx, cfg.Addr, handler)
		},
	}

	cmd.Flags().StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address")

	return cmd
}

// newServerHandler seeds a repository with the sample network and returns
// the routed API
func newServerHandler(ctx context.Context) (http.Handler, error) {
	repo := repository.NewNetworkRepository()
	if _, err := repo.Create(ctx, inventory.SampleNetwork()); err != nil {
		return nil, fmt.Errorf("failed to seed inventory: %w", err)
	}

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	api.NewAPI(repo, logger.FromContext(ctx)).RegisterRoutes(r)

	return r, nil
}

func serve(ctx context.Context, addr string, handler http.Handler) error {
	log := logger.FromContext(ctx)

	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infow("starting nettree web service", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	log.Info("shutting down nettree web service")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}
