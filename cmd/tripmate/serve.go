package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/pkordes/tripmate/internal/chat"
	"github.com/pkordes/tripmate/internal/config"
	"github.com/pkordes/tripmate/internal/handler"
	"github.com/pkordes/tripmate/internal/middleware"
	"github.com/pkordes/tripmate/internal/store"
)

func newServeCmd() *cobra.Command {
	var port, seedFile string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the TripMate HTTP API",
		Long: `Run the TripMate HTTP API.

Settings come from the environment (PORT, LOG_LEVEL, CORS_ORIGINS,
SEED_FILE, CHAT_REPLY_DELAY, MAX_BODY_BYTES); flags override them.
Without a seed file the demo trip is created, starting today.`,
		Example: `
tripmate serve
tripmate serve --port 9090 --seed trips.yaml
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}
			if cmd.Flags().Changed("seed") {
				cfg.SeedFile = seedFile
			}
			return serve(cmd.Context(), cfg)
		},
	}
	cmd.Flags().StringVar(&port, "port", "", "TCP port to listen on (overrides PORT)")
	cmd.Flags().StringVar(&seedFile, "seed", "", "YAML dataset to load at startup (overrides SEED_FILE)")
	return cmd
}

func serve(ctx context.Context, cfg config.Config) error {
	// --- Logger -----------------------------------------------------------
	level, _ := cfg.SlogLevel()
	logger := newLogger(level, os.Stdout)
	slog.SetDefault(logger)

	// --- Stores and services ----------------------------------------------
	a := newApp(logger, time.Now)
	cancel := a.stores.Subscribe(func(e store.Event) {
		logger.Debug("store changed",
			"kind", e.Kind, "op", e.Op, "id", e.ID, "trip_id", e.TripID)
	})
	defer cancel()

	sum, err := a.seed(ctx, cfg.SeedFile, time.Now())
	if err != nil {
		return err
	}
	logger.Info("seed loaded", "file", cfg.SeedFile,
		"trips", sum.Trips, "activities", sum.Activities, "notes", sum.Notes)

	assistant := chat.New(chat.WithReplyDelay(cfg.ChatReplyDelay), chat.WithLogger(logger))

	// --- Router -----------------------------------------------------------
	// RequestID → RealIP → Logger → Recoverer → CORS → body limit.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))

	server := handler.NewServer(a.trips, a.activities, a.notes, assistant, logger)
	r.Mount("/", server.Routes())

	// --- HTTP Server ------------------------------------------------------
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	logger.Info("shutting down server")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	// Let scheduled assistant replies land before exiting.
	assistant.Wait()
	logger.Info("server stopped")
	return nil
}
