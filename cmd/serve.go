package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/desertthunder/moodify/internal/server"
	"github.com/urfave/cli/v3"
)

// Serve runs the catalog HTTP API until interrupted.
func (r *Runner) Serve(ctx context.Context, cmd *cli.Command) error {
	engine, db, err := r.openEngine(ctx, cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	port := r.config.Server.Port
	if cmd.Int("port") != 0 {
		port = cmd.Int("port")
	}

	router := server.NewBasicRouter()
	router.Use(server.Logging(r.logger), server.CORS())

	api := server.NewAPI(engine, r.logger)
	api.Register(router)

	addr := fmt.Sprintf("%s:%d", r.config.Server.Host, port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		r.logger.Info("server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-stop:
		r.logger.Info("shutting down")
	case <-ctx.Done():
		r.logger.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}

	return nil
}
