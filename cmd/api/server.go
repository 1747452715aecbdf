// cmd/api/server.go
// This file contains the serve() method which starts the HTTP server and
// handles graceful shutdown when an OS signal is received.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
)

// serve builds the HTTP server and runs it until SIGINT or SIGTERM arrives,
// then shuts it down gracefully, giving in-flight requests up to the
// configured shutdown timeout to complete.
func (app *applicationDependencies) serve() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	apiServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", app.config.port),
		Handler:      app.routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelError),
	}

	return app.run(ctx, apiServer)
}

// run serves srv until ctx is cancelled, then shuts it down. It is split out
// from serve so tests can drive it with their own context and server.
func (app *applicationDependencies) run(ctx context.Context, srv *http.Server) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		app.logger.Info("starting server", "address", srv.Addr, "environment", app.config.environment, "version", appVersion)

		// ErrServerClosed is the normal result of Shutdown being called.
		err := srv.ListenAndServe()
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		// gctx is also cancelled if ListenAndServe fails, e.g. port in use.
		<-gctx.Done()
		app.logger.Info("shutting down server", "address", srv.Addr)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), app.config.shutdownTimeout)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}

	app.logger.Info("server stopped", "address", srv.Addr, "books", app.models.Books.Count())
	return nil
}
