package app

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// Start runs the HTTP server in the background. The returned channel is
// closed when the process receives SIGINT or SIGTERM, or when the server
// fails to listen; the caller is expected to call Stop afterwards.
func (a *App) Start() <-chan struct{} {
	done := make(chan struct{})
	sigCtx, stop := signal.NotifyContext(a.ctx, os.Interrupt, syscall.SIGTERM)

	go func() {
		slog.Info("http server listening", "address", a.httpServer.Addr)
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("failed to listen and serve http server", "error", err)
			stop()
		}
	}()

	go func() {
		<-sigCtx.Done()
		stop()
		slog.Info("shutdown requested")
		close(done)
	}()

	return done
}

// Serve runs the HTTP server on l. Tests use it with an ephemeral listener.
func (a *App) Serve(l net.Listener) <-chan error {
	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)
		errCh <- a.httpServer.Serve(l)
	}()
	return errCh
}

// Stop drains in-flight requests, then runs the closers in registration
// order. Every closer runs even when an earlier one fails.
func (a *App) Stop(ctx context.Context) {
	start := time.Now()
	if err := a.httpServer.Shutdown(ctx); err != nil {
		slog.ErrorContext(ctx, "failed to close resources", "resource", "http server", "error", err)
	}

	a.cancel()

	for _, closer := range a.closers {
		if err := closer.fn(ctx); err != nil {
			slog.ErrorContext(ctx, "failed to close resources", "resource", closer.name, "error", err)
		}
	}

	slog.InfoContext(ctx, "application stopped", "took_ms", time.Since(start).Milliseconds())
}
