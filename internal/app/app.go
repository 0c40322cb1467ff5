package app

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/shandysiswandi/contactrelay/internal/pkg/config"
	"github.com/shandysiswandi/contactrelay/internal/pkg/instrument"
	"github.com/shandysiswandi/contactrelay/internal/pkg/mail"
	"github.com/shandysiswandi/contactrelay/internal/pkg/router"
	"github.com/shandysiswandi/contactrelay/internal/pkg/uid"
	"github.com/shandysiswandi/contactrelay/internal/pkg/validator"
)

// App wires dependencies and manages service lifecycle.
type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config config.Config
	ins    instrument.Instrumentation

	// libraries
	validator validator.Validator
	uuid      uid.StringID

	// resources
	mail mail.Mail

	// server
	router     *router.Router
	handler    http.Handler
	httpServer *http.Server

	//
	closers []struct {
		name string
		fn   func(context.Context) error
	}
}

// New initializes the application with default wiring and returns an App instance.
func New() *App {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
	}

	app.initConfig()
	app.initInstrument()
	app.initLibraries()
	app.initMail()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}

// Handler returns the fully wired HTTP handler (router behind CORS).
func (a *App) Handler() http.Handler {
	return a.handler
}

// Flush exports buffered telemetry without stopping anything.
func (a *App) Flush(ctx context.Context) {
	if err := a.ins.Flush(ctx); err != nil {
		slog.WarnContext(ctx, "failed to flush instrumentation", "error", err)
	}
}
