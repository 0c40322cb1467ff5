package app

import (
	"log/slog"
	"os"

	"github.com/shandysiswandi/contactrelay/internal/contact"
)

func (a *App) initModules() {
	if err := contact.New(contact.Dependency{
		Config:     a.config,
		Instrument: a.ins,
		Validator:  a.validator,
		Router:     a.router,
		Mail:       a.mail,
	}); err != nil {
		slog.Error("failed to init module contact", "error", err)
		os.Exit(1)
	}
}
