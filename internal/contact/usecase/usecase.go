package usecase

import (
	"context"
	"log/slog"
	"text/template"

	"github.com/shandysiswandi/contactrelay/internal/contact/entity"
	"github.com/shandysiswandi/contactrelay/internal/pkg/instrument"
	"github.com/shandysiswandi/contactrelay/internal/pkg/mail"
	"github.com/shandysiswandi/contactrelay/internal/pkg/validator"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

type repoMail interface {
	Send(ctx context.Context, msg mail.Message) (string, error)
}

type Usecase struct {
	cfg         entity.MailerConfig
	validator   validator.Validator
	repoMail    repoMail
	ins         instrument.Instrumentation
	sendCounter metric.Int64Counter

	textTmpl *template.Template
	htmlTmpl *template.Template
}

type Dependency struct {
	MailerConfig entity.MailerConfig
	Validator    validator.Validator
	RepoMail     repoMail
	Instrument   instrument.Instrumentation
}

func NewContact(dep Dependency) *Usecase {
	ins := dep.Instrument
	if ins == nil {
		ins = instrument.NewNoop()
	}

	counter, err := ins.Meter("contact.usecase").Int64Counter(
		"contact.email.sends",
		metric.WithDescription("Number of email send attempts by outcome"),
	)
	if err != nil {
		slog.Error("failed to create contact email send counter", "error", err)
	}

	return &Usecase{
		cfg:         dep.MailerConfig,
		validator:   dep.Validator,
		repoMail:    dep.RepoMail,
		ins:         ins,
		sendCounter: counter,
		textTmpl:    contactText,
		htmlTmpl:    contactHTML,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("contact.usecase").Start(ctx, name)
}

// MailerConfig returns the sender and recipient configuration the usecase was built with.
func (s *Usecase) MailerConfig() entity.MailerConfig {
	return s.cfg
}
