package contact

import (
	"github.com/shandysiswandi/contactrelay/internal/contact/entity"
	"github.com/shandysiswandi/contactrelay/internal/contact/inbound"
	"github.com/shandysiswandi/contactrelay/internal/contact/outbound/email"
	"github.com/shandysiswandi/contactrelay/internal/contact/usecase"
	"github.com/shandysiswandi/contactrelay/internal/pkg/config"
	"github.com/shandysiswandi/contactrelay/internal/pkg/instrument"
	"github.com/shandysiswandi/contactrelay/internal/pkg/mail"
	"github.com/shandysiswandi/contactrelay/internal/pkg/router"
	"github.com/shandysiswandi/contactrelay/internal/pkg/validator"
)

type Dependency struct {
	Config     config.Config
	Instrument instrument.Instrumentation
	Validator  validator.Validator
	Router     *router.Router
	Mail       mail.Mail
}

func New(dep Dependency) error {
	repoMail := email.New(dep.Mail, dep.Instrument)

	uc := usecase.NewContact(usecase.Dependency{
		MailerConfig: entity.MailerConfig{
			From:             dep.Config.GetString("ses.from_email"),
			DefaultRecipient: dep.Config.GetString("ses.to_email"),
		},
		Validator:  dep.Validator,
		RepoMail:   repoMail,
		Instrument: dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
