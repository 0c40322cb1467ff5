package mail

import (
	"context"
	"errors"
	"io"
)

var (
	// ErrNoRecipients is returned when Message.To is empty.
	ErrNoRecipients = errors.New("no recipients provided")
	// ErrNoSender is returned when Message.From is empty.
	ErrNoSender = errors.New("no sender provided")
)

// Message represents an email payload.
//
// Fields are provider-agnostic; empty Cc, Bcc, ReplyTo and HTMLBody are
// left out of the provider request.
type Message struct {
	// From is the verified sender address.
	From string
	// To lists required recipients.
	To []string
	// Cc lists carbon copy recipients.
	Cc []string
	// Bcc lists blind carbon copy recipients.
	Bcc []string
	// ReplyTo is the optional address replies should go to.
	ReplyTo string
	// Subject is the email subject line.
	Subject string
	// TextBody is the required plain-text body.
	TextBody string
	// HTMLBody is the optional HTML body.
	HTMLBody string
}

// Mail abstracts the email provider.
type Mail interface {
	io.Closer
	// Send dispatches the given message and returns the provider-assigned message id.
	Send(ctx context.Context, msg Message) (string, error)
}

//go:generate mockgen -source=mail.go -destination=mailmock/mail.go -package=mailmock
//go:generate mockgen -source=ses.go -destination=mailmock/ses.go -package=mailmock
