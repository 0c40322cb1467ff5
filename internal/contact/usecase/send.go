package usecase

import (
	"context"
	"log/slog"

	"github.com/samber/lo"
	"github.com/shandysiswandi/contactrelay/internal/contact/entity"
	"github.com/shandysiswandi/contactrelay/internal/pkg/goerror"
	"github.com/shandysiswandi/contactrelay/internal/pkg/mail"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const (
	msgNoSender    = "SES_FROM_EMAIL is required: set ses.from_email in config or the SES_FROM_EMAIL environment variable"
	msgNoRecipient = "At least one recipient email address is required"
	msgNoDefaultTo = "No recipient specified and SES_TO_EMAIL is not configured"
)

// SendEmail delivers one message through the provider.
//
// Every failure, including a provider panic, comes back as a failed
// SendResult. The provider is not called when the sender or the recipients
// are missing.
func (s *Usecase) SendEmail(ctx context.Context, opts entity.SendEmailOptions) (result entity.SendResult) {
	ctx, span := s.startSpan(ctx, "SendEmail")
	defer span.End()

	defer func() {
		if rvr := recover(); rvr != nil {
			slog.ErrorContext(ctx, "panic while sending email", "because", rvr)
			result = entity.Failed(mail.MsgUnexpected)
		}
		if !result.Success {
			span.SetStatus(codes.Error, result.Error)
		}
	}()

	if s.cfg.From == "" {
		slog.ErrorContext(ctx, "email sender is not configured")
		s.countSend(ctx, "no_sender")
		return entity.Failed(msgNoSender)
	}

	to := normalizeEmails(opts.To)
	if len(to) == 0 {
		s.countSend(ctx, "no_recipient")
		return entity.Failed(msgNoRecipient)
	}

	msg := mail.Message{
		From:     s.cfg.From,
		To:       to,
		Cc:       normalizeEmails(opts.Cc),
		Bcc:      normalizeEmails(opts.Bcc),
		ReplyTo:  opts.ReplyTo,
		Subject:  opts.Subject,
		TextBody: opts.Body,
		HTMLBody: opts.HTMLBody,
	}
	span.SetAttributes(
		attribute.Int("email.to_count", len(msg.To)),
		attribute.Int("email.cc_count", len(msg.Cc)),
		attribute.Int("email.bcc_count", len(msg.Bcc)),
	)

	messageID, err := s.repoMail.Send(ctx, msg)
	if err != nil {
		failure := mail.Classify(err)
		slog.ErrorContext(ctx, "failed to repo mail send", "kind", failure.String(), "error", err)
		span.RecordError(err)
		s.countSend(ctx, failure.String())
		return entity.Failed(mail.DescribeError(err))
	}

	if messageID == "" {
		slog.ErrorContext(ctx, "email provider returned no message id")
		s.countSend(ctx, "no_message_id")
		return entity.Failed(mail.MsgUnexpected)
	}

	s.countSend(ctx, "sent")
	return entity.Sent(messageID)
}

// SendContactEmail formats a contact submission and sends it to the
// submitted recipients, or to the default recipient when none were given.
// Replies go to the submitter.
func (s *Usecase) SendContactEmail(ctx context.Context, data entity.ContactData) entity.SendResult {
	ctx, span := s.startSpan(ctx, "SendContactEmail")
	defer span.End()

	recipients := data.To
	if recipients == nil {
		def := s.cfg.GetDefaultRecipient()
		if def == "" {
			slog.WarnContext(ctx, "contact email has no recipient")
			span.SetStatus(codes.Error, msgNoDefaultTo)
			s.countSend(ctx, "no_default_recipient")
			return entity.Failed(msgNoDefaultTo)
		}
		recipients = []string{def}
	}

	text, err := renderTemplate(s.textTmpl, data)
	if err != nil {
		slog.ErrorContext(ctx, "failed to render contact text body", "error", err)
		return s.renderFailed(ctx, span, err)
	}

	html, err := renderTemplate(s.htmlTmpl, data)
	if err != nil {
		slog.ErrorContext(ctx, "failed to render contact html body", "error", err)
		return s.renderFailed(ctx, span, err)
	}

	return s.SendEmail(ctx, entity.SendEmailOptions{
		To:       recipients,
		Subject:  contactSubject(data),
		Body:     text,
		HTMLBody: html,
		ReplyTo:  data.Email,
	})
}

// Submit validates a decoded contact form payload and sends it.
// It returns the provider message id.
func (s *Usecase) Submit(ctx context.Context, in entity.SubmissionInput) (string, error) {
	ctx, span := s.startSpan(ctx, "Submit")
	defer span.End()

	data, violations := s.Validate(in)
	if len(violations) > 0 {
		return "", goerror.NewInvalidInput(lo.Map(violations, func(v entity.Violation, _ int) goerror.Detail {
			return goerror.Detail{Field: v.Field, Message: v.Message}
		}))
	}

	result := s.SendContactEmail(ctx, data)
	if !result.Success {
		slog.ErrorContext(ctx, "failed to send contact email", "reason", result.Error)
		return "", goerror.NewDelivery(result.Error)
	}

	slog.InfoContext(ctx, "contact email sent", "message_id", result.MessageID)
	return result.MessageID, nil
}

// normalizeEmails returns addrs without blank entries, never nil.
func normalizeEmails(addrs []string) []string {
	return append([]string{}, lo.Compact(addrs)...)
}

func (s *Usecase) renderFailed(ctx context.Context, span trace.Span, err error) entity.SendResult {
	span.RecordError(err)
	span.SetStatus(codes.Error, mail.MsgUnexpected)
	s.countSend(ctx, "render_failed")
	return entity.Failed(mail.MsgUnexpected)
}

func (s *Usecase) countSend(ctx context.Context, outcome string) {
	if s.sendCounter == nil {
		return
	}
	s.sendCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}
