package mail

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

const charsetUTF8 = "UTF-8"

// SESAPI is the subset of the SES client used by the SES transport.
type SESAPI interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

// SESOptions configures SES client initialization.
type SESOptions struct {
	// Region is the AWS region SES is called in.
	Region string
	// Endpoint overrides the AWS endpoint (local emulators).
	Endpoint string
	// AccessKey is the static access key ID.
	AccessKey string
	// SecretKey is the static secret access key.
	SecretKey string
	// SessionToken is the optional session token.
	SessionToken string
	// ConfigurationSet is the optional SES configuration set attached to every send.
	ConfigurationSet string
}

// SES is a Mail implementation backed by the AWS SES SendEmail API.
type SES struct {
	client           SESAPI
	configurationSet string
}

// NewSES constructs an SES transport with the provided options.
//
// Credentials fall back to the default AWS chain when no static keys are given.
// The SDK retryer is disabled: every Send is exactly one SendEmail call and a
// provider failure is returned as is.
func NewSES(ctx context.Context, opts SESOptions) (*SES, error) {
	cfgOpts := []func(*config.LoadOptions) error{}
	if opts.Region != "" {
		cfgOpts = append(cfgOpts, config.WithRegion(opts.Region))
	}
	if opts.AccessKey != "" || opts.SecretKey != "" {
		cfgOpts = append(cfgOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, opts.SessionToken),
		))
	}
	cfg, err := config.LoadDefaultConfig(ctx, cfgOpts...)
	if err != nil {
		return nil, err
	}
	client := ses.NewFromConfig(cfg, func(o *ses.Options) {
		o.Retryer = aws.NopRetryer{}
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		}
	})
	return NewSESWithClient(client, opts.ConfigurationSet), nil
}

// NewSESWithClient wraps an existing SES client.
func NewSESWithClient(client SESAPI, configurationSet string) *SES {
	return &SES{client: client, configurationSet: configurationSet}
}

// Send delivers a message through SES and returns its message id.
func (s *SES) Send(ctx context.Context, msg Message) (string, error) {
	if msg.From == "" {
		return "", ErrNoSender
	}
	if len(msg.To) == 0 {
		return "", ErrNoRecipients
	}

	out, err := s.client.SendEmail(ctx, buildSendEmailInput(msg, s.configurationSet))
	if err != nil {
		return "", err
	}

	return aws.ToString(out.MessageId), nil
}

// Close implements io.Closer for interface compatibility.
func (s *SES) Close() error {
	return nil
}

func buildSendEmailInput(msg Message, configurationSet string) *ses.SendEmailInput {
	dest := &types.Destination{ToAddresses: msg.To}
	if len(msg.Cc) > 0 {
		dest.CcAddresses = msg.Cc
	}
	if len(msg.Bcc) > 0 {
		dest.BccAddresses = msg.Bcc
	}

	body := &types.Body{
		Text: &types.Content{Data: aws.String(msg.TextBody), Charset: aws.String(charsetUTF8)},
	}
	if msg.HTMLBody != "" {
		body.Html = &types.Content{Data: aws.String(msg.HTMLBody), Charset: aws.String(charsetUTF8)}
	}

	input := &ses.SendEmailInput{
		Source:      aws.String(msg.From),
		Destination: dest,
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(msg.Subject), Charset: aws.String(charsetUTF8)},
			Body:    body,
		},
	}
	if msg.ReplyTo != "" {
		input.ReplyToAddresses = []string{msg.ReplyTo}
	}
	if configurationSet != "" {
		input.ConfigurationSetName = aws.String(configurationSet)
	}

	return input
}
