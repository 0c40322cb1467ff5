package mail

import (
	"errors"

	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/aws/smithy-go"
)

// MsgUnexpected is reported when a send fails without a usable error message.
const MsgUnexpected = "An unexpected error occurred while sending the email"

// Failure is the closed set of provider failures with a dedicated message.
type Failure int

const (
	// FailureOther is any provider error outside the known set.
	FailureOther Failure = iota
	// FailureMessageRejected means SES refused the message, usually an unverified sender.
	FailureMessageRejected
	// FailureMailFromDomainNotVerified means the custom MAIL FROM domain is not verified.
	FailureMailFromDomainNotVerified
	// FailureConfigurationSetDoesNotExist means the configured configuration set is missing.
	FailureConfigurationSetDoesNotExist
)

// String returns the provider error name of the failure.
func (f Failure) String() string {
	switch f {
	case FailureMessageRejected:
		return "MessageRejected"
	case FailureMailFromDomainNotVerified:
		return "MailFromDomainNotVerifiedException"
	case FailureConfigurationSetDoesNotExist:
		return "ConfigurationSetDoesNotExistException"
	case FailureOther:
		return "Other"
	default:
		return "Other"
	}
}

// Message returns the caller-facing text for a known failure, or "" for FailureOther.
func (f Failure) Message() string {
	switch f {
	case FailureMessageRejected:
		return "Email was rejected. Please check if the sender email is verified in SES."
	case FailureMailFromDomainNotVerified:
		return "The sender domain is not verified in SES."
	case FailureConfigurationSetDoesNotExist:
		return "SES configuration set does not exist."
	case FailureOther:
		return ""
	default:
		return ""
	}
}

// Classify maps a provider error to its Failure.
func Classify(err error) Failure {
	var (
		rejected  *types.MessageRejected
		domain    *types.MailFromDomainNotVerifiedException
		configSet *types.ConfigurationSetDoesNotExistException
	)

	switch {
	case err == nil:
		return FailureOther
	case errors.As(err, &rejected):
		return FailureMessageRejected
	case errors.As(err, &domain):
		return FailureMailFromDomainNotVerified
	case errors.As(err, &configSet):
		return FailureConfigurationSetDoesNotExist
	default:
		return FailureOther
	}
}

// DescribeError returns the caller-facing message for a failed send.
//
// Known failures use their fixed message, API errors use the message sent by
// the provider, and anything else uses the error text. MsgUnexpected is the
// last resort.
func DescribeError(err error) string {
	if err == nil {
		return MsgUnexpected
	}

	if msg := Classify(err).Message(); msg != "" {
		return msg
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) && apiErr.ErrorMessage() != "" {
		return apiErr.ErrorMessage()
	}

	if msg := err.Error(); msg != "" {
		return msg
	}

	return MsgUnexpected
}
