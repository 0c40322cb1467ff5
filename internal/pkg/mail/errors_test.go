package mail

import (
	"errors"
	"fmt"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
)

type emptyError struct{}

func (emptyError) Error() string { return "" }

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Failure
	}{
		{name: "nil", err: nil, want: FailureOther},
		{name: "rejected", err: &types.MessageRejected{Message: aws.String("x")}, want: FailureMessageRejected},
		{
			name: "wrapped rejected",
			err: &smithy.OperationError{
				ServiceID:     "SES",
				OperationName: "SendEmail",
				Err:           &types.MessageRejected{Message: aws.String("x")},
			},
			want: FailureMessageRejected,
		},
		{name: "domain", err: &types.MailFromDomainNotVerifiedException{}, want: FailureMailFromDomainNotVerified},
		{name: "configuration set", err: &types.ConfigurationSetDoesNotExistException{}, want: FailureConfigurationSetDoesNotExist},
		{name: "throttled", err: &types.LimitExceededException{}, want: FailureOther},
		{name: "plain", err: errors.New("SES Error"), want: FailureOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}

func TestFailure_StringAndMessage(t *testing.T) {
	assert.Equal(t, "MessageRejected", FailureMessageRejected.String())
	assert.Equal(t, "MailFromDomainNotVerifiedException", FailureMailFromDomainNotVerified.String())
	assert.Equal(t, "ConfigurationSetDoesNotExistException", FailureConfigurationSetDoesNotExist.String())
	assert.Equal(t, "Other", FailureOther.String())
	assert.Equal(t, "Other", Failure(42).String())

	assert.Empty(t, FailureOther.Message())
	assert.Empty(t, Failure(42).Message())
}

func TestDescribeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "rejected",
			err:  &types.MessageRejected{Message: aws.String("Email address is not verified.")},
			want: "Email was rejected. Please check if the sender email is verified in SES.",
		},
		{
			name: "domain",
			err:  fmt.Errorf("send: %w", &types.MailFromDomainNotVerifiedException{}),
			want: "The sender domain is not verified in SES.",
		},
		{
			name: "configuration set",
			err:  &types.ConfigurationSetDoesNotExistException{},
			want: "SES configuration set does not exist.",
		},
		{
			name: "api error uses provider message",
			err: &smithy.OperationError{
				ServiceID:     "SES",
				OperationName: "SendEmail",
				Err:           &smithy.GenericAPIError{Code: "Throttling", Message: "Maximum sending rate exceeded."},
			},
			want: "Maximum sending rate exceeded.",
		},
		{name: "plain error", err: errors.New("SES Error"), want: "SES Error"},
		{name: "empty error", err: emptyError{}, want: MsgUnexpected},
		{name: "nil", err: nil, want: MsgUnexpected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DescribeError(tt.err))
		})
	}
}
