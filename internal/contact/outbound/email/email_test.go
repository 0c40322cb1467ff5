package email

import (
	"context"
	"errors"
	"testing"

	"github.com/shandysiswandi/contactrelay/internal/pkg/instrument"
	"github.com/shandysiswandi/contactrelay/internal/pkg/mail"
	"github.com/shandysiswandi/contactrelay/internal/pkg/mail/mailmock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestMail_Send(t *testing.T) {
	msg := mail.Message{From: "noreply@example.com", To: []string{"a@example.com"}, Subject: "s", TextBody: "b"}

	t.Run("success", func(t *testing.T) {
		client := mailmock.NewMockMail(gomock.NewController(t))
		client.EXPECT().Send(gomock.Any(), msg).Return("abc", nil)

		id, err := New(client, instrument.NewNoop()).Send(context.Background(), msg)

		assert.NoError(t, err)
		assert.Equal(t, "abc", id)
	})

	t.Run("error", func(t *testing.T) {
		wantErr := errors.New("boom")
		client := mailmock.NewMockMail(gomock.NewController(t))
		client.EXPECT().Send(gomock.Any(), msg).Return("", wantErr)

		id, err := New(client, instrument.NewNoop()).Send(context.Background(), msg)

		assert.ErrorIs(t, err, wantErr)
		assert.Empty(t, id)
	})
}
