package inbound

import (
	"context"

	"github.com/shandysiswandi/contactrelay/internal/contact/entity"
)

type uc interface {
	Submit(ctx context.Context, in entity.SubmissionInput) (string, error)
}
