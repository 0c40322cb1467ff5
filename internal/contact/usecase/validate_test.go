package usecase

import (
	"strings"
	"testing"

	"github.com/shandysiswandi/contactrelay/internal/contact/entity"
	"github.com/shandysiswandi/contactrelay/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidatingUsecase(t *testing.T) *Usecase {
	t.Helper()

	v, err := validator.NewV10Validator()
	require.NoError(t, err)

	return NewContact(Dependency{Validator: v})
}

func TestUsecase_Validate(t *testing.T) {
	uc := newValidatingUsecase(t)

	tests := []struct {
		name     string
		in       entity.SubmissionInput
		want     entity.ValidatedSubmission
		wantErrs []entity.Violation
	}{
		{
			name: "minimal",
			in:   map[string]any{"name": "Test User", "email": "test@example.com", "message": "hi"},
			want: entity.ValidatedSubmission{Name: "Test User", Email: "test@example.com", Message: "hi"},
		},
		{
			name: "all fields, values kept as typed",
			in: map[string]any{
				"name":    "  Ann  ",
				"email":   "ann@example.com",
				"subject": "Hello",
				"message": " body ",
				"to":      []any{"a@example.com", "b@example.com"},
				"extra":   true,
			},
			want: entity.ValidatedSubmission{
				Name:    "  Ann  ",
				Email:   "ann@example.com",
				Subject: "Hello",
				Message: " body ",
				To:      []string{"a@example.com", "b@example.com"},
			},
		},
		{
			name: "single recipient becomes a list",
			in:   map[string]any{"name": "Ann", "email": "ann@example.com", "message": "hi", "to": "a@example.com"},
			want: entity.ValidatedSubmission{Name: "Ann", Email: "ann@example.com", Message: "hi", To: []string{"a@example.com"}},
		},
		{
			name: "empty recipient list is kept",
			in:   map[string]any{"name": "Ann", "email": "ann@example.com", "message": "hi", "to": []any{}},
			want: entity.ValidatedSubmission{Name: "Ann", Email: "ann@example.com", Message: "hi", To: []string{}},
		},
		{
			name: "limits count characters not bytes",
			in: map[string]any{
				"name":    strings.Repeat("é", 100),
				"email":   "ann@example.com",
				"subject": strings.Repeat("字", 200),
				"message": strings.Repeat("😀", 5000),
			},
			want: entity.ValidatedSubmission{
				Name:    strings.Repeat("é", 100),
				Email:   "ann@example.com",
				Subject: strings.Repeat("字", 200),
				Message: strings.Repeat("😀", 5000),
			},
		},
		{
			name: "empty object reports every required field",
			in:   map[string]any{},
			wantErrs: []entity.Violation{
				{Field: "name", Message: "name is required"},
				{Field: "email", Message: "email is required"},
				{Field: "message", Message: "message is required"},
			},
		},
		{
			name: "every constraint is reported in field order",
			in: map[string]any{
				"name":    strings.Repeat("a", 101),
				"email":   "not-an-email",
				"subject": strings.Repeat("s", 201),
				"message": strings.Repeat("m", 5001),
				"to":      []any{"ok@example.com", "bad"},
			},
			wantErrs: []entity.Violation{
				{Field: "name", Message: "name must be 100 characters or less"},
				{Field: "email", Message: "email must be a valid email address"},
				{Field: "subject", Message: "subject must be 200 characters or less"},
				{Field: "message", Message: "message must be 5000 characters or less"},
				{Field: "to[1]", Message: "to[1] must be a valid email address"},
			},
		},
		{
			name: "invalid single recipient is reported on to",
			in:   map[string]any{"name": "Ann", "email": "ann@example.com", "message": "hi", "to": "bad"},
			wantErrs: []entity.Violation{
				{Field: "to", Message: "to must be a valid email address"},
			},
		},
		{
			name: "type mismatches replace constraint checks",
			in: map[string]any{
				"name":    float64(42),
				"email":   nil,
				"subject": true,
				"message": "hi",
				"to":      []any{"a@example.com", float64(1)},
			},
			wantErrs: []entity.Violation{
				{Field: "name", Message: "Expected string, received number"},
				{Field: "email", Message: "Expected string, received null"},
				{Field: "subject", Message: "Expected string, received boolean"},
				{Field: "to[1]", Message: "Expected string, received number"},
			},
		},
		{
			name: "recipient of the wrong kind",
			in:   map[string]any{"name": "Ann", "email": "ann@example.com", "message": "hi", "to": map[string]any{}},
			wantErrs: []entity.Violation{
				{Field: "to", Message: "Expected string or array of strings, received object"},
			},
		},
		{
			name: "non object body",
			in:   []any{"x"},
			wantErrs: []entity.Violation{
				{Field: "", Message: "Expected object, received array"},
			},
		},
		{
			name: "null body",
			in:   nil,
			wantErrs: []entity.Violation{
				{Field: "", Message: "Expected object, received null"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errs := uc.Validate(tt.in)
			if tt.wantErrs != nil {
				assert.Equal(t, tt.wantErrs, errs)
				assert.Equal(t, entity.ValidatedSubmission{}, got)
				return
			}

			assert.Empty(t, errs)
			assert.Equal(t, tt.want, got)
		})
	}
}
