package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string   `json:"name" validate:"required,max=5"`
	Email string   `json:"email" validate:"required,email"`
	Tags  []string `json:"tags" validate:"omitempty,dive,email"`
	Note  string   `validate:"omitempty,min=2"`
}

func TestV10Validator_Validate(t *testing.T) {
	v, err := NewV10Validator()
	require.NoError(t, err)

	tests := []struct {
		name string
		in   sample
		want V10ValidationError
	}{
		{
			name: "valid",
			in:   sample{Name: "Ann", Email: "ann@example.com"},
		},
		{
			name: "every violation is reported in field order",
			in:   sample{Name: "", Email: "nope", Tags: []string{"a@example.com", "bad"}, Note: "x"},
			want: V10ValidationError{
				{Field: "name", Message: "name is required"},
				{Field: "email", Message: "email must be a valid email address"},
				{Field: "tags[1]", Message: "tags[1] must be a valid email address"},
				{Field: "Note", Message: "Note must be at least 2 characters"},
			},
		},
		{
			name: "max counts characters",
			in:   sample{Name: "ééééé", Email: "ann@example.com"},
		},
		{
			name: "max exceeded",
			in:   sample{Name: "abcdef", Email: "ann@example.com"},
			want: V10ValidationError{
				{Field: "name", Message: "name must be 5 characters or less"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.in)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}

			var verr V10ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.want, verr)
			assert.Equal(t, []Violation(tt.want), verr.Values())
		})
	}
}

func TestV10Validator_NonStruct(t *testing.T) {
	v, err := NewV10Validator()
	require.NoError(t, err)

	err = v.Validate("not a struct")
	require.Error(t, err)

	var verr V10ValidationError
	assert.False(t, errors.As(err, &verr))
}

func TestV10ValidationError_Error(t *testing.T) {
	assert.Equal(t, "validation error", V10ValidationError{}.Error())
	assert.Equal(t, "name: name is required; email: email is required", V10ValidationError{
		{Field: "name", Message: "name is required"},
		{Field: "email", Message: "email is required"},
	}.Error())
}
