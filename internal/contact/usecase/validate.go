package usecase

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/contactrelay/internal/contact/entity"
	"github.com/shandysiswandi/contactrelay/internal/pkg/validator"
)

// submissionRules carries the constraint rules checked after type narrowing.
type submissionRules struct {
	Name    string   `json:"name" validate:"required,max=100"`
	Email   string   `json:"email" validate:"required,email"`
	Subject string   `json:"subject" validate:"max=200"`
	Message string   `json:"message" validate:"required,max=5000"`
	To      []string `json:"to" validate:"omitempty,dive,email"`
}

// submissionFields lists the payload fields in declaration order; violations are reported in this order.
var submissionFields = []string{"name", "email", "subject", "message", "to"}

// Validate checks a decoded submission and returns either the validated data
// or every violation found. All fields are checked; it never stops at the first problem.
func (s *Usecase) Validate(in entity.SubmissionInput) (entity.ValidatedSubmission, []entity.Violation) {
	obj, ok := in.(map[string]any)
	if !ok {
		return entity.ValidatedSubmission{}, []entity.Violation{{
			Field:   "",
			Message: "Expected object, received " + kindOf(in),
		}}
	}

	var (
		rules      submissionRules
		typeErrs   = make(map[string][]entity.Violation)
		toIsSingle bool
	)

	rules.Name = narrowString(obj, "name", typeErrs)
	rules.Email = narrowString(obj, "email", typeErrs)
	rules.Subject = narrowString(obj, "subject", typeErrs)
	rules.Message = narrowString(obj, "message", typeErrs)
	rules.To, toIsSingle = narrowRecipients(obj, typeErrs)

	ruleErrs := make(map[string][]entity.Violation)
	if err := s.validator.Validate(rules); err != nil {
		var verr validator.V10ValidationError
		if !errors.As(err, &verr) {
			slog.Error("failed to run submission validator", "error", err)
			return entity.ValidatedSubmission{}, []entity.Violation{{Field: "", Message: err.Error()}}
		}

		for _, v := range verr.Values() {
			field, message := v.Field, v.Message
			if toIsSingle && strings.HasPrefix(field, "to[") {
				message = strings.Replace(message, field, "to", 1)
				field = "to"
			}
			root := rootField(field)
			ruleErrs[root] = append(ruleErrs[root], entity.Violation{Field: field, Message: message})
		}
	}

	var violations []entity.Violation
	for _, field := range submissionFields {
		if errs, ok := typeErrs[field]; ok {
			violations = append(violations, errs...)
			continue
		}
		violations = append(violations, ruleErrs[field]...)
	}

	if len(violations) > 0 {
		return entity.ValidatedSubmission{}, violations
	}

	return entity.ValidatedSubmission{
		Name:    rules.Name,
		Email:   rules.Email,
		Subject: rules.Subject,
		Message: rules.Message,
		To:      rules.To,
	}, nil
}

func narrowString(obj map[string]any, field string, typeErrs map[string][]entity.Violation) string {
	raw, present := obj[field]
	if !present {
		return ""
	}

	str, ok := raw.(string)
	if !ok {
		typeErrs[field] = []entity.Violation{{Field: field, Message: "Expected string, received " + kindOf(raw)}}
		return ""
	}
	return str
}

// narrowRecipients accepts a single address or a list of addresses. The
// returned slice is nil when "to" is absent, and the flag reports whether a
// single address was given.
func narrowRecipients(obj map[string]any, typeErrs map[string][]entity.Violation) ([]string, bool) {
	raw, present := obj["to"]
	if !present {
		return nil, false
	}

	switch val := raw.(type) {
	case string:
		return []string{val}, true
	case []any:
		out := make([]string, 0, len(val))
		var errs []entity.Violation
		for i, item := range val {
			str, ok := item.(string)
			if !ok {
				errs = append(errs, entity.Violation{
					Field:   fmt.Sprintf("to[%d]", i),
					Message: "Expected string, received " + kindOf(item),
				})
				continue
			}
			out = append(out, str)
		}
		if len(errs) > 0 {
			typeErrs["to"] = errs
			return nil, false
		}
		return out, false
	default:
		typeErrs["to"] = []entity.Violation{{
			Field:   "to",
			Message: "Expected string or array of strings, received " + kindOf(raw),
		}}
		return nil, false
	}
}

func rootField(path string) string {
	if i := strings.IndexAny(path, ".["); i >= 0 {
		return path[:i]
	}
	return path
}

// kindOf names the JSON kind of a decoded value.
func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "boolean"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
