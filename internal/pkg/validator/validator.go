package validator

// Violation is one failed constraint: the JSON path of the field and a
// human-readable message.
type Violation struct {
	Field   string
	Message string
}

// Validator validates a struct and reports every failed constraint.
type Validator interface {
	// Validate returns nil when data satisfies all of its rules, a
	// V10ValidationError when one or more rules fail, or any other error when
	// data cannot be validated at all.
	Validate(data any) error
}
