// Package validator checks tagged structs and reports every failed rule as a
// Violation, ordered by struct field, with JSON paths such as "to[1]" and
// English messages such as "name is required".
//
// Callers depend on the Validator interface; V10Validator is the
// go-playground/validator implementation.
package validator
