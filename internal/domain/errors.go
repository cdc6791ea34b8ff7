package domain

import (
	"errors"
	"strings"
)

// Sentinel errors. Adapters translate driver and provider failures into
// these; transport maps them onto status codes.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")

	// ErrProviderUnavailable means no model provider in the chain answered.
	ErrProviderUnavailable = errors.New("provider unavailable")
	// ErrMalformedResponse means a model answered with something other than
	// the requested shape.
	ErrMalformedResponse = errors.New("malformed response")
)

// FieldError is one rejected request field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError lists every rejected field of a request, in field order.
type ValidationError struct {
	Errors []FieldError
}

// Error joins all field messages, e.g.
// "validation: word: required; language: unsupported language".
func (e *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation: ")
	for i, fe := range e.Errors {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(fe.Field)
		sb.WriteString(": ")
		sb.WriteString(fe.Message)
	}
	return sb.String()
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// Fields returns the names of the rejected fields.
func (e *ValidationError) Fields() []string {
	fields := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		fields[i] = fe.Field
	}
	return fields
}

// NewValidationError rejects a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Errors: []FieldError{{Field: field, Message: message}}}
}

// NewValidationErrors rejects several fields at once.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
