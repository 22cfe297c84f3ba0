package validators

import (
	"errors"
	"strings"

	"github.com/apryandito/user-directory/models"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

// ValidationError reports every field-level rule violation found in a single
// request. It implements the error interface so it can flow through service
// signatures; transport layers unwrap it with [errors.As] to render the
// per-field detail.
type ValidationError struct {
	// Fields lists each failing field with its message, in rule order.
	Fields []models.FieldError
}

// Error implements the error interface by joining all field messages.
func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation error"
	}

	messages := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		messages = append(messages, f.Field+": "+f.Message)
	}
	return "validation error: " + strings.Join(messages, "; ")
}

// add records a failing rule for the given field.
func (e *ValidationError) add(field, message string) {
	e.Fields = append(e.Fields, models.FieldError{Field: field, Message: message})
}

// orNil returns the error value when at least one rule failed, nil otherwise.
func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}
