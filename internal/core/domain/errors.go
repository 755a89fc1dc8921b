package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound means the target record is absent from both the origin
	// and in-memory state.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidTransition means an order status change was requested on a
	// terminal order.
	ErrInvalidTransition = errors.New("invalid status transition")
)

// FieldError is a single field-level validation failure.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationError carries all field-level failures for one request. It is
// returned before any mutation is attempted; a failing request changes no
// state.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Error()
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(msgs, "; "))
}

// AsValidation unwraps a ValidationError if err is one.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
