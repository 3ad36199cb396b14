package ecode

import (
	"errors"
	"fmt"
)

const (
	requiredMsg = "is required"
	invalidMsg  = "is invalid"
)

// Error is a coded error returned by the service layer.
type Error struct {
	Code    string
	Message string
	Fields  map[string]string
	cause   error
}

// New creates an Error. An empty message falls back to Text(code).
func New(code, message string) *Error {
	if message == "" {
		message = Text(code)
	}
	return &Error{Code: code, Message: message}
}

// Validation creates a VALIDATION_ERROR with optional per-field messages.
func Validation(message string, fields map[string]string) *Error {
	e := New(ValidationError, message)
	if len(fields) > 0 {
		e.Fields = fields
	}
	return e
}

// Internal wraps an unexpected error as INTERNAL_ERROR. The cause is kept
// for logging but never exposed in the message.
func Internal(cause error) *Error {
	e := New(InternalError, "")
	e.cause = cause
	return e
}

// Error implements error.
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// As reports whether err is or wraps an *Error.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// FieldIsRequired returns field required message
func FieldIsRequired(k ...string) string {
	if len(k) > 0 {
		return fmt.Sprintf("%s %s", k[0], requiredMsg)
	}
	return requiredMsg
}

// FieldIsInvalid returns field invalid message
func FieldIsInvalid(k ...string) string {
	if len(k) > 0 {
		return fmt.Sprintf("%s %s", k[0], invalidMsg)
	}
	return invalidMsg
}
