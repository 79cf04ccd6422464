package errkind

import (
	"errors"
	"fmt"
)

// Code classifies the error categories surfaced by the mutation and
// versioning operations.
type Code string

const (
	CodeValidation Code = "validation"
	CodeNotFound   Code = "not_found"
	// CodeConflict is reserved for a future optimistic-concurrency check
	// on sibling-set reordering.
	CodeConflict Code = "conflict"
	CodeStore    Code = "store"
)

// Error carries a code and a user-facing message while preserving the
// original cause via Unwrap.
type Error struct {
	Code    Code
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Message != "" {
		return e.Message
	}
	if e.cause != nil {
		return e.cause.Error()
	}
	return string(e.Code)
}

func (e *Error) Unwrap() error { return e.cause }

func New(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, cause: cause}
}

func Validation(format string, args ...any) *Error {
	return &Error{Code: CodeValidation, Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...any) *Error {
	return &Error{Code: CodeNotFound, Message: fmt.Sprintf(format, args...)}
}

// Store wraps an underlying transaction or connection failure. The raw
// error stays reachable through Unwrap but is never part of the message.
func Store(cause error) *Error {
	return &Error{Code: CodeStore, Message: "store operation failed", cause: cause}
}

func is(err error, code Code) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == code
}

func IsValidation(err error) bool { return is(err, CodeValidation) }
func IsNotFound(err error) bool   { return is(err, CodeNotFound) }
func IsConflict(err error) bool   { return is(err, CodeConflict) }
func IsStore(err error) bool      { return is(err, CodeStore) }
