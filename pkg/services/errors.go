package services

import (
	"errors"
	"fmt"
)

// Code is a wire-visible error code. The dispatcher maps codes to HTTP
// statuses; they also appear as metric labels.
type Code string

// The flat error code set.
const (
	CodeUnauthorized            Code = "UNAUTHORIZED"
	CodeForbidden               Code = "FORBIDDEN"
	CodeWorkspaceMismatch       Code = "WORKSPACE_MISMATCH"
	CodeNotFound                Code = "NOT_FOUND"
	CodeInvalidArgument         Code = "INVALID_ARGUMENT"
	CodeInvalidThreadTransition Code = "INVALID_THREAD_TRANSITION"
	CodeConflict                Code = "CONFLICT"
	CodeIdempotencyConflict     Code = "IDEMPOTENCY_CONFLICT"
	CodeInternal                Code = "INTERNAL"
)

// Error is a tagged domain error. Adapter failures never surface as Error
// values; they become outcome codes on trigger attempts instead.
type Error struct {
	Code    Code
	Message string
	Details map[string]interface{}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// E builds a tagged error.
func E(code Code, format string, args ...interface{}) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// WithDetails attaches structured details to the error.
func (e *Error) WithDetails(details map[string]interface{}) *Error {
	e.Details = details
	return e
}

// CodeOf extracts the wire code from err, or CodeInternal for untagged errors.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

// IsCode reports whether err carries the given code.
func IsCode(err error, code Code) bool {
	return CodeOf(err) == code
}

// Convenience constructors for the common cases.

// NotFound builds a NOT_FOUND error.
func NotFound(what, id string) *Error {
	return E(CodeNotFound, "%s %q not found", what, id)
}

// InvalidArgument builds an INVALID_ARGUMENT error.
func InvalidArgument(format string, args ...interface{}) *Error {
	return E(CodeInvalidArgument, format, args...)
}

// Conflict builds a CONFLICT error.
func Conflict(format string, args ...interface{}) *Error {
	return E(CodeConflict, format, args...)
}

// Forbidden builds a FORBIDDEN error.
func Forbidden(format string, args ...interface{}) *Error {
	return E(CodeForbidden, format, args...)
}
