// Package errors provides structured error types for breadboard.
//
// Two kinds of failure exist in this module:
//
//   - Contract violations (a wire used with the wrong board, a sixth input to
//     an expression node, an identifier that does not fit its 24-bit field).
//     These are programmer mistakes. They abort the offending call with a
//     panic whose value is an [*Error] carrying [ErrCodeProgram], raised by
//     [Panicf]. Boundaries that must not crash can convert them back into an
//     error with [Recover].
//   - Recoverable conditions (a failed write of the packaged document, a
//     malformed configuration file, a truncated container on decode). These
//     are returned as ordinary errors carrying a [Code].
//
// # Error Codes
//
//   - PROGRAM_ERROR: API misuse detected at the offending call
//   - STORAGE_ERROR: the packaged document could not be written
//   - INVALID_*: input validation failures
//   - NOT_FOUND: a requested resource does not exist
//   - INTERNAL_ERROR / UNSUPPORTED: unexpected internal states
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidConfig, "unknown sink %q", kind)
//	if errors.Is(err, errors.ErrCodeInvalidConfig) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeStorage, origErr, "write %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Contract violations
	ErrCodeProgram Code = "PROGRAM_ERROR"

	// Storage errors
	ErrCodeStorage Code = "STORAGE_ERROR"

	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidName   Code = "INVALID_NAME"
	ErrCodeInvalidPath   Code = "INVALID_PATH"

	// Resource not found errors
	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// Panicf aborts the current call with a PROGRAM_ERROR.
// It is reserved for API misuse that must never produce a partially valid
// graph or container.
func Panicf(format string, args ...any) {
	panic(New(ErrCodeProgram, format, args...))
}

// Recover converts a panic raised by [Panicf] into an error stored in *errp.
// Panics carrying anything other than an *Error are re-raised.
//
//	func build() (err error) {
//	    defer errors.Recover(&err)
//	    ...
//	}
func Recover(errp *error) {
	r := recover()
	if r == nil {
		return
	}
	if e, ok := r.(*Error); ok {
		*errp = e
		return
	}
	panic(r)
}

// Catch runs fn and returns the PROGRAM_ERROR it raised, if any.
func Catch(fn func()) (err error) {
	defer Recover(&err)
	fn()
	return nil
}
