// Package errors provides structured error types for the puzzle solvers.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across solvers and the CLI
//   - Machine-readable error codes so tests can assert on failure kinds
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// The stack yard reports its precondition violations with dedicated codes:
//   - PARSE_ERROR: a malformed input line (instruction, range, round, ...)
//   - INDEX_OUT_OF_RANGE: a stack index outside 1..count
//   - UNDERFLOW: a relocation asks for more items than the source holds
//   - NOT_FOUND: a peek or key extraction on an empty stack, or a search with no hit
//   - EMPTY: a single-item move off an empty stack
//
// None of these is recoverable within a run; the caller decides whether to
// abort or report.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeUnderflow, "stack %d holds %d items, need %d", from, n, count)
//	if errors.Is(err, errors.ErrCodeUnderflow) {
//	    // Handle underflow
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeParse, origErr, "line %d", lineNo)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input errors
	ErrCodeParse         Code = "PARSE_ERROR"
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeInvalidPath   Code = "INVALID_PATH"
	ErrCodeInvalidDay    Code = "INVALID_DAY"

	// Stack yard violations
	ErrCodeIndexOutOfRange Code = "INDEX_OUT_OF_RANGE"
	ErrCodeUnderflow       Code = "UNDERFLOW"
	ErrCodeEmpty           Code = "EMPTY"

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
// It walks the whole error chain, so an outer *Error with a different code
// does not hide an inner one (an instruction-numbered wrapper around an
// UNDERFLOW still reports UNDERFLOW).
func Is(err error, code Code) bool {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return false
		}
		if e.Code == code {
			return true
		}
		err = e.Cause
	}
	return false
}

// GetCode extracts the outermost error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// RootCode returns the innermost error code in the chain. Wrappers that only
// add position information keep the code of the violation they wrap.
func RootCode(err error) Code {
	var code Code
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			break
		}
		code = e.Code
		err = e.Cause
	}
	return code
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return e.Message + ": " + UserMessage(e.Cause)
		}
		return e.Message
	}
	return err.Error()
}
