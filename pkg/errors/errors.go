// Package errors provides structured error types for noticegen.
//
// Every failure the tool can hit is fatal: there are no retries and no
// partial-output mode. Errors still carry a machine-readable [Code] so the
// CLI and tests can tell the failure kinds apart:
//
//   - MISSING_ARGUMENT: a required option (template or input path) is empty
//   - FILE_READ / FILE_WRITE: template, input or output file I/O failed
//   - FORMAT_PARSE: the input matches neither known JSON shape
//   - INVALID_PATTERN: a --match-* regular expression does not compile
//   - LINE_RANGE: header plus footer lines exceed the template length
//   - INVALID_CONFIG: the --config file cannot be decoded
//
// # Usage
//
//	err := errors.New(errors.ErrCodeMissingArgument, "--input-file is required")
//	if errors.Is(err, errors.ErrCodeMissingArgument) {
//	    // ...
//	}
//
//	err = errors.Wrap(errors.ErrCodeFileRead, origErr, "could not read the input file: %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for the failure kinds of a run.
const (
	ErrCodeMissingArgument Code = "MISSING_ARGUMENT"
	ErrCodeFileRead        Code = "FILE_READ"
	ErrCodeFileWrite       Code = "FILE_WRITE"
	ErrCodeFormatParse     Code = "FORMAT_PARSE"
	ErrCodeInvalidPattern  Code = "INVALID_PATTERN"
	ErrCodeLineRange       Code = "LINE_RANGE"
	ErrCodeInvalidConfig   Code = "INVALID_CONFIG"
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
// It unwraps the error chain looking for the outermost *Error and compares its code.
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

// UserMessage returns the message without the code prefix for *Error
// values, and the plain error string otherwise.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return fmt.Sprintf("%s: %v", e.Message, e.Cause)
		}
		return e.Message
	}
	return err.Error()
}

// ExitCode maps an error to a process exit status. Every error is fatal,
// so anything non-nil exits with 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}
