// Package errors provides structured error types for gitcanvas.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI, the HTTP server and the renderer
//   - Machine-readable error codes for programmatic handling
//   - User-friendly messages for the error card
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Upstream codes (USER_NOT_FOUND, RATE_LIMITED, UPSTREAM_ERROR, UNKNOWN)
// originate in the data fetcher and are rendered by the boundary layer as an
// error card. INVALID_* codes are raised while validating request input.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidColor, "invalid color: %q", raw)
//	if errors.Is(err, errors.ErrCodeInvalidColor) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeUpstream, origErr, "fetch %s", url)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Upstream errors, produced by the profile fetcher
	ErrCodeUserNotFound Code = "USER_NOT_FOUND"
	ErrCodeRateLimited  Code = "RATE_LIMITED"
	ErrCodeUpstream     Code = "UPSTREAM_ERROR"
	ErrCodeUnknown      Code = "UNKNOWN"

	// Input validation errors
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidColor    Code = "INVALID_COLOR"
	ErrCodeInvalidTheme    Code = "INVALID_THEME"
	ErrCodeInvalidCard     Code = "INVALID_CARD"
	ErrCodeInvalidUsername Code = "INVALID_USERNAME"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
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

// Kind collapses err onto one of the four upstream codes shown on the
// error card. Codes outside that set map to ErrCodeUnknown.
func Kind(err error) Code {
	switch code := GetCode(err); code {
	case ErrCodeUserNotFound, ErrCodeRateLimited, ErrCodeUpstream:
		return code
	default:
		return ErrCodeUnknown
	}
}
