// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for the corebridge
// boundary. Only one failure class exists at the boundary: contract
// violations, which are fatal and converted to aborts at the C surface.
// Every other operation is total over well-formed input.

package api

import "fmt"

// Common errors used across the library.
var (
	ErrNullPointer         = fmt.Errorf("null pointer where a valid pointer is required")
	ErrMalformedIdentifier = fmt.Errorf("malformed identifier text")
	ErrInvalidArgument     = fmt.Errorf("invalid argument")
	ErrNegativeTime        = fmt.Errorf("negative or non-finite time value")
	ErrOverflow            = fmt.Errorf("value overflows 64-bit nanoseconds")
)

// ErrorCode represents specific contract-violation conditions.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeNullPointer
	ErrCodeMalformedIdentifier
	ErrCodeInvalidArgument
	ErrCodeNegativeTime
	ErrCodeOverflow
)

// Error represents a structured error with code and context.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (context: %+v)", e.Message, e.Context)
}

// NewError creates a new structured error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Context: make(map[string]any),
	}
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}
