package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Dispatch errors
	ErrMissingArgument ErrorCode = "MISSING_ARGUMENT"
	ErrUnknownCommand  ErrorCode = "UNKNOWN_COMMAND"

	// List errors
	ErrIndexOutOfRange ErrorCode = "INDEX_OUT_OF_RANGE"

	// Path errors
	ErrPathResolution ErrorCode = "PATH_RESOLUTION"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
)

// PathedError represents a structured error with code and details
type PathedError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *PathedError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *PathedError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *PathedError) Is(target error) bool {
	var targetErr *PathedError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new PathedError with the given code and message
func New(code ErrorCode, message string) *PathedError {
	return &PathedError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new PathedError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *PathedError {
	return &PathedError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a PathedError
func Wrap(err error, code ErrorCode, message string) *PathedError {
	if err == nil {
		return nil
	}
	return &PathedError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *PathedError {
	if err == nil {
		return nil
	}
	return &PathedError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *PathedError) WithDetail(key string, value interface{}) *PathedError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var pathedErr *PathedError
	if errors.As(err, &pathedErr) {
		return pathedErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a PathedError
func GetErrorCode(err error) ErrorCode {
	var pathedErr *PathedError
	if errors.As(err, &pathedErr) {
		return pathedErr.Code
	}
	return ErrUnknown
}
