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
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Codec errors
	ErrUnsupportedStyle ErrorCode = "UNSUPPORTED_STYLE"

	// Console lifecycle errors
	ErrNotActive ErrorCode = "NOT_ACTIVE"
	ErrAlloc     ErrorCode = "ALLOC"
	ErrFree      ErrorCode = "FREE"
	ErrSetMode   ErrorCode = "SET_MODE"
	ErrGetFont   ErrorCode = "GET_FONT"
	ErrSetFont   ErrorCode = "SET_FONT"
	ErrEncoding  ErrorCode = "ENCODING"
	ErrWrite     ErrorCode = "WRITE"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
)

// TakonsoleError represents a structured error with code and details
type TakonsoleError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *TakonsoleError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *TakonsoleError) Unwrap() error {
	return e.Wrapped
}

// Is matches any TakonsoleError carrying the same code
func (e *TakonsoleError) Is(target error) bool {
	var targetErr *TakonsoleError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new TakonsoleError with the given code and message
func New(code ErrorCode, message string) *TakonsoleError {
	return &TakonsoleError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new TakonsoleError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *TakonsoleError {
	return &TakonsoleError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a TakonsoleError
func Wrap(err error, code ErrorCode, message string) *TakonsoleError {
	if err == nil {
		return nil
	}
	return &TakonsoleError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *TakonsoleError {
	if err == nil {
		return nil
	}
	return &TakonsoleError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *TakonsoleError) WithDetail(key string, value interface{}) *TakonsoleError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var tkErr *TakonsoleError
	if errors.As(err, &tkErr) {
		return tkErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a TakonsoleError
func GetErrorCode(err error) ErrorCode {
	var tkErr *TakonsoleError
	if errors.As(err, &tkErr) {
		return tkErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a TakonsoleError
func GetErrorDetails(err error) map[string]interface{} {
	var tkErr *TakonsoleError
	if errors.As(err, &tkErr) {
		return tkErr.Details
	}
	return nil
}
