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
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Manifest errors
	ErrManifestLoad    ErrorCode = "MANIFEST_LOAD"
	ErrManifestParse   ErrorCode = "MANIFEST_PARSE"
	ErrManifestInvalid ErrorCode = "MANIFEST_INVALID"

	// Requirement spec errors
	ErrSpecInvalid   ErrorCode = "SPEC_INVALID"
	ErrSpecDuplicate ErrorCode = "SPEC_DUPLICATE"

	// Platform errors
	ErrPlatformUnknown ErrorCode = "PLATFORM_UNKNOWN"

	// Install step errors
	ErrPipInstall   ErrorCode = "PIP_INSTALL"
	ErrSetupInstall ErrorCode = "SETUP_INSTALL"
	ErrStepFailed   ErrorCode = "STEP_FAILED"

	// Environment errors
	ErrEnvFlag ErrorCode = "ENV_FLAG"

	// Install record errors
	ErrRecordMissing ErrorCode = "RECORD_MISSING"
	ErrRecordRead    ErrorCode = "RECORD_READ"
	ErrRecordEmpty   ErrorCode = "RECORD_EMPTY"

	// Conda environment errors
	ErrCondaEnvRead  ErrorCode = "CONDA_ENV_READ"
	ErrCondaEnvParse ErrorCode = "CONDA_ENV_PARSE"
)

// PipstrapError represents a structured error with code and details
type PipstrapError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *PipstrapError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *PipstrapError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *PipstrapError) Is(target error) bool {
	var targetErr *PipstrapError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new PipstrapError with the given code and message
func New(code ErrorCode, message string) *PipstrapError {
	return &PipstrapError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new PipstrapError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *PipstrapError {
	return &PipstrapError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a PipstrapError
func Wrap(err error, code ErrorCode, message string) *PipstrapError {
	if err == nil {
		return nil
	}
	return &PipstrapError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *PipstrapError {
	if err == nil {
		return nil
	}
	return &PipstrapError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *PipstrapError) WithDetail(key string, value interface{}) *PipstrapError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var perr *PipstrapError
	if errors.As(err, &perr) {
		return perr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a PipstrapError
func GetErrorCode(err error) ErrorCode {
	var perr *PipstrapError
	if errors.As(err, &perr) {
		return perr.Code
	}
	return ErrUnknown
}
