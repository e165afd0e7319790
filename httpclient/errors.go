package httpclient

import (
	"errors"
	"fmt"
)

// ErrUnsupportedMethod is matched by errors.Is for calls using a declared
// but unimplemented method (POST, PUT, DELETE).
var ErrUnsupportedMethod = errors.New("method not yet supported")

// ErrorCode classifies HTTP client errors.
type ErrorCode int

const (
	// ErrCodeValidation indicates a malformed request (bad method or URL).
	ErrCodeValidation ErrorCode = iota
	// ErrCodeStatus indicates a response outside the 2xx range, including
	// transport failures carrying StatusTransportFailure.
	ErrCodeStatus
	// ErrCodeSecurityMismatch indicates a request would cross the
	// secure/plain boundary of its parent context.
	ErrCodeSecurityMismatch
	// ErrCodeTLSConfig indicates the TLS context could not be constructed.
	ErrCodeTLSConfig
	// ErrCodeUnsupported indicates a method the client does not implement.
	ErrCodeUnsupported
)

// String returns the error code name.
func (c ErrorCode) String() string {
	switch c {
	case ErrCodeValidation:
		return "validation"
	case ErrCodeStatus:
		return "status"
	case ErrCodeSecurityMismatch:
		return "security_mismatch"
	case ErrCodeTLSConfig:
		return "tls_config"
	case ErrCodeUnsupported:
		return "unsupported"
	default:
		return "unknown"
	}
}

// Error is a structured HTTP client error with classification.
// None of the codes are retryable.
type Error struct {
	// StatusCode is the response status for ErrCodeStatus errors.
	StatusCode int
	// Code classifies the error.
	Code ErrorCode
	// Message describes the error.
	Message string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Code == ErrCodeStatus {
		return fmt.Sprintf("httpclient: %s (HTTP %d): %s", e.Code, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("httpclient: %s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewValidationError creates a validation error.
func NewValidationError(msg string) *Error {
	return &Error{
		Code:    ErrCodeValidation,
		Message: msg,
	}
}

// NewStatusError creates the error reported by RaiseForStatus.
func NewStatusError(statusCode int, reason string) *Error {
	return &Error{
		StatusCode: statusCode,
		Code:       ErrCodeStatus,
		Message:    fmt.Sprintf("status code not in 2XX range: %d - %s", statusCode, reason),
	}
}

// NewSecurityMismatchError creates the error for a request that would leave
// the channel of its parent. parentSecure is the parent's channel.
func NewSecurityMismatchError(parentSecure bool, url string) *Error {
	msg := fmt.Sprintf("chained request wants a secure channel but parent context lacks it: %s", url)
	if parentSecure {
		msg = fmt.Sprintf("chained request uses a plain channel on a secure parent: %s", url)
	}
	return &Error{
		Code:    ErrCodeSecurityMismatch,
		Message: msg,
	}
}

// NewTLSConfigError creates the error for an unusable TLS context.
func NewTLSConfigError(err error) *Error {
	return &Error{
		Code:    ErrCodeTLSConfig,
		Message: fmt.Sprintf("failed to establish TLS context: %v", err),
		Err:     err,
	}
}

// NewUnsupportedError creates the error for an unimplemented method.
func NewUnsupportedError(method Method) *Error {
	return &Error{
		Code:    ErrCodeUnsupported,
		Message: fmt.Sprintf("%s: %s", method, ErrUnsupportedMethod),
		Err:     ErrUnsupportedMethod,
	}
}

func hasCode(err error, code ErrorCode) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == code
}

// IsValidation checks if an error is a validation error.
func IsValidation(err error) bool { return hasCode(err, ErrCodeValidation) }

// IsStatus checks if an error is a status check failure.
func IsStatus(err error) bool { return hasCode(err, ErrCodeStatus) }

// IsSecurityMismatch checks if an error is a security boundary violation.
func IsSecurityMismatch(err error) bool { return hasCode(err, ErrCodeSecurityMismatch) }

// IsTLSConfig checks if an error is a TLS context failure.
func IsTLSConfig(err error) bool { return hasCode(err, ErrCodeTLSConfig) }

// IsUnsupported checks if an error is an unsupported method error.
func IsUnsupported(err error) bool { return hasCode(err, ErrCodeUnsupported) }
