package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Validation errors
const (
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeMissingField indicates a required field is missing.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
	// ErrCodeInvalidFormat indicates a value does not have the expected shape.
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
)

// Upstream errors
const (
	// ErrCodeUnexpectedShape indicates an upstream document lacks the
	// structure the caller depends on.
	ErrCodeUnexpectedShape ErrorCode = "UNEXPECTED_SHAPE"
	// ErrCodeExternalService indicates an error from an external service.
	ErrCodeExternalService ErrorCode = "EXTERNAL_SERVICE_ERROR"
)

// Internal errors
const (
	// ErrCodeInternal indicates an internal error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)
