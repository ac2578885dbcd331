package apperrors

import "errors"

// Common errors
var (
	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionInvalid     = errors.New("invalid session")
	ErrSessionExpired     = errors.New("session expired")

	// Authorization errors
	ErrAccessDenied = errors.New("access denied")

	// User errors
	ErrUserNotFound  = errors.New("user not found")
	ErrUsernameTaken = errors.New("username already exists")
	ErrInvalidRole   = errors.New("invalid role")

	// Upload errors
	ErrNoFileSelected      = errors.New("no file selected")
	ErrUnsupportedFileType = errors.New("unsupported file type")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")

	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with an underlying sentinel error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// NewValidationError creates a validation error with a message
func NewValidationError(message string) error {
	return NewCustomError(ErrValidationFailed, message)
}
