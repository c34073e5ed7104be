package services

import "errors"

// ValidationError is a malformed or missing input reported back to the caller as-is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a ValidationError with the given user-facing message.
func NewValidationError(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

// Validation errors
var (
	ErrFieldsRequired         = NewValidationError("all fields are required")
	ErrPasswordTooShort       = NewValidationError("password must be at least 6 characters long")
	ErrPasswordTooLong        = NewValidationError("password must be at most 72 bytes long")
	ErrInvalidEmail           = NewValidationError("invalid email format")
	ErrLoginFieldsRequired    = NewValidationError("email and password are required")
	ErrGenerateFieldsRequired = NewValidationError("idea and appType are required")
	ErrInvalidAppType         = NewValidationError("appType must be either mobile or web")
)

// Error variables
var (
	ErrStoreUnavailable   = errors.New("user store unavailable")
	ErrUserAlreadyExists  = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
