package models

import "errors"

var (
	ErrCourseNotFound       = errors.New("course not found")
	ErrModuleNotFound       = errors.New("module not found")
	ErrMediaMissing         = errors.New("media file missing")
	ErrUserNotFound         = errors.New("user not found")
	ErrEmailTaken           = errors.New("email already registered")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrCertificateNotFound  = errors.New("certificate not found")
	ErrCoursesAlreadySeeded = errors.New("courses already seeded")
	ErrValidation           = errors.New("validation failed")
)

// ValidationError carries a client-facing message for rejected input.
// It matches ErrValidation with errors.Is.
type ValidationError struct {
	Message string
}

// NewValidationError creates a validation error with the given message
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is reports ErrValidation as the sentinel of every validation error
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
