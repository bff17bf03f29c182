package models

import "errors"

// Sentinel errors services return to signal the response class. Handlers map
// them onto status codes; anything else becomes a 500.
var (
	ErrNotFound  = errors.New("not found")
	ErrConflict  = errors.New("conflict")
	ErrForbidden = errors.New("forbidden")
)

// ValidationError reports the first offending field of a request body.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return e.Message
}

// Invalid creates a validation error for the given field
func Invalid(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
