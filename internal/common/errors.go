package common

import "net/http"

// Error kinds surfaced to API clients.
const (
	KindValidation = "Validation Error"
	KindNotFound   = "Not Found"
	KindInternal   = "Internal Server Error"
)

// AppError represents an error with a public kind and HTTP status.
type AppError struct {
	Kind       string
	Message    string
	HTTPStatus int
	Err        error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

// Unwrap allows errors.Is/As to inspect the underlying error.
func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NewValidationError constructs an AppError describing rejected input.
func NewValidationError(message string) *AppError {
	return &AppError{Kind: KindValidation, Message: message, HTTPStatus: http.StatusBadRequest}
}

// NewNotFoundError constructs an AppError for a missing resource.
func NewNotFoundError(message string) *AppError {
	return &AppError{Kind: KindNotFound, Message: message, HTTPStatus: http.StatusNotFound}
}
