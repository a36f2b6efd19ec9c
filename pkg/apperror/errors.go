package apperror

import (
	"errors"
	"net/http"
)

var (
	ErrNotFound     = errors.New("resource not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrBadRequest   = errors.New("bad request")
	ErrInternal     = errors.New("internal server error")

	// Authentication outcomes. Unknown phone and wrong password share the
	// same sentinel so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid phone number or password")
	ErrAccountDeactivated = errors.New("your account has been deactivated, please contact support")

	// Role / profile state machine outcomes.
	ErrProfileMissing    = errors.New("profile for the requested role does not exist")
	ErrProfileExists     = errors.New("profile for this role already exists")
	ErrProfileIncomplete = errors.New("profile is incomplete")
	ErrRoleMismatch      = errors.New("active role does not permit this action")
)

// ValidationError carries a field -> messages map for 422 responses.
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

// NewValidation builds a ValidationError for a single field.
func NewValidation(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string][]string{field: {message}}}
}

// AppError is a custom error type that can hold an HTTP status code
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError
func New(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// MapErrorToStatus maps common errors to HTTP status codes
func MapErrorToStatus(err error) int {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusUnprocessableEntity
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrUnauthorized) || errors.Is(err, ErrInvalidCredentials) {
		return http.StatusUnauthorized
	}
	if errors.Is(err, ErrForbidden) || errors.Is(err, ErrAccountDeactivated) || errors.Is(err, ErrRoleMismatch) {
		return http.StatusForbidden
	}
	if errors.Is(err, ErrProfileExists) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrBadRequest) || errors.Is(err, ErrProfileMissing) || errors.Is(err, ErrProfileIncomplete) {
		return http.StatusBadRequest
	}
	// Default to internal server error
	return http.StatusInternalServerError
}
