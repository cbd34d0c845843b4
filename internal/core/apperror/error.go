// Package apperror provides structured errors shared by the dashboard core and
// its collaborators. The same shape (status, code, message) is what the HTTP
// layer reports for failed backend calls.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes
const (
	// Infrastructure errors (5xx)
	CodeInternal = "INTERNAL_ERROR"
	CodeUpstream = "UPSTREAM_ERROR"

	// Validation errors (400)
	CodeValidation   = "VALIDATION_ERROR"
	CodeInvalidInput = "INVALID_INPUT"

	// Filter registry violations (400)
	CodeUnknownCategory = "UNKNOWN_FILTER_CATEGORY"
	CodeUnknownKey      = "UNKNOWN_FILTER_KEY"
	CodeTypeMismatch    = "FILTER_TYPE_MISMATCH"

	// Not found (404)
	CodeNotFound = "NOT_FOUND"
)

// AppError is the standard error type for the dashboard.
type AppError struct {
	// Code is a machine-readable error identifier
	Code string `json:"code"`

	// Message is a human-readable error description
	Message string `json:"message"`

	// Details contains additional context (category, key, expected kind, ...)
	Details map[string]any `json:"details,omitempty"`

	// HTTPStatus is the suggested HTTP status code
	HTTPStatus int `json:"-"`

	// Err is the underlying error (not exposed in JSON)
	Err error `json:"-"`
}

// Error implements error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *AppError) Unwrap() error {
	return e.Err
}

// WithDetail adds a key-value pair to error details
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithCause sets the underlying error
func (e *AppError) WithCause(err error) *AppError {
	e.Err = err
	return e
}

// --- Factory functions ---

// NewValidation creates a validation error (400)
func NewValidation(message string) *AppError {
	return &AppError{
		Code:       CodeValidation,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

// NewInvalidInput creates an invalid input error (400)
func NewInvalidInput(message string) *AppError {
	return &AppError{
		Code:       CodeInvalidInput,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

// NewUnknownCategory is returned when a filter category is not in the registry.
func NewUnknownCategory(category string) *AppError {
	return &AppError{
		Code:       CodeUnknownCategory,
		Message:    fmt.Sprintf("unknown filter category %q", category),
		HTTPStatus: http.StatusBadRequest,
		Details:    map[string]any{"category": category},
	}
}

// NewUnknownKey is returned when a key is not declared for a category.
func NewUnknownKey(category, key string) *AppError {
	return &AppError{
		Code:       CodeUnknownKey,
		Message:    fmt.Sprintf("unknown filter key %q in category %q", key, category),
		HTTPStatus: http.StatusBadRequest,
		Details:    map[string]any{"category": category, "key": key},
	}
}

// NewTypeMismatch is returned when a value does not match the declared kind of a key.
func NewTypeMismatch(category, key, want, got string) *AppError {
	return &AppError{
		Code:       CodeTypeMismatch,
		Message:    fmt.Sprintf("filter %s.%s expects %s, got %s", category, key, want, got),
		HTTPStatus: http.StatusBadRequest,
		Details:    map[string]any{"category": category, "key": key, "want": want, "got": got},
	}
}

// NewNotFound creates a not found error (404)
func NewNotFound(entity string, id any) *AppError {
	return &AppError{
		Code:       CodeNotFound,
		Message:    fmt.Sprintf("%s not found", entity),
		HTTPStatus: http.StatusNotFound,
		Details:    map[string]any{"entity": entity, "id": id},
	}
}

// NewUpstream creates an error for a failed backend call (502).
func NewUpstream(resource string, err error) *AppError {
	return &AppError{
		Code:       CodeUpstream,
		Message:    fmt.Sprintf("failed to load %s", resource),
		HTTPStatus: http.StatusBadGateway,
		Details:    map[string]any{"resource": resource},
		Err:        err,
	}
}

// NewInternal creates an internal error (hides details from client)
func NewInternal(err error) *AppError {
	return &AppError{
		Code:       CodeInternal,
		Message:    "Internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// --- Helper functions ---

// IsAppError checks if error is AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// AsAppError extracts AppError from error chain
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// GetHTTPStatus returns appropriate HTTP status for any error
func GetHTTPStatus(err error) int {
	if appErr, ok := AsAppError(err); ok {
		return appErr.HTTPStatus
	}
	return http.StatusInternalServerError
}

// HasCode reports whether err carries an AppError with the given code.
func HasCode(err error, code string) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code == code
	}
	return false
}

// IsNotFound checks if error is CodeNotFound
func IsNotFound(err error) bool {
	return HasCode(err, CodeNotFound)
}
