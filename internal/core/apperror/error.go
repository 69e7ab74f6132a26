// Package apperror provides structured error handling for the platform.
// All business errors must use AppError for consistent API responses.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes. The first four are the business error kinds the service layer
// raises; the rest are ambient codes used by the HTTP boundary.
const (
	CodeNotFound          = "NOT_FOUND"
	CodeUniqueViolation   = "UNIQUE_VIOLATION"
	CodeDeletionError     = "DELETION_ERROR"
	CodeInvalidCredential = "INVALID_CREDENTIAL"

	CodeValidation = "VALIDATION_ERROR"
	CodeForbidden  = "FORBIDDEN"
	CodeInternal   = "INTERNAL_ERROR"
)

// AppError is the standard error type for the platform.
// It implements the error interface and carries structured details
// for API responses.
type AppError struct {
	// Code is a machine-readable error identifier
	Code string `json:"code"`

	// Message is a human-readable error description
	Message string `json:"message"`

	// Details contains additional context (entity, field, id, ...)
	Details map[string]any `json:"details,omitempty"`

	// HTTPStatus is the suggested HTTP status code
	HTTPStatus int `json:"-"`

	// Err is the underlying error (not exposed in JSON)
	Err error `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *AppError) Unwrap() error {
	return e.Err
}

// WithDetail adds a key-value pair to error details.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithCause sets the underlying error.
func (e *AppError) WithCause(err error) *AppError {
	e.Err = err
	return e
}

// --- Factory functions ---

// NewNotFound creates a not found error (404).
func NewNotFound(entity string, id any) *AppError {
	return &AppError{
		Code:       CodeNotFound,
		Message:    fmt.Sprintf("%s not found", entity),
		HTTPStatus: http.StatusNotFound,
		Details:    map[string]any{"entity": entity, "id": id},
	}
}

// NewUniqueViolation creates a uniqueness violation error (409).
// Uniqueness is evaluated against live (non-deleted) rows only.
func NewUniqueViolation(entity, field string) *AppError {
	return &AppError{
		Code:       CodeUniqueViolation,
		Message:    fmt.Sprintf("%s %s must be unique", entity, field),
		HTTPStatus: http.StatusConflict,
		Details:    map[string]any{"entity": entity, "field": field},
	}
}

// NewDeletionError creates a deletion-time integrity error (409).
// Reserved for referential failures surfaced by the store during deletion.
func NewDeletionError(entity string, id any) *AppError {
	return &AppError{
		Code:       CodeDeletionError,
		Message:    fmt.Sprintf("%s cannot be deleted", entity),
		HTTPStatus: http.StatusConflict,
		Details:    map[string]any{"entity": entity, "id": id},
	}
}

// NewInvalidCredential creates an authentication error (401).
// Callers must keep the message identical across underlying causes so the
// response does not leak which check failed.
func NewInvalidCredential(message string) *AppError {
	return &AppError{
		Code:       CodeInvalidCredential,
		Message:    message,
		HTTPStatus: http.StatusUnauthorized,
	}
}

// NewValidation creates a validation error (400).
func NewValidation(message string) *AppError {
	return &AppError{
		Code:       CodeValidation,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

// NewForbidden creates an authorization error (403).
func NewForbidden(message string) *AppError {
	return &AppError{
		Code:       CodeForbidden,
		Message:    message,
		HTTPStatus: http.StatusForbidden,
	}
}

// NewInternal creates an internal server error (hides details from client).
func NewInternal(err error) *AppError {
	return &AppError{
		Code:       CodeInternal,
		Message:    "Internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// --- Helper functions ---

// AsAppError extracts AppError from an error chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// GetHTTPStatus returns the appropriate HTTP status for any error.
func GetHTTPStatus(err error) int {
	if appErr, ok := AsAppError(err); ok {
		return appErr.HTTPStatus
	}
	return http.StatusInternalServerError
}

func is(err error, code string) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code == code
	}
	return false
}

// IsNotFound checks if the error is CodeNotFound.
func IsNotFound(err error) bool { return is(err, CodeNotFound) }

// IsUniqueViolation checks if the error is CodeUniqueViolation.
func IsUniqueViolation(err error) bool { return is(err, CodeUniqueViolation) }

// IsInvalidCredential checks if the error is CodeInvalidCredential.
func IsInvalidCredential(err error) bool { return is(err, CodeInvalidCredential) }
