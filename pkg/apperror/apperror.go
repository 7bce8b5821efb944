package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes returned to API clients.
const (
	CodeValidation        = "VALIDATION_ERROR"
	CodeNotFound          = "NOT_FOUND"
	CodeConflict          = "CONFLICT"
	CodeInsufficientStock = "INSUFFICIENT_STOCK"
	CodeUnauthorized      = "UNAUTHORIZED"
	CodeForbidden         = "FORBIDDEN"
	CodeInternal          = "INTERNAL_ERROR"
)

// AppError is the single error type that crosses the service boundary.
// Handlers map it onto the uniform error envelope; anything that is not an
// AppError is treated as internal.
type AppError struct {
	Code    string
	Message string
	Status  int
	// Details carries technical context (constraint names, wrapped driver
	// errors) that is safe to expose for debugging but never required.
	Details string
}

func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func Validation(msg string) *AppError {
	return &AppError{Code: CodeValidation, Message: msg, Status: http.StatusBadRequest}
}

func NotFound(msg string) *AppError {
	return &AppError{Code: CodeNotFound, Message: msg, Status: http.StatusNotFound}
}

func Conflict(msg string) *AppError {
	return &AppError{Code: CodeConflict, Message: msg, Status: http.StatusConflict}
}

func InsufficientStock(msg string) *AppError {
	return &AppError{Code: CodeInsufficientStock, Message: msg, Status: http.StatusConflict}
}

func Unauthorized(msg string) *AppError {
	return &AppError{Code: CodeUnauthorized, Message: msg, Status: http.StatusUnauthorized}
}

func Forbidden(msg string) *AppError {
	return &AppError{Code: CodeForbidden, Message: msg, Status: http.StatusForbidden}
}

func Internal(msg string) *AppError {
	return &AppError{Code: CodeInternal, Message: msg, Status: http.StatusInternalServerError}
}

// WithDetails returns a copy carrying technical details.
func (e *AppError) WithDetails(details string) *AppError {
	c := *e
	c.Details = details
	return &c
}

// From normalizes any error into an AppError. Unknown errors become
// INTERNAL_ERROR with the original text kept as technical details so raw
// driver messages never become the client-facing message.
func From(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return Internal("an unexpected error occurred").WithDetails(err.Error())
}

// IsCode reports whether err is an AppError with the given code.
func IsCode(err error, code string) bool {
	var ae *AppError
	return errors.As(err, &ae) && ae.Code == code
}
