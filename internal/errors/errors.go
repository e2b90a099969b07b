// Package errors provides custom error types for the CondoGest report service.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Authentication & authorization errors.
var (
	ErrUnauthorized = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
	ErrForbidden    = &AppError{Code: "FORBIDDEN", Message: "Access denied", StatusCode: http.StatusForbidden}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Record store errors.
var (
	ErrRecordStoreUnavailable = &AppError{Code: "RECORD_STORE_UNAVAILABLE", Message: "Could not load data from the condominium service", StatusCode: http.StatusBadGateway}
	ErrTransactionNotFound    = &AppError{Code: "TRANSACTION_NOT_FOUND", Message: "Transaction not found", StatusCode: http.StatusNotFound}
)

// Report errors.
var (
	ErrRenderFailed  = &AppError{Code: "RENDER_FAILED", Message: "Could not generate the report document", StatusCode: http.StatusInternalServerError}
	ErrUnknownReport = &AppError{Code: "UNKNOWN_REPORT", Message: "Unknown report type", StatusCode: http.StatusNotFound}
)

// Share link errors.
var (
	ErrShareTokenDenied = &AppError{Code: "SHARE_TOKEN_DENIED", Message: "This report link is invalid or has expired", StatusCode: http.StatusForbidden}
	ErrShareIssueFailed = &AppError{Code: "SHARE_ISSUE_FAILED", Message: "Could not create a share link for this report", StatusCode: http.StatusBadGateway}
)
