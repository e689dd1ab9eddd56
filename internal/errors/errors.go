// Package errors provides the application error type for the ledger API.
// Service-layer errors are AppErrors so that handlers can turn them into
// consistent JSON responses without leaking store details to clients.
package errors

import (
	stderrors "errors"
	"net/http"
)

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

// Is matches AppErrors by code, so a wrapped sentinel still satisfies
// errors.Is(err, ErrTransactionNotFound).
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	return ok && t.Code == e.Code
}

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

// IsValidation reports whether err is a client-input error (HTTP 400).
func IsValidation(err error) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr) && appErr.StatusCode == http.StatusBadRequest
}

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Period and filter errors.
var (
	ErrInvalidPeriod = &AppError{Code: "INVALID_PERIOD", Message: "Month must be 1-12 and year must be a valid year", StatusCode: http.StatusBadRequest}
	ErrInvalidOwner  = &AppError{Code: "INVALID_OWNER", Message: "Unknown owner", StatusCode: http.StatusBadRequest}
)

// Transaction errors.
var (
	ErrTransactionNotFound     = &AppError{Code: "TRANSACTION_NOT_FOUND", Message: "Transaction not found", StatusCode: http.StatusNotFound}
	ErrInvalidTransactionKind  = &AppError{Code: "INVALID_TRANSACTION_KIND", Message: "Transaction kind must be income or expense", StatusCode: http.StatusBadRequest}
	ErrNegativeAmount          = &AppError{Code: "INVALID_INPUT", Message: "amount must not be negative", StatusCode: http.StatusBadRequest}
	ErrTransactionSaveFailed   = &AppError{Code: "TRANSACTION_SAVE_FAILED", Message: "Failed to save transaction", StatusCode: http.StatusInternalServerError}
	ErrTransactionDeleteFailed = &AppError{Code: "TRANSACTION_DELETE_FAILED", Message: "Failed to delete transaction", StatusCode: http.StatusInternalServerError}
)

// Report errors.
var (
	ErrReportTotalsMismatch = &AppError{Code: "REPORT_TOTALS_MISMATCH", Message: "Report totals do not match the period summary", StatusCode: http.StatusInternalServerError}
	ErrReportRenderFailed   = &AppError{Code: "REPORT_RENDER_FAILED", Message: "Failed to render report", StatusCode: http.StatusInternalServerError}
)
