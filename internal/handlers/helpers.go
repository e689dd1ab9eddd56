package handlers

import (
	"errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "pembukuan/internal/errors"
	"pembukuan/internal/logger"
	"pembukuan/internal/uuid"
	"pembukuan/internal/validator"
)

// ErrorDetail represents the inner error object in an error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// MessageResponse represents a simple message response
type MessageResponse struct {
	Message string `json:"message"`
}

// parsePathID reads a UUID path parameter.
// Returns ErrInvalidInput if the parameter is not a valid UUID.
//
//nolint:unparam // param is intentionally generic for reuse across handlers with different path params
func parsePathID(c *gin.Context, param string) (string, error) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid "+param)
	}
	return id, nil
}

// parseDate parses a YYYY-MM-DD calendar date. RFC3339 timestamps are
// accepted too and truncated to their day.
func parseDate(field, value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(validator.DateLayout, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Time{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid "+field+" format, use YYYY-MM-DD")
}

// respondWithError writes a consistent JSON error response. If the error is an
// *AppError it uses the error's status code, code, and message. Otherwise it
// logs the unexpected error and returns a generic internal server error.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		c.JSON(appErr.StatusCode, ErrorResponse{Error: ErrorDetail{Code: appErr.Code, Message: appErr.Message}})
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(apperrors.ErrInternalServer.StatusCode, ErrorResponse{Error: ErrorDetail{
		Code:    apperrors.ErrInternalServer.Code,
		Message: apperrors.ErrInternalServer.Message,
	}})
}
