package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "pembukuan/internal/errors"
	"pembukuan/internal/logger"
)

// ErrorHandler returns a Gin middleware that converts errors set on the Gin
// context into {"error": {"code", "message"}} responses. Internal causes are
// logged with the request id and never sent to the client. A response a
// handler already wrote is left alone.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		// the last error is the most relevant one in a middleware chain
		err := c.Errors.Last().Err

		appErr := apperrors.ErrInternalServer
		if !errors.As(err, &appErr) {
			logger.Get().Errorw("unexpected error",
				"error", err.Error(),
				"request_id", RequestID(c),
				"path", c.Request.URL.Path,
				"method", c.Request.Method,
			)
		} else if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"request_id", RequestID(c),
				"path", c.Request.URL.Path,
			)
		} else if apperrors.IsValidation(appErr) {
			logger.Get().Infow("rejected request",
				"code", appErr.Code,
				"message", appErr.Message,
				"request_id", RequestID(c),
				"path", c.Request.URL.Path,
			)
		}

		c.JSON(appErr.StatusCode, gin.H{
			"error": gin.H{
				"code":    appErr.Code,
				"message": appErr.Message,
			},
		})
	}
}

// NotFound is the handler for unknown routes. It reports NOT_FOUND through
// ErrorHandler so unmatched paths get the same error envelope as the API.
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		_ = c.Error(apperrors.ErrNotFound)
	}
}
