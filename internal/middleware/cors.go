package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORS allows any origin to call the API. Preflight requests are answered
// without reaching the handlers.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Disposition, X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
