package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/edalcin/medlog/internal/shared/telemetry"
)

// Recovery recovers from panics and renders the error page.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				telemetry.Error("panic", map[string]any{
					"request_id": RequestIDFromContext(c),
					"error":      rec,
					"stack":      string(debug.Stack()),
					"path":       c.Request.URL.Path,
					"method":     c.Request.Method,
				})
				c.HTML(http.StatusInternalServerError, "error.html", gin.H{
					"Title":   "Server error",
					"Message": "Unexpected server error",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}
