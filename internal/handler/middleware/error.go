package middleware

import (
	"log/slog"
	"net/http"

	"coworking-booking/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler is the last-resort net: a handler that recorded errors
// but never wrote a response still answers the flat error body.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		if len(c.Errors) == 0 {
			if status := c.Writer.Status(); status != http.StatusOK {
				c.Status(status)
				c.Writer.WriteHeaderNow()
			}
			return
		}
		slog.Error("request failed without a response",
			"path", c.Request.URL.Path,
			"errors", c.Errors.String(),
		)
		c.JSON(http.StatusInternalServerError, httperr.Body{Error: "Internal server error"})
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				slog.Error("recovered from panic", "panic", r, "path", c.Request.URL.Path)
				c.AbortWithStatusJSON(http.StatusInternalServerError, httperr.Body{Error: "Internal server error"})
			}
		}()
		c.Next()
	}
}
