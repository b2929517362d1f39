package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Deba69/BookList/internal/logger"
)

// Logging logs HTTP requests and results.
type Logging struct {
	logger *logger.Logger
}

// NewLogging creates a new Logging middleware.
func NewLogging(logger *logger.Logger) *Logging {
	return &Logging{logger: logger}
}

// Handle logs method, route, status and duration for each request.
func (l *Logging) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}

		args := []any{
			"method", c.Request.Method,
			"path", route,
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
		}

		switch {
		case status >= 500:
			l.logger.Error("HTTP request failed", args...)
		case status >= 400:
			l.logger.Warn("HTTP request rejected", args...)
		default:
			l.logger.Info("HTTP request completed", args...)
		}
	}
}
