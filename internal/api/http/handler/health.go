package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Deba69/BookList/internal/logger"
)

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Health struct {
	store  Pinger
	logger *logger.Logger
}

func NewHealth(store Pinger, logger *logger.Logger) *Health {
	return &Health{store: store, logger: logger}
}

// Check answers 200 while the store responds and 503 otherwise.
func (h *Health) Check(c *gin.Context) {
	if err := h.store.Ping(c.Request.Context()); err != nil {
		h.logger.Warn("HTTP handler: health check failed",
			"error", err.Error())
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
