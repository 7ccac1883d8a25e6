package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	store   Pinger
	timeout time.Duration
}

// NewHealthHandler reports the store's reachability when store is non-nil.
func NewHealthHandler(store Pinger) *HealthHandler {
	return &HealthHandler{store: store, timeout: 2 * time.Second}
}

// GET /healthcheck
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()
	if err := h.store.Ping(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "database": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "database": "ok"})
}
