package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ncobase/taskboard/logging/logger"
	"github.com/ncobase/taskboard/net/resp"
)

// HealthHandler answers liveness probes.
type HealthHandler struct {
	pinger Pinger
	logger *logger.Logger
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(pinger Pinger, logger *logger.Logger) *HealthHandler {
	return &HealthHandler{pinger: pinger, logger: logger}
}

// Check handles GET /health.
func (h *HealthHandler) Check(c *gin.Context) {
	if err := h.pinger.Ping(c.Request.Context()); err != nil {
		h.logger.Warn(c.Request.Context(), "health check failed", "error", err)
		resp.WithStatusCode(c.Writer, http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	resp.Success(c.Writer, gin.H{"status": "ok"})
}
