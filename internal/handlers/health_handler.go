package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler handles liveness checks
type HealthHandler struct{}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Health handles GET /api/health. Always true, no store touch.
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
