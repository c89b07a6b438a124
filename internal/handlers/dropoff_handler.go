package handlers

import (
	"errors"
	"net/http"

	"github.com/ecodrop/ecodrop-backend/internal/models"
	"github.com/ecodrop/ecodrop-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// DropoffHandler handles drop-off HTTP requests
type DropoffHandler struct {
	dropoffService services.DropoffService
}

// NewDropoffHandler creates a new DropoffHandler
func NewDropoffHandler(dropoffService services.DropoffService) *DropoffHandler {
	return &DropoffHandler{
		dropoffService: dropoffService,
	}
}

// CreateDropoff handles POST /api/dropoffs
func (h *DropoffHandler) CreateDropoff(c *gin.Context) {
	var request struct {
		UID        string                 `json:"uid" binding:"required"`
		Categories map[string]interface{} `json:"categories" binding:"required"`
		StationID  string                 `json:"stationId" binding:"required"`
		Date       string                 `json:"date" binding:"required"`
		Time       string                 `json:"time" binding:"required"`
		Station    map[string]interface{} `json:"station"`
	}

	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dropoff := &models.Dropoff{
		UID:        request.UID,
		Categories: request.Categories,
		StationID:  request.StationID,
		Date:       request.Date,
		Time:       request.Time,
		Station:    request.Station,
	}

	created, err := h.dropoffService.CreateDropoff(c.Request.Context(), dropoff)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"dropoff": created})
}

// ListPending handles GET /api/dropoffs/pending
func (h *DropoffHandler) ListPending(c *gin.Context) {
	dropoffs, err := h.dropoffService.ListPending(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"dropoffs": dropoffs})
}

// ListByUser handles GET /api/users/:uid/dropoffs
func (h *DropoffHandler) ListByUser(c *gin.Context) {
	uid := c.Param("uid")

	dropoffs, err := h.dropoffService.ListByUser(c.Request.Context(), uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"dropoffs": dropoffs})
}

// CompleteDropoff handles PATCH /api/dropoffs/:id/complete
func (h *DropoffHandler) CompleteDropoff(c *gin.Context) {
	dropoffID := c.Param("id")

	// Pointer so a zero-point completion still binds.
	var request struct {
		TotalPoints *int `json:"totalPoints" binding:"required"`
	}

	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dropoff, userPoints, err := h.dropoffService.CompleteDropoff(c.Request.Context(), dropoffID, *request.TotalPoints)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDropoffNotPending), errors.Is(err, services.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"dropoff": dropoff, "userPoints": userPoints})
}
