package handlers

import (
	"errors"
	"net/http"

	"github.com/ecodrop/ecodrop-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	userService services.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// UpsertUser handles POST /api/users
func (h *UserHandler) UpsertUser(c *gin.Context) {
	var request struct {
		UID         string `json:"uid" binding:"required"`
		Email       string `json:"email" binding:"required,min=3"`
		DisplayName string `json:"displayName"`
	}

	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userService.UpsertUser(c.Request.Context(), request.UID, request.Email, request.DisplayName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// GetPoints handles GET /api/users/:uid/points
func (h *UserHandler) GetPoints(c *gin.Context) {
	uid := c.Param("uid")

	points, err := h.userService.GetPoints(c.Request.Context(), uid)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"points": points})
}

// UpdatePoints handles PATCH /api/users/:uid/points
func (h *UserHandler) UpdatePoints(c *gin.Context) {
	uid := c.Param("uid")

	// Pointer fields so "absent" and "zero" stay distinguishable.
	var request struct {
		Delta *int `json:"delta"`
		Set   *int `json:"set"`
	}

	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	points, err := h.userService.UpdatePoints(c.Request.Context(), uid, request.Delta, request.Set)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNoPointsInstruction):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"points": points})
}
