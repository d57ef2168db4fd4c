package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/demeter-health/backend/internal/models"
	"github.com/demeter-health/backend/internal/service"
)

// ProfileHandler handles profile CRUD and derived nutrition targets.
type ProfileHandler struct {
	profiles *service.ProfileService
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(profiles *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// RegisterRoutes registers the profile routes
func (h *ProfileHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.PUT("/profile/:uid", h.UpsertProfile)
	router.GET("/profile/:uid", h.GetProfile)
}

// UpsertProfile creates or replaces the user's health profile.
func (h *ProfileHandler) UpsertProfile(c *gin.Context) {
	uid, ok := requireUID(c)
	if !ok {
		return
	}

	var profile models.UserProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid profile payload"})
		return
	}
	profile.UID = uid

	if err := h.profiles.UpsertProfile(c.Request.Context(), &profile); err != nil {
		respondStorageError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"profile": profile,
		"targets": service.TargetsForProfile(&profile),
	})
}

// GetProfile returns the user's profile together with their derived targets.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	uid, ok := requireUID(c)
	if !ok {
		return
	}

	profile, err := h.profiles.GetProfile(c.Request.Context(), uid)
	if err != nil {
		respondStorageError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"profile": profile,
		"targets": service.TargetsForProfile(profile),
	})
}
