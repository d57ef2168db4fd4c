package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/demeter-health/backend/internal/service"
)

// DashboardHandler serves the per-day totals, targets and alert view.
type DashboardHandler struct {
	profiles *service.ProfileService
	totals   service.ITotalsService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(profiles *service.ProfileService, totals service.ITotalsService) *DashboardHandler {
	return &DashboardHandler{profiles: profiles, totals: totals}
}

// RegisterRoutes registers the dashboard routes
func (h *DashboardHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/dashboard/:uid", h.GetDashboard)
}

// GetDashboard returns the user's totals, targets and the single alert for a
// day. The date query parameter defaults to today.
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	uid, ok := requireUID(c)
	if !ok {
		return
	}

	date := c.Query("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	targets, err := h.profiles.GetTargets(c.Request.Context(), uid)
	if err != nil {
		respondStorageError(c, err)
		return
	}

	totals, err := h.totals.ComputeDailyTotals(c.Request.Context(), uid, date)
	if err != nil {
		respondStorageError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":    date,
		"totals":  totals,
		"targets": targets,
		"alert":   service.EvaluateAlert(totals, targets),
	})
}
