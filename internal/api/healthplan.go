package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/demeter-health/backend/internal/service"
)

// HealthPlanHandler exposes the OCR, fridge-analysis and health-plan
// endpoints.
type HealthPlanHandler struct {
	plans service.IHealthPlanService
}

// NewHealthPlanHandler creates a new HealthPlanHandler
func NewHealthPlanHandler(plans service.IHealthPlanService) *HealthPlanHandler {
	return &HealthPlanHandler{plans: plans}
}

// RegisterRoutes registers the health-plan routes
func (h *HealthPlanHandler) RegisterRoutes(router *gin.RouterGroup, limit gin.HandlerFunc) {
	router.POST("/ocr/:uid", limit, h.ProcessOCR)
	router.POST("/fridge/:uid", limit, h.AnalyzeFridge)
	router.POST("/grocery/:uid", limit, h.AnalyzeGrocery)
	router.GET("/health-plan/:uid", limit, h.GetHealthPlan)
}

// ProcessOCR extracts text from the user's latest medical-report scan.
func (h *HealthPlanHandler) ProcessOCR(c *gin.Context) {
	uid, ok := requireUID(c)
	if !ok {
		return
	}

	result, err := h.plans.ProcessOCR(c.Request.Context(), uid)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// AnalyzeFridge extracts ingredient names from the user's latest fridge scan.
func (h *HealthPlanHandler) AnalyzeFridge(c *gin.Context) {
	uid, ok := requireUID(c)
	if !ok {
		return
	}

	result, err := h.plans.AnalyzeFridge(c.Request.Context(), uid)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// AnalyzeGrocery extracts ingredient names from the user's latest grocery
// scan.
func (h *HealthPlanHandler) AnalyzeGrocery(c *gin.Context) {
	uid, ok := requireUID(c)
	if !ok {
		return
	}

	result, err := h.plans.AnalyzeGrocery(c.Request.Context(), uid)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetHealthPlan returns the user's include/exclude ingredient sets, cached for
// 24 hours unless refresh=true is passed.
func (h *HealthPlanHandler) GetHealthPlan(c *gin.Context) {
	uid, ok := requireUID(c)
	if !ok {
		return
	}
	forceRefresh := c.Query("refresh") == "true"

	result, err := h.plans.GetHealthPlan(c.Request.Context(), uid, forceRefresh)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
