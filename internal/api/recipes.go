package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/demeter-health/backend/internal/service"
)

// RecipeHandler handles recipe search and the save/list flow.
type RecipeHandler struct {
	plans   service.IHealthPlanService
	matcher service.IRecipeMatcher
	totals  service.ITotalsService
}

// NewRecipeHandler creates a new RecipeHandler
func NewRecipeHandler(plans service.IHealthPlanService, matcher service.IRecipeMatcher, totals service.ITotalsService) *RecipeHandler {
	return &RecipeHandler{plans: plans, matcher: matcher, totals: totals}
}

// RegisterRoutes registers the recipe routes
func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup, limit gin.HandlerFunc) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("/search/:uid", limit, h.Search)
		recipes.POST("/save/:uid", h.Save)
		recipes.GET("/saved/:uid/:date", h.ListSaved)
	}
}

// Search finds recipes that use the user's include list and avoid their
// exclude list, per their current health plan.
func (h *RecipeHandler) Search(c *gin.Context) {
	uid, ok := requireUID(c)
	if !ok {
		return
	}

	plan, err := h.plans.GetHealthPlan(c.Request.Context(), uid, false)
	if err != nil {
		respondError(c, err)
		return
	}

	recipes, err := h.matcher.FindRecipes(c.Request.Context(), plan.Include, plan.Exclude)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

// SaveRecipeRequest is the payload for saving a cooked recipe to a day.
type SaveRecipeRequest struct {
	Date   string                  `json:"date" binding:"required"`
	Recipe service.RecipeCandidate `json:"recipe" binding:"required"`
}

// Save snapshots a recipe for the given user and date and returns the
// recomputed daily totals.
func (h *RecipeHandler) Save(c *gin.Context) {
	uid, ok := requireUID(c)
	if !ok {
		return
	}

	var req SaveRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid save payload"})
		return
	}

	saved, totals, err := h.totals.SaveRecipe(c.Request.Context(), uid, req.Date, &req.Recipe)
	if err != nil {
		respondStorageError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"saved": saved, "totals": totals})
}

// ListSaved returns the user's saved recipes for a date.
func (h *RecipeHandler) ListSaved(c *gin.Context) {
	uid, ok := requireUID(c)
	if !ok {
		return
	}
	date := c.Param("date")

	recipes, err := h.totals.ListSaved(c.Request.Context(), uid, date)
	if err != nil {
		respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}
