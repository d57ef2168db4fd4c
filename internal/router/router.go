package router

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/demeter-health/backend/internal/api"
	"github.com/demeter-health/backend/internal/middleware"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Scans      *api.ScanHandler
	HealthPlan *api.HealthPlanHandler
	Profile    *api.ProfileHandler
	Recipes    *api.RecipeHandler
	Dashboard  *api.DashboardHandler
	TTS        *api.TTSHandler
}

// SetupRouter configures the application routes
func SetupRouter(h Handlers, limiter *middleware.RateLimiter) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(corsConfig()))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	limit := limiter.RateLimitMiddleware()

	v1 := router.Group("/api/v1")
	{
		h.Scans.RegisterRoutes(v1)
		h.HealthPlan.RegisterRoutes(v1, limit)
		h.Profile.RegisterRoutes(v1)
		h.Recipes.RegisterRoutes(v1, limit)
		h.Dashboard.RegisterRoutes(v1)
		h.TTS.RegisterRoutes(v1, limit)
	}

	return router
}

func corsConfig() cors.Config {
	origins := []string{"http://localhost:5173"}
	if env := os.Getenv("CORS_ALLOWED_ORIGINS"); env != "" {
		origins = strings.Split(env, ",")
	}

	cfg := cors.DefaultConfig()
	cfg.AllowOrigins = origins
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{"Content-Type", "Authorization", "Accept", "Origin"}
	cfg.AllowCredentials = true
	cfg.MaxAge = 24 * time.Hour
	return cfg
}
