package main

import (
	"context"
	"log"

	"github.com/demeter-health/backend/config"
	"github.com/demeter-health/backend/internal/api"
	"github.com/demeter-health/backend/internal/database"
	"github.com/demeter-health/backend/internal/middleware"
	"github.com/demeter-health/backend/internal/router"
	"github.com/demeter-health/backend/internal/server"
	"github.com/demeter-health/backend/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("failed to connect to Redis: %v", err)
	}

	s3Config, err := config.NewS3Config(context.Background(), cfg)
	if err != nil {
		log.Fatalf("failed to initialize S3: %v", err)
	}

	// Services
	scans := service.NewScanService(db, s3Config)

	ocr, err := service.NewOCRService()
	if err != nil {
		log.Fatalf("failed to initialize OCR service: %v", err)
	}
	gemini, err := service.NewGeminiService(scans)
	if err != nil {
		log.Fatalf("failed to initialize Gemini service: %v", err)
	}
	spoonacular, err := service.NewSpoonacularService()
	if err != nil {
		log.Fatalf("failed to initialize Spoonacular service: %v", err)
	}
	tts, err := service.NewTTSService()
	if err != nil {
		log.Fatalf("failed to initialize TTS service: %v", err)
	}

	cache := service.NewRedisHealthPlanCache(redisClient)
	plans := service.NewHealthPlanService(cache, ocr, gemini, gemini)
	matcher := service.NewRecipeMatcher(spoonacular, nil)
	totals := service.NewTotalsService(db)
	profiles := service.NewProfileService(db)

	// HTTP layer
	handlers := router.Handlers{
		Scans:      api.NewScanHandler(scans),
		HealthPlan: api.NewHealthPlanHandler(plans),
		Profile:    api.NewProfileHandler(profiles),
		Recipes:    api.NewRecipeHandler(plans, matcher, totals),
		Dashboard:  api.NewDashboardHandler(profiles, totals),
		TTS:        api.NewTTSHandler(tts),
	}
	limiter := middleware.NewVendorRateLimiter(redisClient)

	engine := router.SetupRouter(handlers, limiter)
	srv := server.NewServer(engine)

	log.Printf("Starting server on :%s", cfg.ServerPort)
	if err := srv.Start(cfg.ServerPort); err != nil {
		log.Fatalf("Server error: %v", err)
	}
	log.Println("Server stopped")
}
