package service

import (
	"context"
	"fmt"
	"log"
	"time"
)

// planTTL is how long a categorization result stays fresh. The categorization
// call chains two paid vendor APIs, so stale-but-recent data is preferred over
// a refetch.
const planTTL = 24 * time.Hour

// OCRResult is the extracted text of the most recent medical-report scan.
type OCRResult struct {
	FullText  string    `json:"full_text"`
	FilePath  string    `json:"file_path"`
	UID       string    `json:"uid"`
	Timestamp time.Time `json:"timestamp"`
}

// IngredientsResult is the ingredient list read from the most recent fridge scan.
type IngredientsResult struct {
	Ingredients []string  `json:"ingredients"`
	UID         string    `json:"uid"`
	Timestamp   time.Time `json:"timestamp"`
}

// CategorizationResult is the include/exclude split of the user's fridge
// ingredients against their medical report. At most one result is current per
// user; writers are last-write-wins.
type CategorizationResult struct {
	Include   []string  `json:"include"`
	Exclude   []string  `json:"exclude"`
	Timestamp time.Time `json:"timestamp"`
}

// Fresh reports whether the result is within the freshness window at the
// given instant.
func (r *CategorizationResult) Fresh(now time.Time) bool {
	return now.Sub(r.Timestamp) < planTTL
}

// HealthPlanService chains OCR, fridge analysis and categorization into a
// cached health plan per user.
type HealthPlanService struct {
	cache       HealthPlanCache
	ocr         OCRClient
	vision      VisionClient
	categorizer CategorizerClient
	now         func() time.Time
}

var _ IHealthPlanService = (*HealthPlanService)(nil)

// NewHealthPlanService creates a new HealthPlanService instance.
func NewHealthPlanService(cache HealthPlanCache, ocr OCRClient, vision VisionClient, categorizer CategorizerClient) *HealthPlanService {
	return &HealthPlanService{
		cache:       cache,
		ocr:         ocr,
		vision:      vision,
		categorizer: categorizer,
		now:         time.Now,
	}
}

// ProcessOCR runs text extraction on the latest medical-report scan and caches
// the result.
func (s *HealthPlanService) ProcessOCR(ctx context.Context, uid string) (*OCRResult, error) {
	result, err := s.ocr.ExtractReportText(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("ocr extraction failed: %w", err)
	}
	result.UID = uid
	result.Timestamp = s.now()

	if err := s.cache.SetOCR(ctx, uid, result); err != nil {
		return nil, fmt.Errorf("failed to cache ocr result: %w", err)
	}
	return result, nil
}

// AnalyzeFridge runs ingredient extraction on the latest fridge scan and
// caches the result.
func (s *HealthPlanService) AnalyzeFridge(ctx context.Context, uid string) (*IngredientsResult, error) {
	result, err := s.vision.ExtractFridgeIngredients(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("fridge analysis failed: %w", err)
	}
	result.UID = uid
	result.Timestamp = s.now()

	if err := s.cache.SetIngredients(ctx, uid, result); err != nil {
		return nil, fmt.Errorf("failed to cache ingredients result: %w", err)
	}
	return result, nil
}

// AnalyzeGrocery runs ingredient extraction on the latest grocery scan. The
// result is returned directly; it does not feed the cached health plan.
func (s *HealthPlanService) AnalyzeGrocery(ctx context.Context, uid string) (*IngredientsResult, error) {
	result, err := s.vision.ExtractGroceryIngredients(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("grocery analysis failed: %w", err)
	}
	result.UID = uid
	result.Timestamp = s.now()
	return result, nil
}

// GetHealthPlan returns the current categorization for the user. A cached
// result younger than 24 hours is returned without touching any upstream
// service unless forceRefresh is set. Otherwise OCR and fridge results are
// reused or refetched as needed and a new categorization is produced. Any
// upstream failure aborts the whole operation; partial data is never
// substituted.
func (s *HealthPlanService) GetHealthPlan(ctx context.Context, uid string, forceRefresh bool) (*CategorizationResult, error) {
	if !forceRefresh {
		cached, err := s.cache.GetCategorization(ctx, uid)
		if err != nil {
			return nil, fmt.Errorf("failed to read categorization cache: %w", err)
		}
		if cached != nil && cached.Fresh(s.now()) {
			return cached, nil
		}
	}

	ocrResult, err := s.cache.GetOCR(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("failed to read ocr cache: %w", err)
	}
	if ocrResult == nil || ocrResult.UID != uid || forceRefresh {
		ocrResult, err = s.ProcessOCR(ctx, uid)
		if err != nil {
			return nil, err
		}
	}

	ingredientsResult, err := s.cache.GetIngredients(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("failed to read ingredients cache: %w", err)
	}
	if ingredientsResult == nil || ingredientsResult.UID != uid || forceRefresh {
		ingredientsResult, err = s.AnalyzeFridge(ctx, uid)
		if err != nil {
			return nil, err
		}
	}

	result, err := s.categorizer.CategorizeIngredients(ctx, ocrResult.FullText, ingredientsResult.Ingredients, uid)
	if err != nil {
		return nil, fmt.Errorf("categorization failed: %w", err)
	}
	result.Timestamp = s.now()

	if err := s.cache.SetCategorization(ctx, uid, result); err != nil {
		return nil, fmt.Errorf("failed to cache categorization: %w", err)
	}

	log.Printf("[HealthPlan] categorized %d ingredients for user %s: include=%d exclude=%d",
		len(ingredientsResult.Ingredients), uid, len(result.Include), len(result.Exclude))
	return result, nil
}
