package service

import (
	"context"

	"github.com/demeter-health/backend/internal/models"
)

// OCRClient extracts text from the most recent medical-report scan for a user.
type OCRClient interface {
	ExtractReportText(ctx context.Context, uid string) (*OCRResult, error)
}

// VisionClient extracts visible ingredient names from a user's most recent
// scan of the given kind.
type VisionClient interface {
	ExtractFridgeIngredients(ctx context.Context, uid string) (*IngredientsResult, error)
	ExtractGroceryIngredients(ctx context.Context, uid string) (*IngredientsResult, error)
}

// CategorizerClient splits an ingredient list into include/exclude sets based
// on a medical report.
type CategorizerClient interface {
	CategorizeIngredients(ctx context.Context, medicalReportText string, ingredients []string, uid string) (*CategorizationResult, error)
}

// HealthPlanCache stores the per-user intermediate and final health-plan
// results. A nil result with a nil error means a cache miss.
type HealthPlanCache interface {
	GetOCR(ctx context.Context, uid string) (*OCRResult, error)
	SetOCR(ctx context.Context, uid string, result *OCRResult) error
	GetIngredients(ctx context.Context, uid string) (*IngredientsResult, error)
	SetIngredients(ctx context.Context, uid string, result *IngredientsResult) error
	GetCategorization(ctx context.Context, uid string) (*CategorizationResult, error)
	SetCategorization(ctx context.Context, uid string, result *CategorizationResult) error
}

// RecipeAPI is the external recipe vendor: ranked search by ingredients plus a
// batched detail fetch.
type RecipeAPI interface {
	SearchByIngredients(ctx context.Context, include []string, number int) ([]RecipeSummary, error)
	GetRecipeInformationBulk(ctx context.Context, ids []int64) ([]RecipeCandidate, error)
}

// ScanStore provides uploaded scan images to the vision and OCR services.
type ScanStore interface {
	LatestScan(ctx context.Context, uid, kind string) (*models.ScanUpload, []byte, error)
}

// IHealthPlanService produces include/exclude ingredient sets for a user.
type IHealthPlanService interface {
	GetHealthPlan(ctx context.Context, uid string, forceRefresh bool) (*CategorizationResult, error)
	ProcessOCR(ctx context.Context, uid string) (*OCRResult, error)
	AnalyzeFridge(ctx context.Context, uid string) (*IngredientsResult, error)
	AnalyzeGrocery(ctx context.Context, uid string) (*IngredientsResult, error)
}

// IRecipeMatcher finds recipes compatible with a user's health plan.
type IRecipeMatcher interface {
	FindRecipes(ctx context.Context, include, exclude []string) ([]RecipeCandidate, error)
}

// ITotalsService persists saved-recipe snapshots and maintains daily totals.
type ITotalsService interface {
	SaveRecipe(ctx context.Context, uid, dateKey string, candidate *RecipeCandidate) (*models.SavedRecipe, *DailyTotals, error)
	ListSaved(ctx context.Context, uid, dateKey string) ([]models.SavedRecipe, error)
	ComputeDailyTotals(ctx context.Context, uid, dateKey string) (*DailyTotals, error)
}

// ITTSClient converts text to spoken audio.
type ITTSClient interface {
	SynthesizeSpeech(ctx context.Context, text string) ([]byte, error)
}
