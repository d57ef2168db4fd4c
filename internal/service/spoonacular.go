package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// RecipeSummary is one hit from the vendor's search-by-ingredients endpoint.
type RecipeSummary struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	ImageURL string `json:"image"`
}

// RecipeIngredient is one entry of a recipe's full ingredient list.
type RecipeIngredient struct {
	Name     string `json:"name"`
	Original string `json:"original"`
}

// RecipeNutrient is one nutrient row of a recipe's nutrition block.
type RecipeNutrient struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

// RecipeCandidate is a fully hydrated recipe from the bulk-information
// endpoint, carrying the ingredient list the exclusion filter runs against.
type RecipeCandidate struct {
	ID                  int64              `json:"id"`
	Title               string             `json:"title"`
	ImageURL            string             `json:"image"`
	ReadyInMinutes      int                `json:"readyInMinutes"`
	Servings            int                `json:"servings"`
	ExtendedIngredients []RecipeIngredient `json:"extendedIngredients"`
	Nutrition           struct {
		Nutrients []RecipeNutrient `json:"nutrients"`
	} `json:"nutrition"`
}

// SpoonacularService handles interactions with the Spoonacular recipe API.
type SpoonacularService struct {
	apiKey string
	apiURL string
	client *http.Client
}

var _ RecipeAPI = (*SpoonacularService)(nil)

// NewSpoonacularService creates a new SpoonacularService instance.
func NewSpoonacularService() (*SpoonacularService, error) {
	apiKey := os.Getenv("SPOONACULAR_API_KEY")
	if apiKey == "" {
		apiKeyFile := os.Getenv("SPOONACULAR_API_KEY_FILE")
		if apiKeyFile == "" {
			return nil, fmt.Errorf("SPOONACULAR_API_KEY or SPOONACULAR_API_KEY_FILE must be set")
		}

		apiKeyBytes, err := os.ReadFile(apiKeyFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read API key file: %w", err)
		}

		apiKey = strings.TrimSpace(string(apiKeyBytes))
		if apiKey == "" {
			return nil, fmt.Errorf("API key file is empty")
		}
	}

	apiURL := os.Getenv("SPOONACULAR_API_URL")
	if apiURL == "" {
		apiURL = "https://api.spoonacular.com"
	}

	return &SpoonacularService{
		apiKey: apiKey,
		apiURL: apiURL,
		client: &http.Client{Timeout: 30 * time.Second},
	}, nil
}

func (s *SpoonacularService) doGet(ctx context.Context, path string, query url.Values, dest interface{}) error {
	query.Set("apiKey", s.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.apiURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call Spoonacular API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("Spoonacular API returned status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, dest); err != nil {
		return fmt.Errorf("failed to parse Spoonacular response: %w", err)
	}
	return nil
}

// SearchByIngredients returns up to number recipes ranked by how many of the
// given ingredients they use. Vendor ranking is preserved as-is.
func (s *SpoonacularService) SearchByIngredients(ctx context.Context, include []string, number int) ([]RecipeSummary, error) {
	query := url.Values{}
	query.Set("ingredients", strings.Join(include, ","))
	query.Set("number", strconv.Itoa(number))
	query.Set("ranking", "1")

	var results []RecipeSummary
	if err := s.doGet(ctx, "/recipes/findByIngredients", query, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// GetRecipeInformationBulk fetches full details, including nutrition, for the
// given recipe IDs in a single request.
func (s *SpoonacularService) GetRecipeInformationBulk(ctx context.Context, ids []int64) ([]RecipeCandidate, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	idStrings := make([]string, len(ids))
	for i, id := range ids {
		idStrings[i] = strconv.FormatInt(id, 10)
	}

	query := url.Values{}
	query.Set("ids", strings.Join(idStrings, ","))
	query.Set("includeNutrition", "true")

	var results []RecipeCandidate
	if err := s.doGet(ctx, "/recipes/informationBulk", query, &results); err != nil {
		return nil, err
	}
	return results, nil
}
