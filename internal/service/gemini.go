package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/demeter-health/backend/internal/models"
)

const defaultGeminiModel = "gemini-2.5-pro"

// GeminiService handles interactions with the Gemini API. It serves both
// fridge-image ingredient extraction and report-based categorization.
type GeminiService struct {
	apiKey string
	apiURL string
	model  string
	scans  ScanStore
	client *http.Client
}

var (
	_ VisionClient      = (*GeminiService)(nil)
	_ CategorizerClient = (*GeminiService)(nil)
)

// NewGeminiService creates a new GeminiService instance.
func NewGeminiService(scans ScanStore) (*GeminiService, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		apiKeyFile := os.Getenv("GEMINI_API_KEY_FILE")
		if apiKeyFile == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY or GEMINI_API_KEY_FILE must be set")
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

	apiURL := os.Getenv("GEMINI_API_URL")
	if apiURL == "" {
		apiURL = "https://generativelanguage.googleapis.com/v1beta"
	}

	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = defaultGeminiModel
	}

	return &GeminiService{
		apiKey: apiKey,
		apiURL: apiURL,
		model:  model,
		scans:  scans,
		client: &http.Client{Timeout: 60 * time.Second},
	}, nil
}

type geminiPart struct {
	Text       string `json:"text,omitempty"`
	InlineData *struct {
		MimeType string `json:"mime_type"`
		Data     string `json:"data"`
	} `json:"inline_data,omitempty"`
}

type geminiRequest struct {
	Contents []struct {
		Parts []geminiPart `json:"parts"`
	} `json:"contents"`
	GenerationConfig struct {
		ResponseMimeType string `json:"response_mime_type"`
	} `json:"generationConfig"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (s *GeminiService) generate(ctx context.Context, parts []geminiPart) (string, error) {
	var reqBody geminiRequest
	reqBody.Contents = append(reqBody.Contents, struct {
		Parts []geminiPart `json:"parts"`
	}{Parts: parts})
	reqBody.GenerationConfig.ResponseMimeType = "application/json"

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal Gemini request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", s.apiURL, s.model, s.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call Gemini API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("Gemini API returned status %d: %s", resp.StatusCode, string(body))
	}

	var parsed geminiResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("failed to parse Gemini response: %w", err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("Gemini response contained no candidates")
	}
	return parsed.Candidates[0].Content.Parts[0].Text, nil
}

// ExtractFridgeIngredients sends the user's latest fridge scan to Gemini and
// parses the ingredient names it reports.
func (s *GeminiService) ExtractFridgeIngredients(ctx context.Context, uid string) (*IngredientsResult, error) {
	return s.extractScanIngredients(ctx, uid, models.ScanKindFridge, "refrigerator")
}

// ExtractGroceryIngredients does the same over the latest grocery-haul scan.
func (s *GeminiService) ExtractGroceryIngredients(ctx context.Context, uid string) (*IngredientsResult, error) {
	return s.extractScanIngredients(ctx, uid, models.ScanKindGrocery, "grocery haul")
}

func (s *GeminiService) extractScanIngredients(ctx context.Context, uid, kind, subject string) (*IngredientsResult, error) {
	scan, imageData, err := s.scans.LatestScan(ctx, uid, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s scan: %w", kind, err)
	}

	prompt := fmt.Sprintf(`Identify every distinct food item visible in this %s photo. `+
		`Respond with JSON of the form {"Ingredients": ["item", ...]} using common ingredient names. `+
		`Do not include non-food items.`, subject)

	inline := &struct {
		MimeType string `json:"mime_type"`
		Data     string `json:"data"`
	}{
		MimeType: scan.ContentType,
		Data:     base64.StdEncoding.EncodeToString(imageData),
	}

	text, err := s.generate(ctx, []geminiPart{
		{Text: prompt},
		{InlineData: inline},
	})
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Ingredients []string `json:"Ingredients"`
	}
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse ingredient list: %w", err)
	}

	log.Printf("[Gemini] extracted %d ingredients from %s scan for user %s", len(parsed.Ingredients), kind, uid)
	return &IngredientsResult{Ingredients: parsed.Ingredients}, nil
}

// CategorizeIngredients asks Gemini to split the ingredient list into items
// the user should eat and items they should avoid, given their medical report.
func (s *GeminiService) CategorizeIngredients(ctx context.Context, medicalReportText string, ingredients []string, uid string) (*CategorizationResult, error) {
	prompt := fmt.Sprintf(`You are a clinical nutrition assistant. Given this medical report:

%s

And these ingredients available to the patient:

%s

Classify every ingredient into exactly one of two lists based on the report. `+
		`Respond with JSON of the form {"include": [...], "exclude": [...]}.`,
		medicalReportText, strings.Join(ingredients, ", "))

	text, err := s.generate(ctx, []geminiPart{{Text: prompt}})
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Include []string `json:"include"`
		Exclude []string `json:"exclude"`
	}
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse categorization: %w", err)
	}

	return &CategorizationResult{Include: parsed.Include, Exclude: parsed.Exclude}, nil
}
