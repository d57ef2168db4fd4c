package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// OCRService calls the OCR sidecar that extracts text from the user's most
// recent medical-report scan.
type OCRService struct {
	baseURL string
	client  *http.Client
}

var _ OCRClient = (*OCRService)(nil)

// NewOCRService creates a new OCRService instance.
func NewOCRService() (*OCRService, error) {
	baseURL := os.Getenv("OCR_SERVICE_URL")
	if baseURL == "" {
		return nil, fmt.Errorf("OCR_SERVICE_URL must be set")
	}

	return &OCRService{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 60 * time.Second},
	}, nil
}

// ExtractReportText asks the sidecar for the text of the user's latest report
// scan.
func (s *OCRService) ExtractReportText(ctx context.Context, uid string) (*OCRResult, error) {
	payload, err := json.Marshal(map[string]string{"uid": uid})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/ocr", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call OCR service: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("OCR service returned status %d: %s", resp.StatusCode, string(body))
	}

	var result OCRResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse OCR response: %w", err)
	}
	return &result, nil
}
