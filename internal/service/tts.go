package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

const defaultTTSVoiceID = "21m00Tcm4TlvDq8ikWAM"

// TTSService handles interactions with the ElevenLabs text-to-speech API.
type TTSService struct {
	apiKey  string
	apiURL  string
	voiceID string
	client  *http.Client
}

var _ ITTSClient = (*TTSService)(nil)

// NewTTSService creates a new TTSService instance.
func NewTTSService() (*TTSService, error) {
	apiKey := os.Getenv("ELEVENLABS_API_KEY")
	if apiKey == "" {
		apiKeyFile := os.Getenv("ELEVENLABS_API_KEY_FILE")
		if apiKeyFile == "" {
			return nil, fmt.Errorf("ELEVENLABS_API_KEY or ELEVENLABS_API_KEY_FILE must be set")
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

	apiURL := os.Getenv("ELEVENLABS_API_URL")
	if apiURL == "" {
		apiURL = "https://api.elevenlabs.io/v1"
	}

	voiceID := os.Getenv("ELEVENLABS_VOICE_ID")
	if voiceID == "" {
		voiceID = defaultTTSVoiceID
	}

	return &TTSService{
		apiKey:  apiKey,
		apiURL:  apiURL,
		voiceID: voiceID,
		client:  &http.Client{Timeout: 60 * time.Second},
	}, nil
}

// SynthesizeSpeech converts text to MP3 audio.
func (s *TTSService) SynthesizeSpeech(ctx context.Context, text string) ([]byte, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("text must not be empty")
	}

	payload, err := json.Marshal(map[string]interface{}{
		"text":     text,
		"model_id": "eleven_multilingual_v2",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/text-to-speech/%s", s.apiURL, s.voiceID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("xi-api-key", s.apiKey)
	req.Header.Set("Accept", "audio/mpeg")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call ElevenLabs API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ElevenLabs API returned status %d: %s", resp.StatusCode, string(body))
	}
	return body, nil
}
