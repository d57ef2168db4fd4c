package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/demeter-health/backend/internal/service"
)

// TTSHandler converts dashboard text to speech.
type TTSHandler struct {
	tts service.ITTSClient
}

// NewTTSHandler creates a new TTSHandler
func NewTTSHandler(tts service.ITTSClient) *TTSHandler {
	return &TTSHandler{tts: tts}
}

// RegisterRoutes registers the TTS routes
func (h *TTSHandler) RegisterRoutes(router *gin.RouterGroup, limit gin.HandlerFunc) {
	router.POST("/tts", limit, h.Synthesize)
}

// TTSRequest is the payload for speech synthesis.
type TTSRequest struct {
	Text string `json:"text" binding:"required"`
}

// Synthesize returns MP3 audio for the given text.
func (h *TTSHandler) Synthesize(c *gin.Context) {
	var req TTSRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}

	audio, err := h.tts.SynthesizeSpeech(c.Request.Context(), req.Text)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.Data(http.StatusOK, "audio/mpeg", audio)
}
