package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/demeter-health/backend/internal/service"
)

// ScanHandler handles scan-image uploads.
type ScanHandler struct {
	scans *service.ScanService
}

// NewScanHandler creates a new ScanHandler
func NewScanHandler(scans *service.ScanService) *ScanHandler {
	return &ScanHandler{scans: scans}
}

// RegisterRoutes registers the scan routes
func (h *ScanHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/scans/:uid", h.UploadScan)
}

// UploadScan accepts a multipart image upload with a "kind" form field
// (fridge, report or grocery) and stores it for later analysis.
func (h *ScanHandler) UploadScan(c *gin.Context) {
	uid, ok := requireUID(c)
	if !ok {
		return
	}

	kind := c.PostForm("kind")
	if kind == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "kind is required"})
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to open uploaded file"})
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}

	upload, err := h.scans.UploadScan(c.Request.Context(), uid, kind, contentType, file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, upload)
}
