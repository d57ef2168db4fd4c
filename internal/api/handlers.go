package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/demeter-health/backend/internal/service"
)

// respondError maps service errors onto HTTP statuses. Caller mistakes are 4xx;
// anything else, including vendor failures, is the server's problem.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNoIngredients):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrProfileNotFound), errors.Is(err, service.ErrNoScan):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	}
}

// respondStorageError maps persistence-layer errors: a missing row the caller
// asked for is 404, everything else is 500.
func respondStorageError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrProfileNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// requireUID pulls the uid path parameter, writing a 400 if it is missing.
func requireUID(c *gin.Context) (string, bool) {
	uid := c.Param("uid")
	if uid == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "uid is required"})
		return "", false
	}
	return uid, true
}
