package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hilinkr/backend/internal/domain"
	"github.com/hilinkr/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	scrapeService *usecase.ScrapeService
}

// NewHandler creates a new HTTP handler
func NewHandler(scrapeService *usecase.ScrapeService) *Handler {
	return &Handler{
		scrapeService: scrapeService,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "hilinkr-backend",
		"version": "1.0.0",
	})
}

// ScrapeProduct extracts product metadata from a pasted product URL.
// The response is always an envelope: {"success":true,"data":{...}} with
// nullable fields, or {"success":false,"error":...} on bad input. A field
// the pipeline could not recover is null, never an error.
func (h *Handler) ScrapeProduct(c *gin.Context) {
	var req domain.ScrapeRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.URL) == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   domain.ErrMissingURL.Error(),
		})
		return
	}

	data := h.scrapeService.Extract(c.Request.Context(), req.URL)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
	})
}
