package http

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/furnishly/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	parser    *usecase.ParserService
	suggester *usecase.SuggestionService
}

// NewHandler creates a new HTTP handler
func NewHandler(parser *usecase.ParserService, suggester *usecase.SuggestionService) *Handler {
	return &Handler{
		parser:    parser,
		suggester: suggester,
	}
}

// queryRequest is the body of both query endpoints.
type queryRequest struct {
	Query string `json:"query"`
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"service":   "query-parser-api",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// AnalyzeQuery parses a free-text furniture query into structured attributes.
func (h *Handler) AnalyzeQuery(c *gin.Context) {
	var req queryRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Query) == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "query is required",
		})
		return
	}

	start := time.Now()
	result := h.parser.Parse(req.Query)
	elapsed := time.Since(start)

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"result":          result,
		"processing_time": formatDuration(elapsed),
	})
}

// SuggestQuery returns top product name, brand name and style matches for a
// partial query.
func (h *Handler) SuggestQuery(c *gin.Context) {
	var req queryRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Query) == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "query is required",
		})
		return
	}

	result := h.suggester.Suggest(c.Request.Context(), req.Query)
	c.JSON(http.StatusOK, result)
}

// formatDuration renders a human-readable processing time.
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.2f ms", float64(d.Microseconds())/1000.0)
	}
	return fmt.Sprintf("%.2f sec", d.Seconds())
}
