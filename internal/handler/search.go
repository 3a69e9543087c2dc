package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"sathorn/internal/model"
	"sathorn/internal/service"
)

// SearchHandler handles AI search HTTP requests
type SearchHandler struct {
	searchService *service.SearchService
	logger        *logrus.Logger
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(searchService *service.SearchService, logger *logrus.Logger) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
		logger:        logger,
	}
}

// Search handles POST /api/search
func (h *SearchHandler) Search(c *gin.Context) {
	var req model.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid search query", err)
		return
	}

	result, err := h.searchService.Search(c.Request.Context(), req.Query)
	if err != nil {
		if errors.Is(err, model.ErrInvalidInput) {
			respondError(c, h.logger, err, "Invalid search query")
			return
		}
		respondError(c, h.logger, err, "Failed to process search query")
		return
	}

	c.JSON(http.StatusOK, result)
}

// History handles GET /api/search/history?limit=N
func (h *SearchHandler) History(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			badRequest(c, "limit must be a positive integer", nil)
			return
		}
		limit = n
	}

	records, err := h.searchService.History(c.Request.Context(), limit)
	if err != nil {
		respondError(c, h.logger, err, "Failed to fetch search history")
		return
	}

	c.JSON(http.StatusOK, records)
}
