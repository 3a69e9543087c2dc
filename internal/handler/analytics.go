package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sathorn/internal/service"
)

// AnalyticsHandler serves aggregate market figures
type AnalyticsHandler struct {
	analytics *service.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analytics *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

// Get handles GET /api/analytics
func (h *AnalyticsHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, h.analytics.Compute(c.Request.Context()))
}
