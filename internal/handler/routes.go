package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"sathorn/internal/model"
)

// Handlers groups every API handler mounted by RegisterRoutes
type Handlers struct {
	Properties *PropertyHandler
	Search     *SearchHandler
	Analytics  *AnalyticsHandler
}

// RegisterRoutes mounts the /api surface on router
func RegisterRoutes(router *gin.Engine, h Handlers) {
	api := router.Group("/api")
	{
		api.GET("/properties", h.Properties.List)
		api.GET("/properties.geojson", h.Properties.GeoJSON)
		api.GET("/properties/nearby", h.Properties.Nearby)
		api.GET("/properties/:id", h.Properties.Get)
		api.POST("/properties/filter", h.Properties.Filter)

		api.POST("/search", h.Search.Search)
		api.GET("/search/history", h.Search.History)

		api.GET("/analytics", h.Analytics.Get)
	}
}

// IsAPIPath reports whether path belongs to the JSON API
func IsAPIPath(path string) bool {
	return path == "/api" || strings.HasPrefix(path, "/api/")
}

// APINotFound is the NoRoute response for unknown API paths
func APINotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, model.ErrorResponse{Message: "API endpoint not found"})
}
