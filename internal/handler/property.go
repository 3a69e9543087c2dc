package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"sathorn/internal/model"
	"sathorn/internal/service"
)

// PropertyHandler handles catalogue HTTP requests
type PropertyHandler struct {
	properties    *service.PropertyService
	defaultRadius float64
	logger        *logrus.Logger
}

// NewPropertyHandler creates a new property handler
func NewPropertyHandler(properties *service.PropertyService, defaultRadius float64, logger *logrus.Logger) *PropertyHandler {
	return &PropertyHandler{
		properties:    properties,
		defaultRadius: defaultRadius,
		logger:        logger,
	}
}

// List handles GET /api/properties
func (h *PropertyHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.properties.GetAll(c.Request.Context()))
}

// Get handles GET /api/properties/:id
func (h *PropertyHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequest(c, "Invalid property id", nil)
		return
	}

	property, err := h.properties.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err, "Property not found")
		return
	}

	c.JSON(http.StatusOK, property)
}

// Filter handles POST /api/properties/filter. An empty body is an empty filter.
func (h *PropertyHandler) Filter(c *gin.Context) {
	var filter model.PropertyFilter
	if err := c.ShouldBindJSON(&filter); err != nil && !errors.Is(err, io.EOF) {
		badRequest(c, "Invalid filter parameters", err)
		return
	}

	c.JSON(http.StatusOK, h.properties.Filter(c.Request.Context(), filter))
}

// Nearby handles GET /api/properties/nearby?lat=&lng=&radius=
func (h *PropertyHandler) Nearby(c *gin.Context) {
	var req model.NearbyRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		badRequest(c, "Invalid location parameters", err)
		return
	}

	radius := req.Radius
	if radius == 0 {
		radius = h.defaultRadius
	}

	c.JSON(http.StatusOK, h.properties.Nearby(c.Request.Context(), *req.Lat, *req.Lng, radius))
}

// GeoJSON handles GET /api/properties.geojson
func (h *PropertyHandler) GeoJSON(c *gin.Context) {
	c.Header("Content-Type", "application/geo+json")
	c.JSON(http.StatusOK, h.properties.GeoJSON(c.Request.Context()))
}
