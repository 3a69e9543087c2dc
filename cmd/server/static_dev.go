//go:build !embed
// +build !embed

package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"sathorn/internal/handler"
)

// setupStaticFiles configures static file serving for development (no embedding)
func setupStaticFiles(router *gin.Engine, logger *logrus.Logger) {
	logger.Info("Using local filesystem for frontend assets (development mode)")

	router.Static("/assets", "./web/dist/assets")
	router.StaticFile("/favicon.ico", "./web/dist/favicon.ico")

	router.NoRoute(func(c *gin.Context) {
		if handler.IsAPIPath(c.Request.URL.Path) {
			handler.APINotFound(c)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message": "Frontend is running separately",
			"dev_url": "http://localhost:5173",
			"hint":    "Run 'cd web && npm run dev' to start the map frontend",
		})
	})
}
