//go:build embed
// +build embed

package main

import (
	"embed"
	"io"
	"io/fs"
	"net/http"
	"path"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"sathorn/internal/handler"
)

//go:embed web/dist
var webDist embed.FS

var contentTypes = map[string]string{
	".js":      "application/javascript; charset=utf-8",
	".css":     "text/css; charset=utf-8",
	".json":    "application/json; charset=utf-8",
	".geojson": "application/geo+json",
	".png":     "image/png",
	".jpg":     "image/jpeg",
	".jpeg":    "image/jpeg",
	".svg":     "image/svg+xml",
	".ico":     "image/x-icon",
}

// setupStaticFiles serves the embedded map frontend with SPA fallback
func setupStaticFiles(router *gin.Engine, logger *logrus.Logger) {
	logger.Info("Using embedded frontend assets")

	distFS, err := fs.Sub(webDist, "web/dist")
	if err != nil {
		logger.WithError(err).Fatal("Failed to get dist subdirectory")
	}

	router.NoRoute(func(c *gin.Context) {
		urlPath := c.Request.URL.Path
		if handler.IsAPIPath(urlPath) {
			handler.APINotFound(c)
			return
		}

		cleanPath := path.Clean(urlPath)
		if cleanPath == "/" {
			cleanPath = "index.html"
		} else {
			cleanPath = cleanPath[1:]
		}

		if content, ok := readFile(distFS, cleanPath); ok {
			contentType, known := contentTypes[path.Ext(cleanPath)]
			if !known {
				contentType = "text/html; charset=utf-8"
			}
			c.Data(http.StatusOK, contentType, content)
			return
		}

		// File not found, serve index.html for SPA routing
		content, ok := readFile(distFS, "index.html")
		if !ok {
			c.String(http.StatusNotFound, "404 page not found")
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", content)
	})
}

func readFile(fsys fs.FS, name string) ([]byte, bool) {
	file, err := fsys.Open(name)
	if err != nil {
		return nil, false
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil || stat.IsDir() {
		return nil, false
	}

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, false
	}
	return content, true
}
