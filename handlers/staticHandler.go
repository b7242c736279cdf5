package handlers

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var staticMimeTypes = map[string]string{
	".css": "text/css",
	".js":  "text/javascript",
	".jpg": "image/jpeg",
	".gif": "image/gif",
}

const staticDir = "static"

// StaticHandler streams a file from the static assets directory.
// Paths containing ".." are refused outright to prevent directory
// traversal; everything else is served with a MIME type picked by
// extension.
func StaticHandler(c *gin.Context, logger *zap.Logger) {
	path := c.Param("filepath")
	if strings.Contains(path, "..") {
		logger.Warn("Rejected static path", zap.String("path", path))
		c.String(http.StatusForbidden, "403 - Invalid path")
		return
	}

	contentType, ok := staticMimeTypes[filepath.Ext(path)]
	if !ok {
		contentType = "text/plain"
	}
	c.Header("Content-Type", contentType)
	c.File(filepath.Join(staticDir, path))
}
