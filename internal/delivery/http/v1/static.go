package v1

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"compliance-ai-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// serveSPA serves files from the prebuilt frontend bundle and falls back to
// index.html so client-side routes survive a reload. Unknown API paths get
// a JSON 404 instead of the SPA shell.
func serveSPA(staticDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqPath := c.Request.URL.Path
		if reqPath == "/api" || strings.HasPrefix(reqPath, "/api/") {
			c.Error(apperror.NotFound("Route not found"))
			return
		}
		if staticDir == "" || (c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead) {
			c.Error(apperror.NotFound("Route not found"))
			return
		}

		// path.Clean on a rooted path strips any ../ segments
		name := filepath.Join(staticDir, filepath.FromSlash(path.Clean("/"+reqPath)))
		if info, err := os.Stat(name); err == nil && !info.IsDir() {
			c.File(name)
			return
		}

		index := filepath.Join(staticDir, "index.html")
		if _, err := os.Stat(index); err != nil {
			c.Error(apperror.NotFound("Route not found"))
			return
		}
		c.File(index)
	}
}
