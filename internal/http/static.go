package http

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"vetpost/backend/internal/logger"
)

// registerStatic serves the frontend build from dir. Unknown paths fall back
// to index.html so client-side routes resolve.
func registerStatic(e *echo.Echo, dir string) bool {
	if dir == "" {
		return false
	}
	indexPath := filepath.Join(dir, "index.html")
	info, err := os.Stat(indexPath)
	if err != nil || info.IsDir() {
		logger.Warn("static index missing", "module", "http", "action", "request", "resource", "http", "result", "failed", "path", indexPath)
		return false
	}

	logger.Info("static assets enabled", "module", "http", "action", "request", "resource", "http", "result", "ok", "dir", dir)

	e.Use(middleware.StaticWithConfig(middleware.StaticConfig{
		Root:  dir,
		Index: "index.html",
		HTML5: true,
		Skipper: func(c echo.Context) bool {
			return isReservedPath(c.Request().URL.Path)
		},
	}))
	return true
}

// isReservedPath reports paths owned by the API and ops routes, which must
// not fall back to index.html.
func isReservedPath(p string) bool {
	for _, prefix := range []string{"/api", "/swagger", "/metrics", "/healthz"} {
		if p == prefix || strings.HasPrefix(p, prefix+"/") {
			return true
		}
	}
	return false
}
