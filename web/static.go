package web

import (
	"embed"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
	"github.com/rohanthewiz/serr"
)

//go:embed all:static
var staticFiles embed.FS

// Book icon served at /favicon.ico so no separate icon file is needed
const faviconSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 64 64"><rect width="64" height="64" rx="8" fill="#8b4513"/><rect x="14" y="12" width="36" height="40" rx="3" fill="#f5deb3"/><rect x="18" y="12" width="4" height="40" fill="#a0522d"/><text x="36" y="40" font-family="Georgia,serif" font-weight="700" font-size="16" fill="#5a2d0c" text-anchor="middle">BV</text></svg>`

// SetupStaticFiles serves the embedded stylesheet and the favicon
func SetupStaticFiles(s *rweb.Server) {
	staticFS, err := fs.Sub(staticFiles, "static")
	if err != nil {
		logger.LogErr(err, "failed to get static subdirectory")
		return
	}

	s.Get("/favicon.ico", func(c rweb.Context) error {
		c.Response().SetHeader("Content-Type", "image/svg+xml")
		c.Response().SetHeader("Cache-Control", "public, max-age=86400")
		return c.Bytes([]byte(faviconSVG))
	})

	s.Get("/static/*", func(c rweb.Context) error {
		name := strings.TrimPrefix(c.Request().Path(), "/static/")

		content, err := readStatic(staticFS, name)
		if err != nil {
			logger.Debug("Static file not served", "file", name, "error", err)
			c.SetStatus(http.StatusNotFound)
			return nil
		}

		if contentType := getContentType(name); contentType != "" {
			c.Response().SetHeader("Content-Type", contentType)
		}
		c.Response().SetHeader("Cache-Control", "public, max-age=3600")

		return c.Bytes(content)
	})
}

// readStatic returns the content of a regular file in fsys
func readStatic(fsys fs.FS, name string) ([]byte, error) {
	name = path.Clean(name)
	if !fs.ValidPath(name) {
		return nil, serr.New("invalid static path " + name)
	}

	stat, err := fs.Stat(fsys, name)
	if err != nil {
		return nil, serr.Wrap(err, "static file not found")
	}
	if stat.IsDir() {
		return nil, serr.New("static path is a directory: " + name)
	}

	return fs.ReadFile(fsys, name)
}

// getContentType returns the content type based on file extension
func getContentType(name string) string {
	switch path.Ext(name) {
	case ".css":
		return "text/css; charset=utf-8"
	case ".svg":
		return "image/svg+xml"
	case ".png":
		return "image/png"
	case ".woff2":
		return "font/woff2"
	default:
		return ""
	}
}
