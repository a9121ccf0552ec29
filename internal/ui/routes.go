package ui

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"

	"lantern-site/internal/ui/assets"
)

// MountRoutes attaches the page, asset, and crawler routes.
func MountRoutes(r chi.Router, h *Handler) {
	staticFS, err := fs.Sub(assets.StaticFS(), "static")
	if err == nil {
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))
	}

	r.Get("/", h.Home)
	r.Get("/robots.txt", h.Robots)
	r.Get("/sitemap.xml", h.Sitemap)
	r.NotFound(h.NotFound)
}
