package ui

import (
	"net/http"
	"time"

	"lantern-site/internal/middleware"
)

func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	renderHTML(w, http.StatusOK, HomePage(h.Store.Current(), middleware.CSPNonce(r.Context())))
}

func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	renderHTML(w, http.StatusNotFound, NotFoundPage(h.Store.Current(), middleware.CSPNonce(r.Context())))
}

func (h *Handler) Robots(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(RobotsTxt(h.Store.Current())))
}

func (h *Handler) Sitemap(w http.ResponseWriter, _ *http.Request) {
	out, err := SitemapXML(h.Store.Current(), time.Now().UTC())
	if err != nil {
		http.Error(w, "sitemap unavailable", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	_, _ = w.Write(out)
}
