package ui

import (
	"net/http"

	gomponents "maragu.dev/gomponents"

	"lantern-site/internal/content"
)

// Handler serves the rendered site pages.
type Handler struct {
	Store *content.Store
}

func NewHandler(store *content.Store) *Handler {
	return &Handler{Store: store}
}

func renderHTML(w http.ResponseWriter, status int, node gomponents.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_ = node.Render(w)
}
