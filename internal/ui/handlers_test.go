package ui

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lantern-site/internal/content"
)

func newTestRouter(t *testing.T) chi.Router {
	t.Helper()
	site, err := content.Default()
	require.NoError(t, err)

	r := chi.NewRouter()
	MountRoutes(r, NewHandler(content.NewStore(site, "", nil)))
	return r
}

func TestHandlerHome(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rr.Body.String(), "Hacker News without leaving your terminal")
}

func TestHandlerNotFound(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/no-such-page", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rr.Body.String(), "[flagged] [dead]")
}

func TestHandlerRobots(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/robots.txt", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/plain")
	assert.Contains(t, rr.Body.String(), "Sitemap: https://lantern.news/sitemap.xml")
}

func TestHandlerSitemap(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "application/xml")
	assert.Contains(t, rr.Body.String(), "<loc>https://lantern.news/</loc>")
}

func TestHandlerStaticAssets(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/static/css/site.css", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/css")
	assert.Contains(t, rr.Body.String(), ".btn-outline-gray")
}

func TestHandlerHomeServesReloadedContent(t *testing.T) {
	site, err := content.Default()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
name: Beacon
tagline: A different reader
description: A test document.
base_url: https://beacon.example
repo_url: https://github.com/beacon/beacon
hero:
  title: Fresh off the press
  lede: Reloaded without a restart.
install:
  - label: Homebrew
    lines:
      - brew install beacon
features:
  - title: Only one feature
    body: But it reloads.
`), 0o644))

	store := content.NewStore(site, path, nil)
	router := chi.NewRouter()
	MountRoutes(router, NewHandler(store))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	require.Contains(t, rr.Body.String(), "Hacker News without leaving your terminal")

	require.NoError(t, store.Reload())

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Contains(t, rr.Body.String(), "Fresh off the press")
	assert.NotContains(t, rr.Body.String(), "Hacker News without leaving your terminal")
}
