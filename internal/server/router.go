package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"lantern-site/internal/config"
	"lantern-site/internal/content"
	"lantern-site/internal/middleware"
	"lantern-site/internal/ui"
	"lantern-site/internal/version"
)

// scriptSrcExtra lists the script-src origins the pages need beyond 'self'
// and the per-request nonce: the datastar bundle comes from jsdelivr, and
// datastar compiles its expressions with Function(), which CSP counts as
// eval.
var scriptSrcExtra = []string{"https://cdn.jsdelivr.net", "'unsafe-eval'"}

// NewRouter assembles the full HTTP surface: middleware stack, rendered
// pages, static assets, and the operational endpoints.
func NewRouter(cfg *config.Config, store *content.Store, logger *slog.Logger, started time.Time) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(logger))
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		MaxAge:         300,
	}))
	r.Use(middleware.Secure(middleware.SecureConfig{
		HSTS:      cfg.HSTS,
		ScriptSrc: scriptSrcExtra,
	}))
	r.Use(middleware.RateLimiter(middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		Burst:             cfg.RateLimitBurst,
	}))
	if cfg.MetricsEnabled {
		r.Use(middleware.Metrics)
		r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	}

	r.Get("/healthz", healthHandler(started))

	ui.MountRoutes(r, ui.NewHandler(store))

	return r
}

func healthHandler(started time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"status":         "ok",
			"version":        version.Version,
			"commit":         version.Commit,
			"uptime_seconds": int(time.Since(started).Seconds()),
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
