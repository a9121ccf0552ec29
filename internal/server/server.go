// Package server wires the router into an http.Server and runs it with
// graceful shutdown and the optional content watcher.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"lantern-site/internal/config"
	"lantern-site/internal/content"
)

const shutdownTimeout = 10 * time.Second

// Server is the site daemon: an http.Server over the assembled router plus
// the content store it serves from.
type Server struct {
	cfg    *config.Config
	store  *content.Store
	logger *slog.Logger
	http   *http.Server
}

// New builds a server from the loaded config and content store.
func New(cfg *config.Config, store *content.Store, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	return &Server{
		cfg:    cfg,
		store:  store,
		logger: logger.With("component", "server"),
		http: &http.Server{
			Addr:              cfg.ListenAddr,
			Handler:           NewRouter(cfg, store, logger, time.Now()),
			ReadTimeout:       15 * time.Second,
			ReadHeaderTimeout: 5 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       120 * time.Second,
		},
	}
}

// Run serves until ctx is cancelled, then drains open connections. When
// content watching is configured the watcher runs for the same lifetime.
func (s *Server) Run(ctx context.Context) error {
	if s.cfg.WatchContent && s.cfg.ContentPath != "" {
		if err := s.store.Watch(ctx); err != nil {
			return fmt.Errorf("content watch: %w", err)
		}
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("listening", "addr", s.cfg.ListenAddr, "tls", s.cfg.TLSCertFile != "")
		var err error
		if s.cfg.TLSCertFile != "" {
			err = s.http.ListenAndServeTLS(s.cfg.TLSCertFile, s.cfg.TLSKeyFile)
		} else {
			err = s.http.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		s.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.http.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
