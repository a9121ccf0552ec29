// Package main is the entry point for the site server binary.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"golang.org/x/term"

	"lantern-site/internal/config"
	"lantern-site/internal/content"
	"lantern-site/internal/server"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if err := config.LoadDotEnv(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not load .env: %v\n", err)
	}

	cfg, err := config.LoadFromEnv()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)
	for _, warning := range cfg.Warnings {
		logger.Warn(warning)
	}

	site, err := loadSite(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	scheme := "http"
	if cfg.TLSCertFile != "" {
		scheme = "https"
	}
	logger.Info("starting site server", "url", scheme+"://"+browseHostForListenAddr(cfg.ListenAddr))

	store := content.NewStore(site, cfg.ContentPath, logger)
	store.OverrideBaseURL(cfg.BaseURL)
	return server.New(cfg, store, logger).Run(ctx)
}

// browseHostForListenAddr turns a listen address into a host a browser can
// reach. Wildcard and empty hosts become localhost; addresses that do not
// parse pass through unchanged.
func browseHostForListenAddr(addr string) string {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return "localhost:8080"
	}
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	switch host {
	case "", "0.0.0.0", "::":
		host = "localhost"
	}
	return net.JoinHostPort(host, port)
}

// loadSite resolves the content document: the configured file, or the
// embedded one when no path is set.
func loadSite(cfg *config.Config) (*content.Site, error) {
	if cfg.ContentPath == "" {
		return content.Default()
	}
	return content.Load(cfg.ContentPath)
}

// newLogger builds the process logger: human-readable when stderr is a
// terminal, JSON otherwise.
func newLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if term.IsTerminal(int(os.Stderr.Fd())) {
		return slog.New(slog.NewTextHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, opts))
}
