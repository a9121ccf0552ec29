package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"lantern-site/internal/config"
	"lantern-site/internal/content"
	"lantern-site/internal/server"
)

func newServeCmd() *cobra.Command {
	var (
		contentPath string
		listenAddr  string
		noWatch     bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the site server",
		Long:  "Run the site server locally, reloading the content file on save.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), contentPath, listenAddr, noWatch)
		},
	}

	addContentFlag(cmd.Flags(), &contentPath)
	cmd.Flags().StringVar(&listenAddr, "listen", "", "Listen address (overrides LISTEN_ADDR)")
	cmd.Flags().BoolVar(&noWatch, "no-watch", false, "Disable content file watching")

	return cmd
}

func runServe(ctx context.Context, contentPath, listenAddr string, noWatch bool) error {
	if err := config.LoadDotEnv(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not load .env: %v\n", err)
	}

	cfg, err := config.LoadFromEnv()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	// Flags win over the environment.
	if contentPath != "" {
		cfg.ContentPath = contentPath
	}
	if listenAddr != "" {
		cfg.ListenAddr = listenAddr
	}
	if noWatch {
		cfg.WatchContent = false
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)
	for _, warning := range cfg.Warnings {
		logger.Warn(warning)
	}

	site, err := loadSite(cfg.ContentPath)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	store := content.NewStore(site, cfg.ContentPath, logger)
	store.OverrideBaseURL(cfg.BaseURL)
	return server.New(cfg, store, logger).Run(ctx)
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
