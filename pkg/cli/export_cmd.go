package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"lantern-site/internal/export"
)

func newExportCmd() *cobra.Command {
	var (
		contentPath string
		outDir      string
		baseURL     string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render the site to a directory of static files",
		Long:  "Renders every page, the crawler files, and the static assets into a directory ready for any static host.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			site, err := loadSite(contentPath)
			if err != nil {
				return err
			}

			if baseURL != "" {
				overridden := *site
				overridden.BaseURL = strings.TrimRight(baseURL, "/")
				site = &overridden
			}

			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			opts := export.Options{OutDir: outDir}
			if err := export.Export(cmd.Context(), site, logger, opts); err != nil {
				return fmt.Errorf("export: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Exported site to %s\n", outDir)
			return nil
		},
	}

	addContentFlag(cmd.Flags(), &contentPath)
	cmd.Flags().StringVarP(&outDir, "out", "o", "dist", "Output directory")
	cmd.Flags().StringVar(&baseURL, "base-url", "", "Override the canonical base URL")

	return cmd
}
