// Package export renders the site into a directory of plain files for CDN
// or object-storage deploys. Every file is written via an atomic rename;
// an interrupted export leaves no half-written pages.
package export

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/renameio/v2"
	gomponents "maragu.dev/gomponents"

	"lantern-site/internal/content"
	"lantern-site/internal/ui"
	"lantern-site/internal/ui/assets"
)

// Options control an export run.
type Options struct {
	// OutDir is the directory the site is written into. Created when absent.
	OutDir string
	// Now stamps the sitemap lastmod; the zero value means time.Now.
	Now time.Time
}

// Export writes the rendered pages, crawler files, and static assets under
// opts.OutDir. Pages are rendered without a script nonce: a static deploy
// has no per-request policy to bind them to.
func Export(ctx context.Context, site *content.Site, logger *slog.Logger, opts Options) error {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "export")

	now := opts.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	pages := []struct {
		name string
		node gomponents.Node
	}{
		{"index.html", ui.HomePage(site, "")},
		{"404.html", ui.NotFoundPage(site, "")},
	}

	written := 0
	for _, page := range pages {
		if err := ctx.Err(); err != nil {
			return err
		}
		path := filepath.Join(opts.OutDir, page.name)
		if err := renderToFile(path, page.node); err != nil {
			return fmt.Errorf("render %s: %w", page.name, err)
		}
		logger.Debug("page written", "file", page.name)
		written++
	}

	sitemap, err := ui.SitemapXML(site, now)
	if err != nil {
		return fmt.Errorf("render sitemap: %w", err)
	}
	files := []struct {
		name string
		data []byte
	}{
		{"robots.txt", []byte(ui.RobotsTxt(site))},
		{"sitemap.xml", sitemap},
	}
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := renameio.WriteFile(filepath.Join(opts.OutDir, file.name), file.data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", file.name, err)
		}
		logger.Debug("file written", "file", file.name)
		written++
	}

	assetCount, err := copyStatic(ctx, opts.OutDir)
	if err != nil {
		return fmt.Errorf("copy static assets: %w", err)
	}
	written += assetCount

	logger.Info("site exported", "dir", opts.OutDir, "files", written)
	return nil
}

// renderToFile streams a node into a pending file and commits it atomically.
func renderToFile(path string, node gomponents.Node) error {
	pending, err := renameio.NewPendingFile(path)
	if err != nil {
		return fmt.Errorf("create pending file: %w", err)
	}
	defer func() {
		_ = pending.Cleanup()
	}()

	if err := node.Render(pending); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace: %w", err)
	}

	return nil
}

// copyStatic mirrors the embedded static tree under outDir/static.
func copyStatic(ctx context.Context, outDir string) (int, error) {
	count := 0
	err := fs.WalkDir(assets.StaticFS(), "static", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if cerr := ctx.Err(); cerr != nil {
			return cerr
		}

		target := filepath.Join(outDir, filepath.FromSlash(path))
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}

		data, err := fs.ReadFile(assets.StaticFS(), path)
		if err != nil {
			return fmt.Errorf("read embedded %s: %w", path, err)
		}
		if err := renameio.WriteFile(target, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		count++
		return nil
	})
	return count, err
}
