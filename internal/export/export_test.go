package export

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lantern-site/internal/content"
)

func TestExportWritesSite(t *testing.T) {
	site, err := content.Default()
	require.NoError(t, err)

	dir := t.TempDir()
	opts := Options{OutDir: dir, Now: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)}
	require.NoError(t, Export(context.Background(), site, nil, opts))

	index, err := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(index), "Hacker News without leaving your terminal")
	assert.NotContains(t, string(index), "nonce=")

	notFound, err := os.ReadFile(filepath.Join(dir, "404.html"))
	require.NoError(t, err)
	assert.Contains(t, string(notFound), "[flagged] [dead]")

	robots, err := os.ReadFile(filepath.Join(dir, "robots.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(robots), "Sitemap: https://lantern.news/sitemap.xml")

	sitemap, err := os.ReadFile(filepath.Join(dir, "sitemap.xml"))
	require.NoError(t, err)
	assert.Contains(t, string(sitemap), "<lastmod>2025-06-01</lastmod>")

	css, err := os.ReadFile(filepath.Join(dir, "static", "css", "site.css"))
	require.NoError(t, err)
	assert.Contains(t, string(css), ".command-copy")
}

func TestExportIsDeterministic(t *testing.T) {
	site, err := content.Default()
	require.NoError(t, err)

	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	first := t.TempDir()
	require.NoError(t, Export(context.Background(), site, nil, Options{OutDir: first, Now: now}))
	second := t.TempDir()
	require.NoError(t, Export(context.Background(), site, nil, Options{OutDir: second, Now: now}))

	for _, name := range []string{"index.html", "404.html", "robots.txt", "sitemap.xml"} {
		a, err := os.ReadFile(filepath.Join(first, name))
		require.NoError(t, err)
		b, err := os.ReadFile(filepath.Join(second, name))
		require.NoError(t, err)
		if diff := cmp.Diff(string(a), string(b)); diff != "" {
			t.Errorf("%s differs between runs (-first +second):\n%s", name, diff)
		}
	}
}

func TestExportOverwritesPreviousRun(t *testing.T) {
	site, err := content.Default()
	require.NoError(t, err)

	dir := t.TempDir()
	stale := filepath.Join(dir, "index.html")
	require.NoError(t, os.WriteFile(stale, []byte("stale"), 0o644))

	require.NoError(t, Export(context.Background(), site, nil, Options{OutDir: dir}))

	index, err := os.ReadFile(stale)
	require.NoError(t, err)
	assert.NotEqual(t, "stale", string(index))
}

func TestExportHonorsCancellation(t *testing.T) {
	site, err := content.Default()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = Export(ctx, site, nil, Options{OutDir: t.TempDir()})
	require.ErrorIs(t, err, context.Canceled)
}
