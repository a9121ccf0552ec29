package content

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Store holds the active site content and supports atomic reloading from a
// file on disk. When the path is empty the embedded content is served and
// watching is a no-op.
type Store struct {
	mu      sync.RWMutex
	current *Site
	path    string
	baseURL string
	logger  *slog.Logger
	watcher *fsnotify.Watcher
}

// NewStore creates a store serving the given document. path names the file
// Reload and Watch read from; it may be empty.
func NewStore(initial *Site, path string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		current: initial,
		path:    path,
		logger:  logger.With("component", "content"),
	}
}

// Current returns the active content document.
func (s *Store) Current() *Site {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// OverrideBaseURL forces the canonical base URL on the active document and on
// every document loaded after it. The serve path passes the deployment's
// BASE_URL here; the document's own base_url stands only in exports.
func (s *Store) OverrideBaseURL(url string) {
	url = strings.TrimRight(url, "/")
	s.mu.Lock()
	defer s.mu.Unlock()
	s.baseURL = url
	if url != "" && s.current != nil {
		doc := *s.current
		doc.BaseURL = url
		s.current = &doc
	}
}

// Reload re-reads the content file and swaps it in atomically. A document
// that fails to parse or validate is discarded and the active one kept.
func (s *Store) Reload() error {
	if s.path == "" {
		return nil
	}

	site, err := Load(s.path)
	if err != nil {
		s.logger.Error("content reload failed, keeping active document", "path", s.path, "error", err)
		return err
	}

	s.mu.Lock()
	if s.baseURL != "" {
		site.BaseURL = s.baseURL
	}
	s.current = site
	s.mu.Unlock()

	s.logger.Info("content reloaded", "path", s.path, "features", len(site.Features))
	return nil
}

// Watch starts watching the content file and reloads on change until ctx is
// cancelled. Rapid write bursts are debounced. With no path configured it
// returns immediately.
func (s *Store) Watch(ctx context.Context) error {
	if s.path == "" {
		s.logger.Info("content watcher disabled, serving embedded document")
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}

	if err := watcher.Add(s.path); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("watch content file: %w", err)
	}

	s.watcher = watcher
	s.logger.Info("watching content file", "path", s.path)

	go s.watchLoop(ctx)

	return nil
}

func (s *Store) watchLoop(ctx context.Context) {
	var debounce *time.Timer
	const debounceDelay = 500 * time.Millisecond

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("content watcher stopped")
			_ = s.watcher.Close()
			return

		case event, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			// Write and Create cover every editor save strategy.
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				if debounce != nil {
					debounce.Stop()
				}
				debounce = time.AfterFunc(debounceDelay, func() {
					_ = s.Reload()
				})
			}

		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			s.logger.Error("content watcher error", "error", err)
		}
	}
}

// Close stops the watcher if one is running.
func (s *Store) Close() {
	if s.watcher != nil {
		_ = s.watcher.Close()
	}
}
