package ui

import (
	"encoding/json"
	"io/fs"
	"path"
	"strings"
	"sync"

	"lantern-site/internal/ui/assets"
)

const defaultStylesheetPath = "/static/css/site.css"

var (
	stylesheetPathOnce sync.Once
	stylesheetPath     = defaultStylesheetPath
)

// stylesheetHref resolves the stylesheet URL, preferring the fingerprinted
// name from the build manifest when one is embedded.
func stylesheetHref() string {
	stylesheetPathOnce.Do(func() {
		manifestBytes, err := fs.ReadFile(assets.StaticFS(), "static/css/manifest.json")
		if err != nil {
			return
		}

		manifest := map[string]string{}
		if err := json.Unmarshal(manifestBytes, &manifest); err != nil {
			return
		}

		name := strings.TrimSpace(manifest["site.css"])
		if name == "" {
			return
		}

		if path.Base(name) != name || path.Ext(name) != ".css" {
			return
		}

		stylesheetPath = "/static/css/" + name
	})

	return stylesheetPath
}
