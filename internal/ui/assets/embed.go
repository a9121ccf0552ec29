// Package assets embeds the static files the site serves and exports. The
// binary carries them; no disk checkout is needed at runtime.
package assets

import "embed"

//go:embed static
var staticFS embed.FS

func StaticFS() embed.FS {
	return staticFS
}
