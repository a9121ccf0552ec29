package ui

import (
	gomponents "maragu.dev/gomponents"
	html "maragu.dev/gomponents/html"
)

// Static terminal screens rendered into card media regions. They are
// decorative: real output is the product's job, these just have to look like
// it.

const artFrontPage = ` Lantern · front page                        top · 12:04
──────────────────────────────────────────────────────────
  1. ▲ Show HN: I built a calculator for ants      312 ▪ 148
  2. ▲ PostgreSQL 18 released                      287 ▪  96
  3. ▲ The case against daily standups             201 ▪ 233
▸ 4. ▲ Writing a TUI is good for the soul          188 ▪  74
  5. ▲ Ask HN: Best paper you read this year?      154 ▪ 189
  6. ▲ Reverse engineering my dishwasher           139 ▪  52
  7. ▲ Rust without the borrow checker              97 ▪ 310
──────────────────────────────────────────────────────────
 j/k move · enter open · c comments · s save · / search`

const artThread = ` Writing a TUI is good for the soul              188 ▪ 74
──────────────────────────────────────────────────────────
 ▾ tmuxfan42 (2h)
 │  The constraint is the point. A grid of cells forces
 │  you to decide what actually matters on screen.
 │
 ├─▾ ncursed (1h)
 │  │  Agreed, though wide glyphs will humble anyone.
 │  │
 │  └─▸ unicode_enjoyer (44m)  [3 replies folded]
 │
 └─▸ carmackfan (20m)  [dead]
──────────────────────────────────────────────────────────
 h/l fold · J/K sibling · r reply in browser`

const artSearch = ` Search                                     34,218 results
──────────────────────────────────────────────────────────
 ❯ sqlite vfs_

 sort: points ▾   since: 2024 ▾   type: story ▾

 ▸ 512  SQLite VFS for object storage
   389  A WASM SQLite that syncs
   244  Ask HN: Why is SQLite everywhere?
   198  Virtual file systems considered useful
──────────────────────────────────────────────────────────
 tab filter · enter open · esc clear`

const artThemes = ` Themes                                        ● preview
──────────────────────────────────────────────────────────
   ember      ████ ████ ████   warm, default
 ▸ paper      ████ ████ ████   light, high contrast
   gruvbox    ████ ████ ████   the classic
   nord       ████ ████ ████   cold and calm
   mono       ████ ████ ████   no color at all
──────────────────────────────────────────────────────────
 enter apply · p toggle preview`

// terminalScreen renders the named screen inside a terminal window frame.
// Unknown names render nothing; the content layer validates names before
// they get here.
func terminalScreen(kind string) gomponents.Node {
	var screen string
	switch kind {
	case "front-page":
		screen = artFrontPage
	case "thread":
		screen = artThread
	case "search":
		screen = artSearch
	case "themes":
		screen = artThemes
	default:
		return nil
	}

	return html.Div(
		html.Class("term"),
		gomponents.Attr("aria-hidden", "true"),
		html.Div(
			html.Class("term-bar"),
			html.Span(html.Class("term-dot")),
			html.Span(html.Class("term-dot")),
			html.Span(html.Class("term-dot")),
			html.Span(html.Class("term-title"), gomponents.Text("lantern")),
		),
		html.Pre(html.Class("term-screen"), gomponents.Text(screen)),
	)
}

// artCaption returns the fallback body fragment for screens that explain
// themselves better than prose would.
func artCaption(kind string) gomponents.Node {
	if kind != "themes" {
		return nil
	}

	names := []string{"ember", "paper", "gruvbox", "nord", "mono"}
	swatches := make([]gomponents.Node, 0, len(names))
	for _, name := range names {
		swatches = append(swatches, html.Span(html.Class("swatch swatch-"+name), gomponents.Text(name)))
	}

	return html.Div(html.Class("swatch-row"), gomponents.Group(swatches))
}
