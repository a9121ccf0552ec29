package ui

import (
	"strings"

	gomponents "maragu.dev/gomponents"
	data "maragu.dev/gomponents-datastar"
	html "maragu.dev/gomponents/html"

	"lantern-site/internal/content"
)

// sitePage is the scaffold every page renders through: head metadata, the
// fixed header, the page body, and the footer. An empty title falls back to
// the site tagline. nonce, when set, is attached to every inline script so
// the content-security policy admits them.
func sitePage(title, path, nonce string, site *content.Site, body ...gomponents.Node) gomponents.Node {
	pageTitle := site.Name + ": " + site.Tagline
	if title != "" {
		pageTitle = title + " | " + site.Name
	}
	canonical := strings.TrimRight(site.BaseURL, "/") + path

	return html.HTML(
		html.Lang("en"),
		html.Head(
			html.Meta(html.Charset("utf-8")),
			html.Meta(html.Name("viewport"), html.Content("width=device-width, initial-scale=1")),
			html.TitleEl(gomponents.Text(pageTitle)),
			html.Meta(html.Name("description"), html.Content(site.Description)),
			html.Link(html.Rel("canonical"), html.Href(canonical)),
			html.Meta(gomponents.Attr("property", "og:type"), html.Content("website")),
			html.Meta(gomponents.Attr("property", "og:site_name"), html.Content(site.Name)),
			html.Meta(gomponents.Attr("property", "og:title"), html.Content(pageTitle)),
			html.Meta(gomponents.Attr("property", "og:description"), html.Content(site.Description)),
			html.Meta(gomponents.Attr("property", "og:url"), html.Content(canonical)),
			html.Meta(html.Name("twitter:card"), html.Content("summary")),
			html.Link(html.Rel("stylesheet"), html.Href(stylesheetHref())),
			nonceScript(nonce, themeInitScript),
			html.Script(
				html.Type("module"),
				html.Src(datastarSrc),
			),
		),
		html.Body(
			siteHeader(site),
			html.Main(html.Class("page"), gomponents.Group(body)),
			siteFooter(site),
			nonceScript(nonce, themeBehaviorScript),
			nonceScript(nonce, copyScript),
		),
	)
}

func nonceScript(nonce, js string) gomponents.Node {
	if nonce == "" {
		return html.Script(gomponents.Raw(js))
	}
	return html.Script(gomponents.Attr("nonce", nonce), gomponents.Raw(js))
}

func siteHeader(site *content.Site) gomponents.Node {
	themeToggle := MustActionButton("window.__lanternTheme.toggle()", ButtonSolid, ButtonGray).
		WithClasses("btn-icon").
		WithAriaLabel("Toggle theme")

	navToggle := MustActionButton("$nav = !$nav", ButtonSolid, ButtonGray).
		WithClasses("btn-icon nav-toggle").
		WithAriaLabel("Toggle navigation")

	return html.Header(
		html.Class("site-header"),
		data.Signals(map[string]any{"nav": false}),
		html.A(html.Href("/"), html.Class("brand"),
			html.Span(html.Class("brand-mark"), gomponents.Attr("aria-hidden", "true"), gomponents.Text("🏮")),
			html.Span(gomponents.Text(site.Name)),
		),
		navToggle.Node(gomponents.Text("☰")),
		html.Nav(
			html.Class("site-nav"),
			gomponents.Attr("data-class", "{open: $nav}"),
			html.A(html.Href("/#install"), gomponents.Text("Install")),
			html.A(html.Href("/#features"), gomponents.Text("Features")),
			html.A(html.Href(site.RepoURL), html.Target("_blank"), html.Rel("noreferrer"), gomponents.Text("GitHub")),
			themeToggle.Node(
				html.ID("theme-toggle"),
				html.Span(html.ID("theme-icon-sun"), html.Class("theme-icon"), gomponents.Text("☀")),
				html.Span(html.ID("theme-icon-moon"), html.Class("theme-icon is-hidden"), gomponents.Text("☾")),
			),
		),
	)
}

func siteFooter(site *content.Site) gomponents.Node {
	groups := make([]gomponents.Node, 0, len(site.FooterLinks))
	for _, group := range site.FooterLinks {
		links := make([]gomponents.Node, 0, len(group.Links))
		for _, link := range group.Links {
			links = append(links, html.Li(footerLink(link)))
		}
		groups = append(groups, html.Div(
			html.Class("footer-group"),
			html.H3(gomponents.Text(group.Title)),
			html.Ul(gomponents.Group(links)),
		))
	}

	return html.Footer(
		html.Class("site-footer"),
		html.Div(html.Class("footer-groups"), gomponents.Group(groups)),
		html.P(html.Class("footer-note"), gomponents.Text(site.Name+" is free software, made for people who read the comments first.")),
	)
}

func footerLink(link content.Link) gomponents.Node {
	attrs := []gomponents.Node{html.Href(link.Href)}
	if link.External {
		attrs = append(attrs, html.Target("_blank"), html.Rel("noreferrer"))
	}
	return html.A(append(attrs, gomponents.Text(link.Label))...)
}

// NotFoundPage renders the 404 page.
func NotFoundPage(site *content.Site, nonce string) gomponents.Node {
	return sitePage("Page not found", "/404", nonce, site,
		html.Section(
			html.Class("error-section"),
			html.P(html.Class("error-code"), gomponents.Text("404")),
			html.H1(gomponents.Text("[flagged] [dead]")),
			html.P(html.Class("lede"), gomponents.Text("The page you were after does not exist. The front page is still there.")),
			MustLinkButton("/", false, ButtonSolid, ButtonRed).Node(gomponents.Text("Back to the front page")),
		),
	)
}
