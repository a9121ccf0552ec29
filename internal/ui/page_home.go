package ui

import (
	"strconv"

	gomponents "maragu.dev/gomponents"
	data "maragu.dev/gomponents-datastar"
	html "maragu.dev/gomponents/html"

	"lantern-site/internal/content"
)

// HomePage renders the landing page for the given content document.
func HomePage(site *content.Site, nonce string) gomponents.Node {
	return sitePage("", "/", nonce, site,
		heroSection(site),
		installSection(site.Install),
		featureSection(site.Features),
		closingSection(site),
	)
}

func heroSection(site *content.Site) gomponents.Node {
	eyebrow := gomponents.Node(nil)
	if site.Hero.Eyebrow != "" {
		eyebrow = html.P(html.Class("hero-eyebrow"), gomponents.Text(site.Hero.Eyebrow))
	}

	install := MustLinkButton("/#install", false, ButtonSolid, ButtonRed).WithClasses("btn-lg")
	source := MustLinkButton(site.RepoURL, true, ButtonOutline, ButtonGray).
		WithClasses("btn-lg").
		WithTitle("Source on GitHub")

	return html.Section(
		html.Class("hero"),
		html.Div(
			html.Class("hero-copy"),
			eyebrow,
			html.H1(gomponents.Text(site.Hero.Title)),
			html.P(html.Class("lede"), gomponents.Text(site.Hero.Lede)),
			html.Div(
				html.Class("btn-row"),
				install.Node(gomponents.Text("Get "+site.Name)),
				source.Node(gomponents.Text("View source")),
			),
		),
		html.Div(html.Class("hero-screen"), terminalScreen("front-page")),
	)
}

func installSection(options []content.InstallOption) gomponents.Node {
	if len(options) == 0 {
		return nil
	}

	tabs := make([]gomponents.Node, 0, len(options))
	panels := make([]gomponents.Node, 0, len(options))
	for _, opt := range options {
		selected := "$tab === " + strconv.Quote(opt.Label)
		tabs = append(tabs, html.Button(
			html.Type("button"),
			html.Class("tab"),
			gomponents.Attr("data-on-click", "$tab = "+strconv.Quote(opt.Label)),
			gomponents.Attr("data-class", "{active: "+selected+"}"),
			gomponents.Text(opt.Label),
		))
		panels = append(panels, html.Div(
			html.Class("tab-panel"),
			data.Show(selected),
			MustCommandBlock(opt.Lines...).Node(),
		))
	}

	return html.Section(
		html.ID("install"),
		html.Class("install"),
		data.Signals(map[string]any{"tab": options[0].Label}),
		html.H2(gomponents.Text("Install in seconds")),
		html.Div(html.Class("tab-row"), gomponents.Group(tabs)),
		gomponents.Group(panels),
	)
}

func featureSection(features []content.Feature) gomponents.Node {
	cards := make([]gomponents.Node, 0, len(features))
	for _, f := range features {
		cards = append(cards, featureCard(f).Node())
	}

	return html.Section(
		html.ID("features"),
		html.Class("features"),
		html.H2(gomponents.Text("Built for reading")),
		html.Div(html.Class("feature-grid"), gomponents.Group(cards)),
	)
}

// featureCard maps one content feature onto a card. The art's caption
// fragment is always attached as the fallback body; a literal body from the
// content document wins over it.
func featureCard(f content.Feature) Card {
	card := NewCard(f.Eyebrow, f.Title).
		WithBody(f.Body).
		WithFades(f.FadeTop, f.FadeBottom)

	if f.Classes != "" {
		card = card.WithClasses(f.Classes)
	}
	if f.Compact {
		card = card.Compact()
	}
	if f.Art != "" {
		card = card.WithMedia(terminalScreen(f.Art))
		if caption := artCaption(f.Art); caption != nil {
			card = card.WithBodyFragment(caption)
		}
	}

	return card
}

func closingSection(site *content.Site) gomponents.Node {
	return html.Section(
		html.Class("closing"),
		html.H2(gomponents.Text("The front page is waiting")),
		html.P(gomponents.Text("One command, zero configuration. Uninstall just as fast if it is not for you.")),
		html.Div(
			html.Class("btn-row"),
			MustLinkButton("/#install", false, ButtonSolid, ButtonWhite).WithClasses("btn-lg").Node(gomponents.Text("Install "+site.Name)),
			MustLinkButton(site.RepoURL+"/releases", true, ButtonOutline, ButtonGray).WithClasses("btn-lg btn-on-band").Node(gomponents.Text("Release notes")),
		),
	)
}
