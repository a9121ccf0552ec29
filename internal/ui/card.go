package ui

import (
	gomponents "maragu.dev/gomponents"
	html "maragu.dev/gomponents/html"
)

// BodySource names which of a card's two body inputs the rendering layer
// uses.
type BodySource string

const (
	BodyLiteral  BodySource = "literal"
	BodyFragment BodySource = "fragment"
)

// cardLayoutClasses maps the compact flag to the layout token. Compact cards
// run as a single row with the short media region; regular cards stack with
// the tall one.
var cardLayoutClasses = map[bool]string{
	true:  "card-row",
	false: "card-col",
}

// cardStructuralClasses is the fixed structural tail of every card container.
// It comes after any caller tokens: for cards the structure wins conflicts,
// the opposite of Button.WithClasses.
const cardStructuralClasses = "card rounded border shadow"

// Card is an immutable description of a content card: an eyebrow label, a
// title, an optional media region, and a body that is either a literal string
// or a rich fragment. Decorate with the With* methods; every method returns a
// copy.
type Card struct {
	eyebrow    string
	title      string
	body       string
	fragment   gomponents.Node
	media      gomponents.Node
	fadeTop    bool
	fadeBottom bool
	compact    bool
	extra      string
}

// NewCard describes a card with an eyebrow label and a title.
func NewCard(eyebrow, title string) Card {
	return Card{eyebrow: eyebrow, title: title}
}

// WithBody sets the literal body. A non-empty literal always wins: the
// fragment is the fallback, never a sibling.
func (c Card) WithBody(body string) Card {
	c.body = body
	return c
}

// WithBodyFragment sets a rich body, rendered only when no literal body is
// set.
func (c Card) WithBodyFragment(fragment gomponents.Node) Card {
	c.fragment = fragment
	return c
}

// WithMedia sets the media region content.
func (c Card) WithMedia(media gomponents.Node) Card {
	c.media = media
	return c
}

// WithFades paints gradient masks over the top and bottom edges of the media
// region.
func (c Card) WithFades(top, bottom bool) Card {
	c.fadeTop = top
	c.fadeBottom = bottom
	return c
}

// Compact switches the card to the single-row layout.
func (c Card) Compact() Card {
	c.compact = true
	return c
}

// WithClasses places caller style tokens before the layout and structural
// ones.
func (c Card) WithClasses(extra string) Card {
	c.extra = extra
	return c
}

// CardComposition is the resolved output consumed by the rendering layer.
type CardComposition struct {
	ContainerClass string
	Body           BodySource
	FadeTop        bool
	FadeBottom     bool
}

// Compose derives the container class list and body selection for the card.
// Like Button.Resolve it is a pure function of the receiver.
func (c Card) Compose() CardComposition {
	body := BodyFragment
	if c.body != "" {
		body = BodyLiteral
	}
	return CardComposition{
		ContainerClass: joinClasses(c.extra, cardLayoutClasses[c.compact], cardStructuralClasses),
		Body:           body,
		FadeTop:        c.fadeTop,
		FadeBottom:     c.fadeBottom,
	}
}

// Node renders the card: the media region first, then eyebrow, title, and the
// selected body.
func (c Card) Node() gomponents.Node {
	comp := c.Compose()

	media := gomponents.Node(nil)
	if c.media != nil {
		overlays := []gomponents.Node{c.media}
		if comp.FadeTop {
			overlays = append(overlays, html.Div(html.Class("fade fade-top")))
		}
		if comp.FadeBottom {
			overlays = append(overlays, html.Div(html.Class("fade fade-bottom")))
		}
		media = html.Div(html.Class("card-media"), gomponents.Group(overlays))
	}

	body := gomponents.Node(nil)
	switch {
	case comp.Body == BodyLiteral:
		body = html.P(html.Class("card-body"), gomponents.Text(c.body))
	case c.fragment != nil:
		body = html.Div(html.Class("card-body"), c.fragment)
	}

	eyebrow := gomponents.Node(nil)
	if c.eyebrow != "" {
		eyebrow = html.Span(html.Class("card-eyebrow"), gomponents.Text(c.eyebrow))
	}

	return html.Div(
		html.Class(comp.ContainerClass),
		media,
		html.Div(
			html.Class("card-copy"),
			eyebrow,
			html.H3(html.Class("card-title"), gomponents.Text(c.title)),
			body,
		),
	)
}
