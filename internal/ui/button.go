package ui

import (
	gomponents "maragu.dev/gomponents"
	html "maragu.dev/gomponents/html"
)

// ButtonVariant selects the structural treatment of a button.
type ButtonVariant string

// ButtonColor selects the color treatment layered on top of the variant.
type ButtonColor string

const (
	ButtonSolid   ButtonVariant = "solid"
	ButtonOutline ButtonVariant = "outline"

	ButtonRed   ButtonColor = "red"
	ButtonWhite ButtonColor = "white"
	ButtonGray  ButtonColor = "gray"
)

// RenderAnchor and RenderButton are the two element kinds a button resolves
// to: navigation renders an anchor, client-side actions render a real button.
const (
	RenderAnchor = "anchor"
	RenderButton = "button"
)

// buttonBaseClasses maps each variant to its base tokens.
var buttonBaseClasses = map[ButtonVariant]string{
	ButtonSolid:   "btn btn-solid",
	ButtonOutline: "btn btn-outline",
}

// buttonColorClasses maps variant and color to the color overlay tokens. The
// outline row only carries gray: outline buttons ship in a single neutral
// treatment, and the constructors reject every other pairing.
var buttonColorClasses = map[ButtonVariant]map[ButtonColor]string{
	ButtonSolid: {
		ButtonRed:   "btn-red",
		ButtonWhite: "btn-white",
		ButtonGray:  "btn-gray",
	},
	ButtonOutline: {
		ButtonGray: "btn-outline-gray",
	},
}

type buttonAction string

const (
	actionNavigate buttonAction = "navigate"
	actionInvoke   buttonAction = "invoke"
)

// Button is an immutable description of a styled button, assembled at
// page-authoring time. Construct with NewLinkButton or NewActionButton and
// decorate with the With* methods; every method returns a copy.
type Button struct {
	kind     buttonAction
	href     string
	external bool
	onClick  string
	variant  ButtonVariant
	color    ButtonColor
	title    string
	label    string
	extra    string
}

// NewLinkButton describes a button that navigates to href when activated.
// External destinations open in a new browsing context with the referrer
// suppressed. The variant and color pair is validated up front.
func NewLinkButton(href string, external bool, variant ButtonVariant, color ButtonColor) (Button, error) {
	if err := checkButtonStyle(variant, color); err != nil {
		return Button{}, err
	}
	return Button{kind: actionNavigate, href: href, external: external, variant: variant, color: color}, nil
}

// NewActionButton describes a button that evaluates a client-side expression
// when activated instead of navigating.
func NewActionButton(onClick string, variant ButtonVariant, color ButtonColor) (Button, error) {
	if err := checkButtonStyle(variant, color); err != nil {
		return Button{}, err
	}
	return Button{kind: actionInvoke, onClick: onClick, variant: variant, color: color}, nil
}

// MustLinkButton is NewLinkButton for page literals. It panics on an illegal
// combination, which is a defect in the calling page.
func MustLinkButton(href string, external bool, variant ButtonVariant, color ButtonColor) Button {
	b, err := NewLinkButton(href, external, variant, color)
	if err != nil {
		panic(err)
	}
	return b
}

// MustActionButton is NewActionButton for page literals.
func MustActionButton(onClick string, variant ButtonVariant, color ButtonColor) Button {
	b, err := NewActionButton(onClick, variant, color)
	if err != nil {
		panic(err)
	}
	return b
}

func checkButtonStyle(variant ButtonVariant, color ButtonColor) error {
	if _, ok := buttonBaseClasses[variant]; !ok {
		return errConfiguration("unknown button variant %q", variant)
	}
	switch color {
	case ButtonRed, ButtonWhite, ButtonGray:
	default:
		return errConfiguration("unknown button color %q", color)
	}
	if _, ok := buttonColorClasses[variant][color]; !ok {
		return errConfiguration("button style (%s, %s) is not available; outline buttons only come in gray", variant, color)
	}
	return nil
}

// WithTitle sets the title attribute, shown as a hover tooltip.
func (b Button) WithTitle(title string) Button {
	b.title = title
	return b
}

// WithAriaLabel sets an accessible name for buttons whose children do not
// carry readable text.
func (b Button) WithAriaLabel(label string) Button {
	b.label = label
	return b
}

// WithClasses appends caller style tokens after the resolved ones, so the
// caller's tokens win any conflict with the defaults.
func (b Button) WithClasses(extra string) Button {
	b.extra = extra
	return b
}

// ButtonRendering is the resolved output consumed by the rendering layer.
// NewTab and NoReferrer are carried separately even though both derive from
// the external flag today; they are distinct link semantics.
type ButtonRendering struct {
	StyleClass string
	RenderAs   string
	NewTab     bool
	NoReferrer bool
}

// Resolve derives the final class list and element kind for the button. It is
// a pure function of the receiver: equal buttons resolve identically on every
// call.
func (b Button) Resolve() ButtonRendering {
	r := ButtonRendering{
		StyleClass: joinClasses(buttonBaseClasses[b.variant], buttonColorClasses[b.variant][b.color], b.extra),
		RenderAs:   RenderButton,
	}
	if b.kind == actionNavigate {
		r.RenderAs = RenderAnchor
		r.NewTab = b.external
		r.NoReferrer = b.external
	}
	return r
}

// Node renders the button. Children are passed through untouched, so callers
// can attach icons, text, or extra attributes.
func (b Button) Node(children ...gomponents.Node) gomponents.Node {
	r := b.Resolve()
	attrs := []gomponents.Node{html.Class(r.StyleClass)}
	if b.title != "" {
		attrs = append(attrs, html.Title(b.title))
	}
	if b.label != "" {
		attrs = append(attrs, gomponents.Attr("aria-label", b.label))
	}
	if r.RenderAs == RenderAnchor {
		attrs = append(attrs, html.Href(b.href))
		if r.NewTab {
			attrs = append(attrs, html.Target("_blank"))
		}
		if r.NoReferrer {
			attrs = append(attrs, html.Rel("noreferrer"))
		}
		return html.A(append(attrs, children...)...)
	}
	attrs = append(attrs, html.Type("button"))
	if b.onClick != "" {
		attrs = append(attrs, gomponents.Attr("data-on-click", b.onClick))
	}
	return html.Button(append(attrs, children...)...)
}
