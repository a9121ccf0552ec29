package ui

import (
	"strings"

	gomponents "maragu.dev/gomponents"
	html "maragu.dev/gomponents/html"
)

// CommandBlock is an ordered sequence of shell command lines displayed
// verbatim, with a one-click copy control. Only the first line is offered to
// the clipboard; follow-up lines are context the reader runs by hand.
type CommandBlock struct {
	lines []string
}

// NewCommandBlock builds a block from one or more literal command lines. An
// empty sequence is a defect in the calling page and is rejected at
// construction time, not at copy time.
func NewCommandBlock(lines ...string) (CommandBlock, error) {
	if len(lines) == 0 {
		return CommandBlock{}, errConfiguration("command block needs at least one line")
	}
	copied := make([]string, len(lines))
	copy(copied, lines)
	return CommandBlock{lines: copied}, nil
}

// MustCommandBlock is NewCommandBlock for page literals; it panics on an
// empty sequence.
func MustCommandBlock(lines ...string) CommandBlock {
	b, err := NewCommandBlock(lines...)
	if err != nil {
		panic(err)
	}
	return b
}

// Lines returns a copy of the command lines.
func (b CommandBlock) Lines() []string {
	out := make([]string, len(b.lines))
	copy(out, b.lines)
	return out
}

// DisplayText returns the lines newline-joined in their original order.
func (b CommandBlock) DisplayText() string {
	return strings.Join(b.lines, "\n")
}

// CopyPayload returns the text offered to the clipboard: the first line only,
// never the joined display text.
func (b CommandBlock) CopyPayload() string {
	if len(b.lines) == 0 {
		return ""
	}
	return b.lines[0]
}

// Node renders the block with its copy control. The actual clipboard write is
// wired by copyScript, which handles every [data-copy-text] control on the
// page.
func (b CommandBlock) Node() gomponents.Node {
	return html.Div(
		html.Class("command-block"),
		html.Pre(html.Class("command-lines"),
			html.Code(gomponents.Text(b.DisplayText())),
		),
		html.Button(
			html.Type("button"),
			html.Class("command-copy"),
			gomponents.Attr("data-copy-text", b.CopyPayload()),
			gomponents.Attr("aria-label", "Copy command"),
			html.Span(html.Class("copy-idle"), gomponents.Text("Copy")),
			html.Span(html.Class("copy-done"), gomponents.Text("Copied")),
		),
	)
}
