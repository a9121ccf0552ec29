package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	gomponents "maragu.dev/gomponents"
)

func renderString(t *testing.T, node gomponents.Node) string {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, node.Render(&sb))
	return sb.String()
}

func TestButtonResolveSolidColors(t *testing.T) {
	cases := []struct {
		color ButtonColor
		want  string
	}{
		{ButtonRed, "btn btn-solid btn-red"},
		{ButtonWhite, "btn btn-solid btn-white"},
		{ButtonGray, "btn btn-solid btn-gray"},
	}
	for _, tc := range cases {
		b, err := NewLinkButton("/download", false, ButtonSolid, tc.color)
		require.NoError(t, err)
		require.Equal(t, tc.want, b.Resolve().StyleClass)
	}
}

func TestButtonResolveOutlineGray(t *testing.T) {
	b, err := NewLinkButton("/download", false, ButtonOutline, ButtonGray)
	require.NoError(t, err)
	require.Equal(t, "btn btn-outline btn-outline-gray", b.Resolve().StyleClass)
}

func TestButtonOutlineRejectsOtherColors(t *testing.T) {
	for _, color := range []ButtonColor{ButtonRed, ButtonWhite} {
		_, err := NewLinkButton("/download", false, ButtonOutline, color)
		require.Error(t, err)

		var cfgErr *ConfigurationError
		require.True(t, errors.As(err, &cfgErr))
		require.Contains(t, cfgErr.Message, "(outline, "+string(color)+")")
	}
}

func TestButtonRejectsUnknownStyle(t *testing.T) {
	_, err := NewLinkButton("/x", false, ButtonVariant("ghost"), ButtonGray)
	require.Error(t, err)

	_, err = NewActionButton("doThing()", ButtonSolid, ButtonColor("teal"))
	require.Error(t, err)
}

func TestMustLinkButtonPanicsOnBadStyle(t *testing.T) {
	require.Panics(t, func() {
		MustLinkButton("/x", false, ButtonOutline, ButtonRed)
	})
	require.NotPanics(t, func() {
		MustLinkButton("/x", false, ButtonOutline, ButtonGray)
	})
}

func TestButtonRenderAs(t *testing.T) {
	link := MustLinkButton("/download", false, ButtonSolid, ButtonRed)
	require.Equal(t, RenderAnchor, link.Resolve().RenderAs)

	action := MustActionButton("toggle()", ButtonSolid, ButtonGray)
	require.Equal(t, RenderButton, action.Resolve().RenderAs)
}

func TestButtonExternalLinkFlags(t *testing.T) {
	internal := MustLinkButton("/download", false, ButtonSolid, ButtonRed).Resolve()
	require.False(t, internal.NewTab)
	require.False(t, internal.NoReferrer)

	external := MustLinkButton("https://github.com/lantern-news/lantern", true, ButtonSolid, ButtonRed).Resolve()
	require.True(t, external.NewTab)
	require.True(t, external.NoReferrer)

	action := MustActionButton("toggle()", ButtonSolid, ButtonGray).Resolve()
	require.False(t, action.NewTab)
	require.False(t, action.NoReferrer)
}

func TestButtonExtraClassesComeLast(t *testing.T) {
	b := MustLinkButton("/download", false, ButtonSolid, ButtonRed).WithClasses("hero-cta wide")
	require.Equal(t, "btn btn-solid btn-red hero-cta wide", b.Resolve().StyleClass)
}

func TestButtonResolveDeterministic(t *testing.T) {
	b := MustLinkButton("https://example.com", true, ButtonOutline, ButtonGray).
		WithTitle("Source").
		WithClasses("hero-cta")

	first := b.Resolve()
	second := b.Resolve()
	require.Empty(t, cmp.Diff(first, second))

	require.Equal(t, renderString(t, b.Node(gomponents.Text("Source"))), renderString(t, b.Node(gomponents.Text("Source"))))
}

func TestButtonDecoratorsReturnCopies(t *testing.T) {
	base := MustLinkButton("/download", false, ButtonSolid, ButtonRed)
	decorated := base.WithClasses("wide").WithTitle("Download")

	require.Equal(t, "btn btn-solid btn-red", base.Resolve().StyleClass)
	require.Equal(t, "btn btn-solid btn-red wide", decorated.Resolve().StyleClass)
}

func TestButtonNodeInternalAnchor(t *testing.T) {
	b := MustLinkButton("/download", false, ButtonSolid, ButtonRed)
	got := renderString(t, b.Node(gomponents.Text("Get Lantern")))
	require.Equal(t, `<a class="btn btn-solid btn-red" href="/download">Get Lantern</a>`, got)
}

func TestButtonNodeExternalAnchor(t *testing.T) {
	b := MustLinkButton("https://github.com/lantern-news/lantern", true, ButtonOutline, ButtonGray)
	got := renderString(t, b.Node(gomponents.Text("View source")))

	require.Contains(t, got, `href="https://github.com/lantern-news/lantern"`)
	require.Contains(t, got, `target="_blank"`)
	require.Contains(t, got, `rel="noreferrer"`)
}

func TestButtonNodeAction(t *testing.T) {
	b := MustActionButton("window.__lanternTheme.toggle()", ButtonSolid, ButtonGray).WithAriaLabel("Toggle theme")
	got := renderString(t, b.Node(gomponents.Text("Theme")))

	require.True(t, strings.HasPrefix(got, "<button "))
	require.Contains(t, got, `type="button"`)
	require.Contains(t, got, `data-on-click="window.__lanternTheme.toggle()"`)
	require.Contains(t, got, `aria-label="Toggle theme"`)
	require.NotContains(t, got, "href")
}
