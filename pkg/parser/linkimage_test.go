package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdhtml/pkg/mdast"
)

func TestParse_InlineLinkCarriesItsOwnResource(t *testing.T) {
	root := parseDoc(t, `[foo](http://x "a title")`)
	line := firstLine(t, root)
	require.Equal(t, 1, line.ChildCount())
	link := line.FirstChild
	require.Equal(t, mdast.NodeLink, link.Kind)
	assert.False(t, link.Inline.Link.Referenced)
	require.NotNil(t, link.Inline.Link.Resource)
	assert.Equal(t, "http://x", link.Inline.Link.Resource.Location)
	assert.Equal(t, "a title", link.Inline.Link.Resource.Name)
	assert.Equal(t, "foo", link.Inline.Link.Text)
}

func TestParse_ReferenceLinkWithExplicitID(t *testing.T) {
	root := parseDoc(t, "[foo][1]")
	line := firstLine(t, root)
	link := line.FirstChild
	require.Equal(t, mdast.NodeLink, link.Kind)
	assert.True(t, link.Inline.Link.Referenced)
	assert.True(t, link.Inline.Link.HasReferenceName)
	assert.Equal(t, "1", link.Inline.Link.ReferenceName)
}

func TestParse_ReferenceLinkWithEmptyIDFallsBackToText(t *testing.T) {
	root := parseDoc(t, "[foo][]")
	line := firstLine(t, root)
	link := line.FirstChild
	require.Equal(t, mdast.NodeLink, link.Kind)
	assert.True(t, link.Inline.Link.Referenced)
	assert.False(t, link.Inline.Link.HasReferenceName)
}

func TestParse_BareLinkShorthandUsesTextAsID(t *testing.T) {
	root := parseDoc(t, "[foo]")
	line := firstLine(t, root)
	link := line.FirstChild
	require.Equal(t, mdast.NodeLink, link.Kind)
	assert.True(t, link.Inline.Link.Referenced)
	assert.False(t, link.Inline.Link.HasReferenceName)
	assert.Equal(t, "foo", link.Inline.Link.Text)
}

func TestParse_ImageWithInlineResource(t *testing.T) {
	root := parseDoc(t, `![alt](http://x/img.png)`)
	line := firstLine(t, root)
	img := line.FirstChild
	require.Equal(t, mdast.NodeImage, img.Kind)
	assert.Equal(t, "alt", img.Inline.Image.Text)
	require.NotNil(t, img.Inline.Image.Resource)
	assert.Equal(t, "http://x/img.png", img.Inline.Image.Resource.Location)
}

func TestParse_UnclosedBracketFallsBackToLiteralText(t *testing.T) {
	root := parseDoc(t, "[foo")
	line := firstLine(t, root)
	require.Equal(t, mdast.NodeText, line.FirstChild.Kind)
	assert.Equal(t, "[foo", line.FirstChild.Inline.Text)
}

func TestParse_LinkTextIsParsedAsInlineChildrenNotJustFlatText(t *testing.T) {
	root := parseDoc(t, `[a &amp; *b*](http://x)`)
	line := firstLine(t, root)
	link := line.FirstChild
	require.Equal(t, mdast.NodeLink, link.Kind)
	assert.Equal(t, "a &amp; *b*", link.Inline.Link.Text)

	require.True(t, link.HasChildren())
	var sawCharRef, sawEmphasis bool
	for c := link.FirstChild; c != nil; c = c.Next {
		switch c.Kind {
		case mdast.NodeCharRef:
			sawCharRef = true
			assert.Equal(t, "&amp;", c.Inline.Text)
		case mdast.NodeEmphasis:
			sawEmphasis = true
		}
	}
	assert.True(t, sawCharRef, "expected a CharRef child for the literal entity reference")
	assert.True(t, sawEmphasis, "expected an Emphasis child for *b*")
}

func TestParse_QuoteInsideUnquotedTitleIsLiteral(t *testing.T) {
	root := parseDoc(t, `[foo](http://x "it's fine")`)
	line := firstLine(t, root)
	link := line.FirstChild
	require.NotNil(t, link.Inline.Link.Resource)
	assert.Equal(t, "it's fine", link.Inline.Link.Resource.Name)
}
