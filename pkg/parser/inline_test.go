package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdhtml/pkg/mdast"
)

func firstLine(t *testing.T, root *mdast.Node) *mdast.Node {
	t.Helper()
	require.Equal(t, mdast.NodeParagraph, root.FirstChild.Kind)
	return root.FirstChild.FirstChild
}

func TestParse_TextCoalescesAdjacentRuns(t *testing.T) {
	root := parseDoc(t, "hello world")
	line := firstLine(t, root)
	require.Equal(t, 1, line.ChildCount())
	assert.Equal(t, mdast.NodeText, line.FirstChild.Kind)
	assert.Equal(t, "hello world", line.FirstChild.Inline.Text)
}

func TestParse_CharacterEntityReferencePassesThrough(t *testing.T) {
	root := parseDoc(t, "a &amp; b")
	line := firstLine(t, root)
	require.Equal(t, 3, line.ChildCount())
	ref := line.FirstChild.Next
	assert.Equal(t, mdast.NodeCharRef, ref.Kind)
	assert.Equal(t, "&amp;", ref.Inline.Text)
}

func TestParse_NumericCharacterReferencePassesThrough(t *testing.T) {
	root := parseDoc(t, "&#169;")
	line := firstLine(t, root)
	require.Equal(t, 1, line.ChildCount())
	assert.Equal(t, mdast.NodeCharRef, line.FirstChild.Kind)
	assert.Equal(t, "&#169;", line.FirstChild.Inline.Text)
}

func TestParse_EscapedCharacterBecomesLiteral(t *testing.T) {
	root := parseDoc(t, `\*not emphasis\*`)
	line := firstLine(t, root)
	require.Equal(t, 1, line.ChildCount())
	assert.Equal(t, mdast.NodeText, line.FirstChild.Kind)
	assert.Equal(t, "*not emphasis*", line.FirstChild.Inline.Text)
}

func TestParse_CodeSpanMatchesEqualBacktickRuns(t *testing.T) {
	root := parseDoc(t, "a `` b ` c `` d")
	line := firstLine(t, root)
	var span *mdast.Node
	for c := line.FirstChild; c != nil; c = c.Next {
		if c.Kind == mdast.NodeCodeSpan {
			span = c
		}
	}
	require.NotNil(t, span)
	assert.Equal(t, " b ` c ", span.Inline.Text)
}

func TestParse_UnterminatedCodeSpanFallsBackToText(t *testing.T) {
	root := parseDoc(t, "a `b")
	line := firstLine(t, root)
	for c := line.FirstChild; c != nil; c = c.Next {
		assert.NotEqual(t, mdast.NodeCodeSpan, c.Kind)
	}
}

func TestParse_HardLineBreakRequiresTwoTrailingSpaces(t *testing.T) {
	root := parseDoc(t, "a  \nb")
	para := root.FirstChild
	require.Equal(t, mdast.NodeParagraph, para.Kind)
	line := para.FirstChild
	var sawBreak bool
	for c := line.FirstChild; c != nil; c = c.Next {
		if c.Kind == mdast.NodeLineBreak {
			sawBreak = true
		}
	}
	assert.True(t, sawBreak)
}

func TestParse_InlineAutolink(t *testing.T) {
	root := parseDoc(t, "<http://example.com>")
	line := firstLine(t, root)
	require.Equal(t, 1, line.ChildCount())
	require.Equal(t, mdast.NodeInlineURL, line.FirstChild.Kind)
	assert.Equal(t, "http://example.com", line.FirstChild.Inline.URL)
}
