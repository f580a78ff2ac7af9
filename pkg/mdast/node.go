package mdast

// NodeKind classifies the type of an AST node.
type NodeKind uint8

// Node kinds for block-level and inline-level Markdown elements, following
// the closed taxonomy of classic Markdown: headers, quotes, lists and
// items, indented code, rulers, reference definitions, comments, and the
// inline elements nested inside a paragraph Line.
const (
	NodeDocument NodeKind = iota

	// Block-level nodes.
	NodeParagraph
	NodeHeader
	NodeQuote
	NodeList
	NodeItem
	NodeCode
	NodeRuler
	NodeResourceDefinition
	NodeComment
	NodeLine

	// Inline-level nodes.
	NodeText
	NodeCodeText
	NodeCharRef
	NodeCodeSpan
	NodeEmphasis
	NodeLink
	NodeImage
	NodeInlineURL
	NodeLineBreak

	// HTML passthrough. OpeningTag/ClosingTag/EmptyTag all share the same
	// "is an HTML tag" nature (see Node.IsHTMLTag); there is no separate
	// concrete node for a balanced open+children+close element because
	// the grammar never restructures the tree that way (see DESIGN.md).
	NodeOpeningTag
	NodeClosingTag
	NodeEmptyTag
)

// Node represents a single node in the Markdown AST.
// Nodes form a tree structure with parent/child/sibling relationships.
type Node struct {
	// Kind identifies what type of node this is.
	Kind NodeKind

	// Tree structure pointers.
	Parent     *Node
	FirstChild *Node
	LastChild  *Node
	Prev       *Node
	Next       *Node

	// Token span (indices into FileSnapshot.Tokens).
	// FirstToken <= LastToken for non-empty nodes.
	// Both are -1 for synthetic/degenerate nodes.
	FirstToken int
	LastToken  int

	// File is a back-reference to the containing FileSnapshot.
	File *FileSnapshot

	// Block holds attributes for block-level nodes.
	Block *BlockAttrs

	// Inline holds attributes for inline-level nodes.
	Inline *InlineAttrs

	// HTML holds attributes shared by OpeningTag/ClosingTag/EmptyTag.
	HTML *HTMLAttrs
}

// IsBlock returns true if this is a block-level node.
func (n *Node) IsBlock() bool {
	switch n.Kind {
	case NodeDocument, NodeParagraph, NodeHeader, NodeQuote, NodeList, NodeItem,
		NodeCode, NodeRuler, NodeResourceDefinition, NodeComment, NodeLine:
		return true
	default:
		return false
	}
}

// IsInline returns true if this is an inline-level node.
func (n *Node) IsInline() bool {
	switch n.Kind {
	case NodeText, NodeCodeText, NodeCharRef, NodeCodeSpan, NodeEmphasis,
		NodeLink, NodeImage, NodeInlineURL, NodeLineBreak,
		NodeOpeningTag, NodeClosingTag, NodeEmptyTag:
		return true
	default:
		return false
	}
}

// IsHTMLTag reports whether this node is one of the HTML passthrough
// kinds (OpeningTag, ClosingTag, EmptyTag). It is the Go equivalent of the
// original grammar's "instanceof Tag" check against their common abstract
// base class.
func (n *Node) IsHTMLTag() bool {
	switch n.Kind {
	case NodeOpeningTag, NodeClosingTag, NodeEmptyTag:
		return true
	default:
		return false
	}
}

// HasChildren returns true if this node has any children.
func (n *Node) HasChildren() bool {
	return n.FirstChild != nil
}

// ChildCount returns the number of direct children.
func (n *Node) ChildCount() int {
	count := 0
	for child := n.FirstChild; child != nil; child = child.Next {
		count++
	}
	return count
}

// Children returns a slice of all direct children.
func (n *Node) Children() []*Node {
	var children []*Node
	for child := n.FirstChild; child != nil; child = child.Next {
		children = append(children, child)
	}
	return children
}

// ChildAt returns the i-th direct child (0-based), or nil if out of range.
func (n *Node) ChildAt(i int) *Node {
	for child := n.FirstChild; child != nil; child = child.Next {
		if i == 0 {
			return child
		}
		i--
	}
	return nil
}
