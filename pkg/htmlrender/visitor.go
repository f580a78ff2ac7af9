// Package htmlrender walks an mdast AST in document order and emits
// XHTML-style HTML to a writer, resolving link/image references against
// the document's reference table.
package htmlrender

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/mdhtml/internal/logging"
	"github.com/yaklabco/mdhtml/pkg/mdast"
)

// visitor holds the state one Render call needs: the output sink, the
// reference table to resolve links/images against, a logger for
// Debug-level resolution-miss tracing, and whether a resolution miss
// should fail the render outright instead of falling back to a visible
// placeholder.
type visitor struct {
	w          *bufio.Writer
	refs       *mdast.ReferenceTable
	log        *log.Logger
	strictRefs bool
}

// Render walks doc in document order, writing HTML to w. refs resolves
// Referenced links/images; a nil table behaves as an always-empty one.
// When strictRefs is true, a reference-lookup miss returns
// ErrUnresolvedReference instead of emitting the default fallback markup.
func Render(w io.Writer, doc *mdast.Node, refs *mdast.ReferenceTable, logger *log.Logger, strictRefs bool) error {
	if refs == nil {
		refs = mdast.NewReferenceTable()
	}
	if logger == nil {
		logger = logging.Default()
	}

	logUnresolvedReferences(doc, refs, logger)

	v := &visitor{w: bufio.NewWriter(w), refs: refs, log: logger, strictRefs: strictRefs}
	if err := v.renderChildren(doc); err != nil {
		return err
	}
	return v.w.Flush()
}

// logUnresolvedReferences scans the whole document once, before rendering
// begins, for Referenced links and images whose id has no matching
// definition, and logs their ids together in one summary line. The
// per-node Debug trace in renderLink/renderImage fires only for the
// reference actually reached at render time (with strictRefs set, the
// render stops at the first miss) so it can't give this whole-document
// view on its own.
func logUnresolvedReferences(doc *mdast.Node, refs *mdast.ReferenceTable, logger *log.Logger) {
	var missing []string

	for _, n := range mdast.FindByKind(doc, mdast.NodeLink) {
		attrs := n.Inline.Link
		if !attrs.Referenced {
			continue
		}
		id := attrs.Text
		if attrs.HasReferenceName {
			id = attrs.ReferenceName
		}
		if _, ok := refs.Lookup(id); !ok {
			missing = append(missing, id)
		}
	}

	for _, n := range mdast.FindByKind(doc, mdast.NodeImage) {
		attrs := n.Inline.Image
		if attrs.Resource != nil {
			continue
		}
		id := attrs.Text
		if attrs.HasRefID {
			id = attrs.RefID
		}
		if _, ok := refs.Lookup(id); !ok {
			missing = append(missing, id)
		}
	}

	if len(missing) > 0 {
		logger.Debug("unresolved references before render", logging.FieldRefID, strings.Join(missing, ", "))
	}
}

func (v *visitor) writeString(s string) error {
	_, err := v.w.WriteString(s)
	return err
}

// renderChildren renders every direct child of n in order; block-level
// children already terminate themselves with "\n" per the emission
// table, so no extra join separator is written here.
func (v *visitor) renderChildren(n *mdast.Node) error {
	for child := n.FirstChild; child != nil; child = child.Next {
		if err := v.render(child); err != nil {
			return err
		}
	}
	return nil
}

func (v *visitor) render(n *mdast.Node) error {
	switch n.Kind {
	case mdast.NodeDocument:
		return v.renderChildren(n)
	case mdast.NodeHeader:
		return v.renderHeader(n)
	case mdast.NodeParagraph:
		return v.renderParagraph(n)
	case mdast.NodeRuler:
		return v.writeString("<hr/>\n")
	case mdast.NodeQuote:
		return v.renderQuote(n)
	case mdast.NodeList:
		return v.renderList(n)
	case mdast.NodeItem:
		return v.renderItem(n)
	case mdast.NodeCode:
		return v.renderCode(n)
	case mdast.NodeResourceDefinition:
		return nil
	case mdast.NodeComment:
		return v.renderComment(n)
	case mdast.NodeLine:
		return v.renderChildren(n)
	case mdast.NodeText:
		return v.writeString(escape(n.Inline.Text))
	case mdast.NodeCodeText:
		return v.writeString(escape(n.Inline.Text))
	case mdast.NodeCharRef:
		return v.writeString(n.Inline.Text)
	case mdast.NodeCodeSpan:
		return v.writeString("<code>" + escape(n.Inline.Text) + "</code>")
	case mdast.NodeEmphasis:
		return v.renderEmphasis(n)
	case mdast.NodeLineBreak:
		return v.writeString("<br/>")
	case mdast.NodeLink:
		return v.renderLink(n)
	case mdast.NodeImage:
		return v.renderImage(n)
	case mdast.NodeInlineURL:
		return v.writeString(fmt.Sprintf(`<a href="%s">%s</a>`, escape(n.Inline.URL), escape(n.Inline.URL)))
	case mdast.NodeOpeningTag:
		if n.Parent != nil && n.Parent.Kind != mdast.NodeLine && strings.EqualFold(n.HTML.Name, "hr") {
			return v.writeString("<hr/>\n")
		}
		return v.writeString(renderHTMLTagHeader(n.HTML, false))
	case mdast.NodeEmptyTag:
		if n.Parent != nil && n.Parent.Kind != mdast.NodeLine && strings.EqualFold(n.HTML.Name, "hr") {
			return v.writeString("<hr/>\n")
		}
		return v.writeString(renderHTMLTagHeader(n.HTML, true))
	case mdast.NodeClosingTag:
		return v.writeString("</" + n.HTML.Name + ">")
	default:
		return nil
	}
}

func (v *visitor) renderHeader(n *mdast.Node) error {
	level := n.Block.HeaderLevel
	if err := v.writeString(fmt.Sprintf("<h%d>", level)); err != nil {
		return err
	}
	if err := v.renderChildren(n); err != nil {
		return err
	}
	return v.writeString(fmt.Sprintf("</h%d>\n", level))
}

// renderParagraph implements the paragraph special cases: a leading
// horizontal-rule tag with no other significant content on its line, a
// leading balanced raw-markup OpeningTag,
// or a tight-list-item parent, in that priority order; otherwise a plain
// <p>...</p> wrap.
func (v *visitor) renderParagraph(n *mdast.Node) error {
	line := n.FirstChild
	first := firstSignificantChild(line)

	if first != nil && first.IsHTMLTag() && strings.EqualFold(first.HTML.Name, "hr") && noOtherSignificantContent(line, first) {
		return v.writeString("<hr/>\n")
	}

	if first != nil && first.Kind == mdast.NodeOpeningTag && first.HTML.Balanced {
		return v.renderParagraphLines(n)
	}

	if n.Parent != nil && n.Parent.Kind == mdast.NodeItem && n.Parent.Block.Item != nil && !n.Parent.Block.Item.Loose {
		return v.renderParagraphLines(n)
	}

	if err := v.writeString("<p>"); err != nil {
		return err
	}
	if err := v.renderParagraphLines(n); err != nil {
		return err
	}
	return v.writeString("</p>\n")
}

// renderParagraphLines renders a paragraph's Line children joined by a
// literal newline, matching how a soft-wrapped continuation line renders
// in the same <p>.
func (v *visitor) renderParagraphLines(n *mdast.Node) error {
	for line := n.FirstChild; line != nil; line = line.Next {
		if line != n.FirstChild {
			if err := v.writeString("\n"); err != nil {
				return err
			}
		}
		if err := v.renderChildren(line); err != nil {
			return err
		}
	}
	return nil
}

// firstSignificantChild returns line's first child node (the paragraph's
// first grandchild), matching the containsHR predicate's exact semantic
// of looking only at that single position.
func firstSignificantChild(line *mdast.Node) *mdast.Node {
	if line == nil {
		return nil
	}
	return line.FirstChild
}

// noOtherSignificantContent reports whether every sibling of first
// (within line) after it is blank/whitespace-only text.
func noOtherSignificantContent(line, first *mdast.Node) bool {
	for child := line.FirstChild; child != nil; child = child.Next {
		if child == first {
			continue
		}
		if child.Kind != mdast.NodeText || strings.TrimSpace(child.Inline.Text) != "" {
			return false
		}
	}
	return true
}

func (v *visitor) renderQuote(n *mdast.Node) error {
	if err := v.writeString("<blockquote>\n"); err != nil {
		return err
	}
	if err := v.renderChildren(n); err != nil {
		return err
	}
	return v.writeString("</blockquote>\n")
}

func (v *visitor) renderList(n *mdast.Node) error {
	tag := "ul"
	if n.Block.List != nil && n.Block.List.Ordered {
		tag = "ol"
	}
	if err := v.writeString("<" + tag + ">\n"); err != nil {
		return err
	}
	if err := v.renderChildren(n); err != nil {
		return err
	}
	return v.writeString("</" + tag + ">\n")
}

func (v *visitor) renderItem(n *mdast.Node) error {
	if err := v.writeString("<li>"); err != nil {
		return err
	}
	if err := v.renderChildren(n); err != nil {
		return err
	}
	return v.writeString("</li>\n")
}

func (v *visitor) renderCode(n *mdast.Node) error {
	if err := v.writeString("<pre><code"); err != nil {
		return err
	}
	if text := n.FirstChild; text != nil {
		if lang := detectLanguage([]byte(text.Inline.Text)); lang != "" {
			if err := v.writeString(fmt.Sprintf(` class="language-%s"`, lang)); err != nil {
				return err
			}
		}
	}
	if err := v.writeString(">"); err != nil {
		return err
	}
	if err := v.renderChildren(n); err != nil {
		return err
	}
	return v.writeString("</code></pre>\n")
}

func (v *visitor) renderComment(n *mdast.Node) error {
	return v.writeString("<!--" + n.Block.Comment.Text + "-->\n")
}

func (v *visitor) renderEmphasis(n *mdast.Node) error {
	attrs := n.Inline.Emphasis
	open, closeTag := emphasisTags(attrs.Type)
	if err := v.writeString(open); err != nil {
		return err
	}
	if err := v.writeString(attrs.Text); err != nil {
		return err
	}
	return v.writeString(closeTag)
}

func emphasisTags(t mdast.EmphasisType) (open, close string) {
	switch t {
	case mdast.EmphasisItalic:
		return "<em>", "</em>"
	case mdast.EmphasisBold:
		return "<strong>", "</strong>"
	default:
		return "<strong><em>", "</em></strong>"
	}
}

// renderLink implements the Link resolution rules: inline links use
// their own resource; referenced links look up an explicit name or fall
// back to the link text; a lookup miss re-emits the original bracket
// syntax verbatim rather than failing.
func (v *visitor) renderLink(n *mdast.Node) error {
	attrs := n.Inline.Link

	var resource *mdast.Resource
	switch {
	case !attrs.Referenced:
		resource = attrs.Resource
	default:
		id := attrs.Text
		if attrs.HasReferenceName {
			id = attrs.ReferenceName
		}
		res, ok := v.refs.Lookup(id)
		if !ok {
			v.log.Debug("link reference miss", logging.FieldRefID, id)
			if v.strictRefs {
				return fmt.Errorf("%w: %q", ErrUnresolvedReference, id)
			}
			return v.writeString(unresolvedLinkSyntax(attrs))
		}
		resource = res
	}

	href := ""
	title := ""
	if resource != nil {
		href = resource.Location
		if resource.HasName {
			title = resource.Name
		}
	}

	if err := v.writeString(`<a href="` + escape(href) + `"`); err != nil {
		return err
	}
	if title != "" {
		if err := v.writeString(` title="` + escapeExceptCharRefs(title) + `"`); err != nil {
			return err
		}
	}
	if err := v.writeString(">"); err != nil {
		return err
	}
	if err := v.renderChildren(n); err != nil {
		return err
	}
	return v.writeString("</a>")
}

// renderHTMLTagHeader reconstructs an opening or self-closing raw HTML tag
// from its parsed name and attributes, normalizing every attribute to
// double-quoted form regardless of how it was quoted in the source,
// matching HtmlGenerator's visit(OpeningTag)/visit(EmptyTag) (which build
// the tag from name and attribute list rather than echoing source bytes).
// A bare attribute (no "=value") is emitted bare, not as name="".
func renderHTMLTagHeader(attrs *mdast.HTMLAttrs, selfClosing bool) string {
	var b strings.Builder
	b.WriteString("<")
	b.WriteString(attrs.Name)
	for _, a := range attrs.Attributes {
		b.WriteString(" ")
		b.WriteString(a.Name)
		if a.Value != "" {
			b.WriteString(`="`)
			b.WriteString(a.Value)
			b.WriteString(`"`)
		}
	}
	if selfClosing {
		b.WriteString("/>")
	} else {
		b.WriteString(">")
	}
	return b.String()
}

func unresolvedLinkSyntax(attrs *mdast.LinkAttrs) string {
	if attrs.HasReferenceName {
		return "[" + attrs.Text + "][" + attrs.ReferenceName + "]"
	}
	return "[" + attrs.Text + "][]"
}

// renderImage implements the Image resolution rules: explicit RefID falls
// back to Text, same as Link; a miss emits an empty-src placeholder
// rather than failing.
func (v *visitor) renderImage(n *mdast.Node) error {
	attrs := n.Inline.Image

	var resource *mdast.Resource
	switch {
	case attrs.Resource != nil:
		resource = attrs.Resource
	default:
		id := attrs.Text
		if attrs.HasRefID {
			id = attrs.RefID
		}
		if res, ok := v.refs.Lookup(id); ok {
			resource = res
		} else {
			v.log.Debug("image reference miss", logging.FieldRefID, id)
			if v.strictRefs {
				return fmt.Errorf("%w: %q", ErrUnresolvedReference, id)
			}
		}
	}

	src := ""
	if resource != nil {
		src = resource.Location
	}
	return v.writeString(fmt.Sprintf(`<img src="%s" alt="%s"/>`, escape(src), escapeExceptCharRefs(attrs.Text)))
}
