package parser

import (
	"bytes"

	"github.com/yaklabco/mdhtml/pkg/mdast"
)

// tryParseInlineTag implements Tag := '<' '/'? NAME Attribute* '/'? '>',
// recognized wherever raw HTML is allowed to pass through inline.
func (p *parser) tryParseInlineTag(line *mdast.Node) bool {
	save := p.pos
	node, ok := p.parseHTMLTagHeader()
	if !ok {
		p.pos = save
		return false
	}
	node.HTML.Raw = string(p.rawRange(save, p.pos))
	mdast.AppendChild(line, node)
	return true
}

// tryParseHTMLBlock recognizes a block beginning with a raw HTML tag. The
// whole block, up to the next blank line or EOF, is kept verbatim in
// HTMLAttrs.Raw; Balanced reports whether a matching closing tag for the
// opening tag's name was found anywhere in that span, which is the
// visitor's signal for whether to trust the parsed Attributes or fall
// back to re-emitting Raw untouched.
func (p *parser) tryParseHTMLBlock() *mdast.Node {
	save := p.pos
	if p.tryParseInlineURL(mdast.NewNode(mdast.NodeLine)) {
		// An autolink such as <http://x> is paragraph content, not a tag.
		p.pos = save
		return nil
	}
	node, ok := p.parseHTMLTagHeader()
	if !ok {
		p.pos = save
		return nil
	}

	for !p.atEOF() {
		if p.cur().Kind == mdast.TokEOL {
			next := p.peek(1)
			if next.Kind == mdast.TokEOL || next.Kind == mdast.TokEOF {
				p.advance()
				break
			}
		}
		p.advance()
	}

	raw := p.rawRange(save, p.pos)
	node.HTML.Raw = string(raw)
	if node.Kind == mdast.NodeOpeningTag {
		node.HTML.Balanced = bytes.Contains(raw, []byte("</"+node.HTML.Name))
	}
	return node
}

// parseHTMLTagHeader parses one '<' ... '>' tag and classifies it as an
// OpeningTag, ClosingTag, or EmptyTag based on the leading '/' or
// trailing '/' before '>'. Leaves the cursor unmoved and returns false on
// any structural mismatch (no closing '>' before EOL/EOF).
func (p *parser) parseHTMLTagHeader() (*mdast.Node, bool) {
	save := p.pos
	if p.cur().Kind != mdast.TokLT {
		return nil, false
	}
	p.advance() // '<'

	closing := false
	if p.cur().Kind == mdast.TokSlash {
		closing = true
		p.advance()
	}

	if p.cur().Kind != mdast.TokCharSequence {
		p.pos = save
		return nil, false
	}
	nameStart := p.pos
	for p.cur().Kind == mdast.TokCharSequence || p.cur().Kind == mdast.TokDigits || p.cur().Kind == mdast.TokMinus {
		p.advance()
	}
	name := string(p.rawRange(nameStart, p.pos))

	var attrs []mdast.Attribute
	selfClosing := false
	for {
		switch p.cur().Kind {
		case mdast.TokGT:
			p.advance()
			kind := mdast.NodeOpeningTag
			switch {
			case closing:
				kind = mdast.NodeClosingTag
			case selfClosing:
				kind = mdast.NodeEmptyTag
			}
			node := mdast.NewNode(kind)
			node.HTML = &mdast.HTMLAttrs{Name: name, Attributes: attrs}
			return node, true
		case mdast.TokSlash:
			p.advance()
			selfClosing = true
		case mdast.TokSpace, mdast.TokTab:
			p.advance()
		case mdast.TokEOL, mdast.TokEOF:
			p.pos = save
			return nil, false
		case mdast.TokCharSequence:
			attr, ok := p.parseHTMLAttribute()
			if !ok {
				p.pos = save
				return nil, false
			}
			attrs = append(attrs, attr)
		default:
			p.advance()
		}
	}
}

// parseHTMLAttribute implements NAME ('=' (QuotedString | bare-token))?.
func (p *parser) parseHTMLAttribute() (mdast.Attribute, bool) {
	nameStart := p.pos
	for p.cur().Kind == mdast.TokCharSequence || p.cur().Kind == mdast.TokDigits || p.cur().Kind == mdast.TokMinus {
		p.advance()
	}
	name := string(p.rawRange(nameStart, p.pos))

	if p.cur().Kind != mdast.TokEq {
		return mdast.Attribute{Name: name}, true
	}
	p.advance() // '='

	switch p.cur().Kind {
	case mdast.TokDoubleQuote, mdast.TokSingleQuote:
		quote := p.cur().Kind
		p.advance()
		start := p.pos
		for p.cur().Kind != quote && p.cur().Kind != mdast.TokEOL && p.cur().Kind != mdast.TokEOF {
			p.advance()
		}
		value := string(p.rawRange(start, p.pos))
		if p.cur().Kind != quote {
			return mdast.Attribute{}, false
		}
		p.advance()
		return mdast.Attribute{Name: name, Value: value}, true
	default:
		start := p.pos
		for {
			k := p.cur().Kind
			if k == mdast.TokSpace || k == mdast.TokTab || k == mdast.TokGT || k == mdast.TokEOL || k == mdast.TokEOF {
				break
			}
			p.advance()
		}
		return mdast.Attribute{Name: name, Value: string(p.rawRange(start, p.pos))}, true
	}
}
