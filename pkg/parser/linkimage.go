package parser

import (
	"bytes"

	"github.com/yaklabco/mdhtml/pkg/mdast"
)

// parseLink implements Link := '[' Text ']' ( '(' URL Title? ')' | '[' ID? ']' ).
// An empty explicit id ("[]") or the bare "[Text]" form both resolve
// against Text itself at render time; only the inline '(' url ')' form
// carries its own Resource.
func (p *parser) parseLink(line *mdast.Node) error {
	save := p.pos
	p.advance() // '['

	text, hasWhitespace, textStart, textEnd, ok := p.scanBracketedText()
	if !ok {
		p.pos = save
		p.consumeAsText(line)
		return nil
	}

	attrs := &mdast.LinkAttrs{Text: text, HasWhitespaceAtMiddle: hasWhitespace}

	switch p.cur().Kind {
	case mdast.TokLParen:
		resource, err := p.parseInlineResource()
		if err != nil {
			return err
		}
		attrs.Resource = resource
	case mdast.TokLBracket:
		p.advance() // '['
		id, _, _, _, ok := p.scanBracketedText()
		if !ok {
			p.pos = save
			p.consumeAsText(line)
			return nil
		}
		attrs.Referenced = true
		if id != "" {
			attrs.ReferenceName = id
			attrs.HasReferenceName = true
		}
	default:
		attrs.Referenced = true
	}

	node := mdast.NewNode(mdast.NodeLink)
	node.Inline = mdast.NewInlineAttrs().WithLink(attrs)
	p.parseInlineRange(node, textStart, textEnd, false)
	mdast.AppendChild(line, node)
	return nil
}

// parseImage implements Image := '!' Link-shape, producing alt text and
// either an inline Resource or a reference id.
func (p *parser) parseImage(line *mdast.Node) error {
	save := p.pos
	p.advance() // '!'
	p.advance() // '['

	text, _, _, _, ok := p.scanBracketedText()
	if !ok {
		p.pos = save
		p.consumeAsText(line)
		return nil
	}

	attrs := &mdast.ImageAttrs{Text: text}

	switch p.cur().Kind {
	case mdast.TokLParen:
		resource, err := p.parseInlineResource()
		if err != nil {
			return err
		}
		attrs.Resource = resource
	case mdast.TokLBracket:
		p.advance() // '['
		id, _, _, _, ok := p.scanBracketedText()
		if !ok {
			p.pos = save
			p.consumeAsText(line)
			return nil
		}
		if id != "" {
			attrs.RefID = id
			attrs.HasRefID = true
		}
	}

	node := mdast.NewNode(mdast.NodeImage)
	node.Inline = mdast.NewInlineAttrs().WithImage(attrs)
	mdast.AppendChild(line, node)
	return nil
}

// scanBracketedText consumes up to and including a matching ']',
// returning the raw text between the brackets along with the token range
// [start, end) it spans, so a caller can re-parse that range as real
// inline content instead of treating it as an opaque string. Reports
// false if no closing bracket is found before EOL/EOF.
func (p *parser) scanBracketedText() (text string, hasWhitespace bool, start, end int, ok bool) {
	start = p.pos
	depth := 1
	for {
		switch p.cur().Kind {
		case mdast.TokLBracket:
			depth++
			p.advance()
		case mdast.TokRBracket:
			depth--
			if depth == 0 {
				end = p.pos
				raw := p.rawRange(start, end)
				p.advance() // ']'
				return string(raw), bytes.ContainsAny(raw, " \t"), start, end, true
			}
			p.advance()
		case mdast.TokEOL, mdast.TokEOF:
			return "", false, 0, 0, false
		default:
			p.advance()
		}
	}
}

// parseInlineResource implements '(' URL (SPACE Title)? ')', the direct
// (non-reference) form of a Link or Image target.
func (p *parser) parseInlineResource() (*mdast.Resource, error) {
	p.advance() // '('
	p.skipSpacesTabs()

	urlStart := p.pos
	for {
		k := p.cur().Kind
		if k == mdast.TokSpace || k == mdast.TokTab || k == mdast.TokRParen || k == mdast.TokEOL || k == mdast.TokEOF {
			break
		}
		p.advance()
	}
	location := string(p.rawRange(urlStart, p.pos))

	p.skipSpacesTabs()

	name := ""
	hasName := false
	switch p.cur().Kind {
	case mdast.TokDoubleQuote, mdast.TokSingleQuote:
		quote := p.cur().Kind
		if p.QuoteInsideTitleLookahead(quote) {
			p.advance()
			nameStart := p.pos
			for p.cur().Kind != quote && p.cur().Kind != mdast.TokEOL && p.cur().Kind != mdast.TokEOF {
				p.advance()
			}
			name = string(p.rawRange(nameStart, p.pos))
			hasName = true
			if p.cur().Kind == quote {
				p.advance()
			} else {
				line, col := p.file.LineAt(p.tokens[nameStart].StartOffset)
				return nil, newParseError(line, col, "unterminated title", ErrUnterminatedQuote)
			}
		}
	}

	p.skipSpacesTabs()
	if p.cur().Kind == mdast.TokRParen {
		p.advance()
	}

	return &mdast.Resource{Location: location, Name: name, HasName: hasName}, nil
}
