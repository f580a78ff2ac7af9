package parser

import (
	"github.com/yaklabco/mdhtml/pkg/mdast"
)

// parseInlineElement appends exactly one inline construct to line, trying
// productions in the priority order the Line grammar specifies: char
// refs, code spans, links, images, bare URLs, emphasis, hard line
// breaks, raw HTML tags, falling back to plain text.
func (p *parser) parseInlineElement(line *mdast.Node, inHeader bool) error {
	switch p.cur().Kind {
	case mdast.TokCharEntityRef, mdast.TokNumericCharRef:
		p.parseCharRef(line)
		return nil
	case mdast.TokEscapedChar:
		p.parseEscapedChar(line)
		return nil
	case mdast.TokBacktick:
		p.parseCodeSpan(line)
		return nil
	case mdast.TokBang:
		if p.peek(1).Kind == mdast.TokLBracket {
			return p.parseImage(line)
		}
		p.consumeAsText(line)
		return nil
	case mdast.TokLBracket:
		return p.parseLink(line)
	case mdast.TokStar, mdast.TokUnderscore:
		if ok, err := p.tryParseEmphasis(line); ok || err != nil {
			return err
		}
		p.consumeAsText(line)
		return nil
	case mdast.TokLT:
		if p.tryParseInlineURL(line) {
			return nil
		}
		if p.tryParseInlineTag(line) {
			return nil
		}
		p.consumeAsText(line)
		return nil
	case mdast.TokSpace:
		if p.tryParseLineBreak(line) {
			return nil
		}
		p.consumeAsText(line)
		return nil
	default:
		p.consumeAsText(line)
		return nil
	}
}

// consumeAsText appends one token's worth of literal text to line,
// coalescing into the previous Text sibling when possible.
func (p *parser) consumeAsText(line *mdast.Node) {
	tok := p.advance()
	p.appendText(line, string(p.text(tok)))
}

// appendText appends s as text content, merging into a trailing NodeText
// sibling so adjacent literal runs don't fragment into many nodes.
func (p *parser) appendText(line *mdast.Node, s string) {
	if s == "" {
		return
	}
	if last := line.LastChild; last != nil && last.Kind == mdast.NodeText {
		last.Inline.Text += s
		return
	}
	text := mdast.NewNode(mdast.NodeText)
	text.Inline = mdast.NewInlineAttrs().WithText(s)
	mdast.AppendChild(line, text)
}

// parseCharRef implements CharRef := CHAR_ENTITY_REF | NUMERIC_CHAR_REF,
// preserved verbatim for the visitor to re-emit unescaped.
func (p *parser) parseCharRef(line *mdast.Node) {
	tok := p.advance()
	node := mdast.NewNode(mdast.NodeCharRef)
	node.Inline = mdast.NewInlineAttrs().WithText(string(p.text(tok)))
	mdast.AppendChild(line, node)
}

// parseEscapedChar implements the escape rule: a backslash followed by an
// escapable punctuation character renders as the literal character.
func (p *parser) parseEscapedChar(line *mdast.Node) {
	tok := p.advance()
	text := p.text(tok)
	literal := ""
	if len(text) == 2 {
		literal = string(text[1])
	}
	p.appendText(line, literal)
}

// parseCodeSpan implements CodeSpan := BACKTICK+ (non-matching-run)*
// matching-BACKTICK+, where the opening and closing delimiters must have
// the same backtick count.
func (p *parser) parseCodeSpan(line *mdast.Node) {
	save := p.pos
	openCount := 0
	for p.cur().Kind == mdast.TokBacktick {
		p.advance()
		openCount++
	}

	start := p.pos
	for {
		if p.atEOF() || p.cur().Kind == mdast.TokEOL {
			p.pos = save
			p.consumeAsText(line)
			return
		}
		if p.cur().Kind == mdast.TokBacktick {
			closeStart := p.pos
			closeCount := 0
			for p.cur().Kind == mdast.TokBacktick {
				p.advance()
				closeCount++
			}
			if closeCount == openCount {
				text := string(p.rawRange(start, closeStart))
				node := mdast.NewNode(mdast.NodeCodeSpan)
				node.Inline = mdast.NewInlineAttrs().WithText(text)
				mdast.AppendChild(line, node)
				return
			}
			continue
		}
		p.advance()
	}
}

// tryParseLineBreak implements LineBreak := two-or-more trailing SPACE
// tokens immediately before EOL.
func (p *parser) tryParseLineBreak(line *mdast.Node) bool {
	i := p.pos
	count := 0
	for i < len(p.tokens) && p.tokens[i].Kind == mdast.TokSpace {
		count++
		i++
	}
	if count < 2 || i >= len(p.tokens) || p.tokens[i].Kind != mdast.TokEOL {
		return false
	}
	p.pos = i
	mdast.AppendChild(line, mdast.NewNode(mdast.NodeLineBreak))
	return true
}

// tryParseInlineURL implements InlineURL := '<' scheme ':' non-space-run
// '>', a bare autolink.
func (p *parser) tryParseInlineURL(line *mdast.Node) bool {
	save := p.pos
	p.advance() // '<'

	start := p.pos
	sawColon := false
	for {
		k := p.cur().Kind
		if k == mdast.TokColon {
			sawColon = true
			p.advance()
			break
		}
		if k == mdast.TokSpace || k == mdast.TokTab || k == mdast.TokEOL || k == mdast.TokEOF || k == mdast.TokGT {
			break
		}
		p.advance()
	}
	if !sawColon {
		p.pos = save
		return false
	}

	for {
		k := p.cur().Kind
		if k == mdast.TokSpace || k == mdast.TokTab || k == mdast.TokEOL || k == mdast.TokEOF {
			p.pos = save
			return false
		}
		if k == mdast.TokGT {
			break
		}
		p.advance()
	}

	url := string(p.rawRange(start, p.pos))
	p.advance() // '>'

	node := mdast.NewNode(mdast.NodeInlineURL)
	node.Inline = mdast.NewInlineAttrs()
	node.Inline.URL = url
	mdast.AppendChild(line, node)
	return true
}
