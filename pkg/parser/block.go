package parser

import (
	"github.com/yaklabco/mdhtml/pkg/mdast"
)

// parseBlockElement implements the context-dependent BlockElement choice.
func (p *parser) parseBlockElement() (*mdast.Node, error) {
	if p.cur().Kind == mdast.TokEOL {
		p.advance()
		return nil, nil
	}

	if p.BlockLookahead(blockCode) {
		return p.parseCode()
	}

	save := p.pos
	p.skipSpacesTabs()

	switch {
	case p.cur().Kind == mdast.TokGT:
		return p.parseQuote()
	case p.RulerLookahead():
		return p.parseRuler()
	case p.cur().Kind == mdast.TokSharp:
		return p.parseATXHeader()
	case p.cur().Kind == mdast.TokCommentOpen:
		return p.parseComment()
	case p.cur().Kind == mdast.TokLT:
		if tag := p.tryParseHTMLBlock(); tag != nil {
			return tag, nil
		}
	case p.BlockLookahead(blockList):
		return p.parseList()
	}

	p.pos = save
	if node, ok := p.trySetextHeader(); ok {
		return node, nil
	}

	return p.parseParagraph()
}

// parseRuler implements Ruler := RulerLookahead rest-of-line.
func (p *parser) parseRuler() (*mdast.Node, error) {
	for p.cur().Kind != mdast.TokEOL && p.cur().Kind != mdast.TokEOF {
		p.advance()
	}
	return mdast.NewNode(mdast.NodeRuler), nil
}

// parseATXHeader implements the ATX form: 1-6 '#' prefix, optional
// trailing '#' run, inline content between.
func (p *parser) parseATXHeader() (*mdast.Node, error) {
	level := 0
	for p.cur().Kind == mdast.TokSharp && level < 6 {
		p.advance()
		level++
	}
	for p.cur().Kind == mdast.TokSharp {
		p.advance()
		level = 6
	}
	p.skipSpacesTabs()

	header := mdast.NewNode(mdast.NodeHeader)
	header.Block = mdast.NewBlockAttrs().WithHeaderLevel(level)

	line, err := p.parseHeaderLine()
	if err != nil {
		return nil, err
	}
	mdast.AppendChild(header, line)

	return header, nil
}

// trySetextHeader implements the Setext form: a text line followed by a
// line of all '=' (level 1) or all '-' (level 2).
func (p *parser) trySetextHeader() (*mdast.Node, bool) {
	save := p.pos

	lineStart := p.pos
	for p.cur().Kind != mdast.TokEOL && p.cur().Kind != mdast.TokEOF {
		p.advance()
	}
	if p.pos == lineStart {
		p.pos = save
		return nil, false
	}
	textEnd := p.pos

	if p.cur().Kind != mdast.TokEOL {
		p.pos = save
		return nil, false
	}
	p.advance() // EOL

	var marker mdast.TokenKind
	count := 0
	for {
		k := p.cur().Kind
		if k == mdast.TokEq || k == mdast.TokMinus {
			if count == 0 {
				marker = k
			} else if k != marker {
				p.pos = save
				return nil, false
			}
			count++
			p.advance()
			continue
		}
		break
	}
	for p.cur().Kind == mdast.TokSpace || p.cur().Kind == mdast.TokTab {
		p.advance()
	}
	if count == 0 || (p.cur().Kind != mdast.TokEOL && p.cur().Kind != mdast.TokEOF) {
		p.pos = save
		return nil, false
	}

	level := 2
	if marker == mdast.TokEq {
		level = 1
	}

	header := mdast.NewNode(mdast.NodeHeader)
	header.Block = mdast.NewBlockAttrs().WithHeaderLevel(level)

	line := mdast.NewNode(mdast.NodeLine)
	p.parseInlineRange(line, lineStart, textEnd, false)
	mdast.AppendChild(header, line)

	return header, true
}

// parseHeaderLine parses one inline-content line, stopping before a
// trailing SHARP run (TextLookahead with inHeader=true).
func (p *parser) parseHeaderLine() (*mdast.Node, error) {
	line := mdast.NewNode(mdast.NodeLine)
	for p.TextLookahead(true) {
		if err := p.parseInlineElement(line, true); err != nil {
			return nil, err
		}
	}
	for p.cur().Kind == mdast.TokSharp {
		p.advance()
	}
	for p.cur().Kind == mdast.TokSpace || p.cur().Kind == mdast.TokTab {
		p.advance()
	}
	return line, nil
}

// parseComment implements Comment := COMMENT_OPEN ... COMMENT_CLOSE,
// which may span lines.
func (p *parser) parseComment() (*mdast.Node, error) {
	p.advance() // COMMENT_OPEN
	start := p.pos
	for p.cur().Kind != mdast.TokCommentClose && p.cur().Kind != mdast.TokEOF {
		p.advance()
	}
	text := string(p.rawRange(start, p.pos))
	if p.cur().Kind == mdast.TokCommentClose {
		p.advance()
	}
	for p.cur().Kind != mdast.TokEOL && p.cur().Kind != mdast.TokEOF {
		p.advance()
	}

	node := mdast.NewNode(mdast.NodeComment)
	node.Block = mdast.NewBlockAttrs()
	node.Block.Comment = &mdast.CommentAttrs{Text: text}
	return node, nil
}

// parseQuote implements Quote := '>' SPACE? BlockElement*, recursing at
// depth+1; currentQuoteLevel is incremented on entry, decremented on
// exit.
func (p *parser) parseQuote() (*mdast.Node, error) {
	quote := mdast.NewNode(mdast.NodeQuote)
	p.state.pushQuote(quote)
	defer p.state.popQuote()

	for {
		p.advance() // '>'
		if p.cur().Kind == mdast.TokSpace {
			p.advance()
		}

		child, err := p.parseBlockElement()
		if err != nil {
			return nil, err
		}
		if child != nil {
			mdast.AppendChild(quote, child)
		}

		for p.cur().Kind == mdast.TokEOL {
			p.advance()
		}

		if !p.QuotedElementLookahead() || p.atEOF() {
			break
		}
		if p.cur().Kind != mdast.TokGT {
			break
		}
	}

	return quote, nil
}

// parseCode implements Code := CodeLine+ (blank lines preserved).
func (p *parser) parseCode() (*mdast.Node, error) {
	code := mdast.NewNode(mdast.NodeCode)
	code.Block = mdast.NewBlockAttrs()
	code.Block.Code = &mdast.CodeAttrs{}

	var lines [][]byte

	for {
		p.skipLeadingQuoteMarkers()
		p.consumeCodeIndent()

		lineStart := p.pos
		for p.cur().Kind != mdast.TokEOL && p.cur().Kind != mdast.TokEOF {
			p.advance()
		}
		lines = append(lines, expandCodeLineTabs(p.rawRange(lineStart, p.pos), p.tabWidth()))

		if p.atEOF() || !p.CodeLineLookahead() {
			break
		}
		p.advance() // EOL
	}

	text := joinLines(lines)
	textNode := mdast.NewNode(mdast.NodeCodeText)
	textNode.Inline = mdast.NewInlineAttrs().WithText(string(text))
	mdast.AppendChild(code, textNode)

	return code, nil
}

// expandCodeLineTabs rewrites tab bytes in a code line's kept content
// (after its 4-space/tab indent prefix has been stripped) into literal
// space runs, per spec.md §4.1's effective-width formula. Column
// tracking restarts at 1 for each line: a CodeText line renders
// independently of whatever column it sat at in the source.
func expandCodeLineTabs(line []byte, tabWidth int) []byte {
	hasTab := false
	for _, b := range line {
		if b == '\t' {
			hasTab = true
			break
		}
	}
	if !hasTab {
		return line
	}

	out := make([]byte, 0, len(line))
	col := 1
	for _, b := range line {
		if b != '\t' {
			out = append(out, b)
			col++
			continue
		}
		width := mdast.TabStopWidth(col, tabWidth)
		for i := 0; i < width; i++ {
			out = append(out, ' ')
		}
		col += width
	}
	return out
}

func joinLines(lines [][]byte) []byte {
	var out []byte
	for i, l := range lines {
		if i > 0 {
			out = append(out, '\n')
		}
		out = append(out, l...)
	}
	return out
}

// skipLeadingQuoteMarkers consumes '>' prefixes up to the current
// blockquote depth, mirroring how a quoted code block's lines are
// reached after stripping the quote markers.
func (p *parser) skipLeadingQuoteMarkers() {
	for i := 0; i < p.state.quoteDepth && p.cur().Kind == mdast.TokGT; i++ {
		p.advance()
		if p.cur().Kind == mdast.TokSpace {
			p.advance()
		}
	}
}

// consumeCodeIndent strips a 4-space or one-tab prefix from the current
// line.
func (p *parser) consumeCodeIndent() {
	if p.cur().Kind == mdast.TokTab {
		p.advance()
		return
	}
	const codeIndentColumns = 4
	for i := 0; i < codeIndentColumns && p.cur().Kind == mdast.TokSpace; i++ {
		p.advance()
	}
}

// parseParagraph implements Paragraph := Line (EOL Line)*, continuation
// governed by LineLookahead.
func (p *parser) parseParagraph() (*mdast.Node, error) {
	para := mdast.NewNode(mdast.NodeParagraph)

	for {
		line, err := p.parseLine()
		if err != nil {
			return nil, err
		}
		mdast.AppendChild(para, line)

		if p.cur().Kind != mdast.TokEOL {
			break
		}
		if !p.LineLookahead() {
			break
		}
		p.advance() // EOL
		p.skipLeadingQuoteMarkers()
	}

	return para, nil
}

// parseLine implements Line := inline-element*, terminated by EOL/EOF.
func (p *parser) parseLine() (*mdast.Node, error) {
	line := mdast.NewNode(mdast.NodeLine)
	for p.TextLookahead(false) {
		if err := p.parseInlineElement(line, false); err != nil {
			return nil, err
		}
	}
	return line, nil
}

// parseInlineRange parses tokens in [from, to) as one Line's worth of
// inline content, used by the Setext header path where the text line
// was already scanned past.
func (p *parser) parseInlineRange(line *mdast.Node, from, to int, inHeader bool) {
	resume := p.pos
	p.pos = from
	for p.pos < to {
		if err := p.parseInlineElement(line, inHeader); err != nil {
			break
		}
	}
	p.pos = resume
}
