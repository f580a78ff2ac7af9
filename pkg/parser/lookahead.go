package parser

import (
	"github.com/yaklabco/mdhtml/pkg/mdast"
)

// blockKind is the result of BlockLookahead: which sub-block begins at
// the next non-whitespace token.
type blockKind int

const (
	blockParagraph blockKind = iota
	blockList
	blockCode
)

// cur returns the token at the current cursor without consuming it.
func (p *parser) cur() mdast.Token {
	return p.peek(0)
}

// peek returns the token n positions ahead of the cursor, or the trailing
// TokEOF token if n runs past the end of the stream.
func (p *parser) peek(n int) mdast.Token {
	i := p.pos + n
	if i < 0 || i >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[i]
}

// advance consumes and returns the current token.
func (p *parser) advance() mdast.Token {
	t := p.cur()
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return t
}

func (p *parser) text(t mdast.Token) []byte {
	return t.Text(p.content)
}

func (p *parser) atEOF() bool {
	return p.cur().Kind == mdast.TokEOF
}

// skipSpacesTabs advances past any run of TokSpace/TokTab.
func (p *parser) skipSpacesTabs() {
	for p.cur().Kind == mdast.TokSpace || p.cur().Kind == mdast.TokTab {
		p.advance()
	}
}

// skipSpacesTabsGT advances past SPACE/TAB/EOL/GT, per ItemContinues's
// "skipping any SPACE/TAB/EOL/GT" rule.
func (p *parser) skipSpacesTabsGT() {
	for {
		switch p.cur().Kind {
		case mdast.TokSpace, mdast.TokTab, mdast.TokEOL, mdast.TokGT:
			p.advance()
		default:
			return
		}
	}
}

// column returns the 1-based column of the start of the token at the
// cursor, used by indentation-sensitive predicates.
func (p *parser) column() int {
	_, col := p.file.LineAt(p.cur().StartOffset)
	return col
}

// leadingQuoteMarkers counts '>' tokens (optionally interspersed with a
// single space/tab each) at the current cursor position without
// consuming them, used to compare against quoteDepth.
func (p *parser) leadingQuoteMarkers() int {
	i := p.pos
	count := 0
	for i < len(p.tokens) {
		tok := p.tokens[i]
		switch tok.Kind {
		case mdast.TokGT:
			count++
			i++
			if i < len(p.tokens) && (p.tokens[i].Kind == mdast.TokSpace || p.tokens[i].Kind == mdast.TokTab) {
				i++
			}
		case mdast.TokSpace, mdast.TokTab:
			i++
		default:
			return count
		}
	}
	return count
}

// atLineStart reports whether the cursor sits immediately after an EOL
// (or at the very start of the document).
func (p *parser) atLineStart() bool {
	if p.pos == 0 {
		return true
	}
	return p.tokens[p.pos-1].Kind == mdast.TokEOL
}

// RulerLookahead: from the cursor, the rest of the line is one marker
// character ('*', '-', or '_') repeated at least 3 times, with at most
// two spaces or tabs between consecutive markers, terminated by EOL/EOF.
func (p *parser) RulerLookahead() bool {
	const maxGap = 2
	i := p.pos
	var marker mdast.TokenKind
	count := 0
	gap := 0
	seenMarker := false

	for i < len(p.tokens) {
		tok := p.tokens[i]
		switch tok.Kind {
		case mdast.TokStar, mdast.TokMinus, mdast.TokUnderscore:
			if !seenMarker {
				marker = tok.Kind
				seenMarker = true
			} else if tok.Kind != marker || gap > maxGap {
				return false
			}
			gap = 0
			count++
			i++
		case mdast.TokSpace, mdast.TokTab:
			gap++
			i++
		case mdast.TokEOL, mdast.TokEOF:
			return count >= 3
		default:
			return false
		}
	}
	return count >= 3
}

// BlockLookahead determines which sub-block begins at the cursor,
// skipping SPACE/TAB/GT first (matching "skipping SPACE/TAB/GT" in
// spec), and reports whether that matches expected. The Code threshold
// is relative to the innermost open item's indentation (column 1 when
// no item is open), not a fixed document-absolute column, so a code
// block nests correctly at any list depth: 4 columns past the item's
// own content column, matching the 4-space/tab prefix Code itself
// strips.
func (p *parser) BlockLookahead(expected blockKind) bool {
	i := p.pos
	for i < len(p.tokens) {
		k := p.tokens[i].Kind
		if k == mdast.TokSpace || k == mdast.TokTab || k == mdast.TokGT {
			i++
			continue
		}
		break
	}
	if i >= len(p.tokens) {
		return expected == blockParagraph
	}

	startCol := 1
	if i < len(p.tokens) {
		_, startCol = p.file.LineAt(p.tokens[i].StartOffset)
	}

	tok := p.tokens[i]
	switch tok.Kind {
	case mdast.TokStar, mdast.TokMinus, mdast.TokPlus:
		if i+1 < len(p.tokens) && (p.tokens[i+1].Kind == mdast.TokSpace || p.tokens[i+1].Kind == mdast.TokTab) {
			return expected == blockList
		}
	case mdast.TokDigits:
		if i+1 < len(p.tokens) && p.tokens[i+1].Kind == mdast.TokDot {
			if i+2 < len(p.tokens) && (p.tokens[i+2].Kind == mdast.TokSpace || p.tokens[i+2].Kind == mdast.TokTab) {
				return expected == blockList
			}
		}
	}

	const codeIndentColumns = 4
	itemBaseline := 1
	if item := p.state.currentItem(); item != nil && item.Block != nil && item.Block.Item != nil {
		itemBaseline = item.Block.Item.Indentation
	}
	if startCol >= itemBaseline+codeIndentColumns {
		return expected == blockCode
	}

	return expected == blockParagraph
}

// LineLookahead reports whether the next line, at the current
// blockquote depth, continues the paragraph in progress: it is not
// blank and does not open a new list item in an already-open list.
func (p *parser) LineLookahead() bool {
	i := p.pos
	if p.cur().Kind == mdast.TokEOL {
		i = p.pos + 1
	}

	for i < len(p.tokens) && (p.tokens[i].Kind == mdast.TokSpace || p.tokens[i].Kind == mdast.TokTab) {
		i++
	}

	if i >= len(p.tokens) {
		return false
	}
	if p.tokens[i].Kind == mdast.TokEOL || p.tokens[i].Kind == mdast.TokEOF {
		return false
	}

	quoteMarkers := 0
	j := i
	for j < len(p.tokens) && p.tokens[j].Kind == mdast.TokGT {
		quoteMarkers++
		j++
		if j < len(p.tokens) && (p.tokens[j].Kind == mdast.TokSpace || p.tokens[j].Kind == mdast.TokTab) {
			j++
		}
	}
	if quoteMarkers != p.state.quoteDepth {
		return false
	}

	if len(p.state.lists) > 0 {
		save := p.pos
		p.pos = j
		isNewItem := p.BlockLookahead(blockList)
		p.pos = save
		if isNewItem {
			return false
		}
	}

	return true
}

// CodeLineLookahead reports whether the next line is still inside the
// current code block: blank, or indented >= 4 columns past any open
// blockquote markers at matching depth.
func (p *parser) CodeLineLookahead() bool {
	i := p.pos
	if p.cur().Kind == mdast.TokEOL {
		i = p.pos + 1
	}

	for i < len(p.tokens) && p.tokens[i].Kind == mdast.TokGT {
		i++
		if i < len(p.tokens) && (p.tokens[i].Kind == mdast.TokSpace || p.tokens[i].Kind == mdast.TokTab) {
			i++
		}
	}

	indentStart := i
	for i < len(p.tokens) && (p.tokens[i].Kind == mdast.TokSpace || p.tokens[i].Kind == mdast.TokTab) {
		i++
	}

	if i >= len(p.tokens) {
		return false
	}
	if p.tokens[i].Kind == mdast.TokEOL || p.tokens[i].Kind == mdast.TokEOF {
		return true
	}

	_, startCol := p.file.LineAt(p.tokens[indentStart].StartOffset)
	_, contentCol := p.file.LineAt(p.tokens[i].StartOffset)
	const codeIndentColumns = 4
	return contentCol-startCol >= codeIndentColumns
}

// QuotedElementLookahead reports whether the next line is still inside
// the current quote: its blockquote-marker count is >= the current
// depth.
func (p *parser) QuotedElementLookahead() bool {
	i := p.pos
	if p.cur().Kind == mdast.TokEOL {
		i = p.pos + 1
	}
	count := 0
	for i < len(p.tokens) && p.tokens[i].Kind == mdast.TokGT {
		count++
		i++
		if i < len(p.tokens) && (p.tokens[i].Kind == mdast.TokSpace || p.tokens[i].Kind == mdast.TokTab) {
			i++
		}
	}
	return count >= p.state.quoteDepth
}

// ItemLookahead reports whether, after an EOL, the next non-whitespace
// token opens another item at the current list's indentation column.
func (p *parser) ItemLookahead() bool {
	i := p.pos
	if p.cur().Kind == mdast.TokEOL {
		i = p.pos + 1
	}
	for i < len(p.tokens) && (p.tokens[i].Kind == mdast.TokSpace || p.tokens[i].Kind == mdast.TokTab) {
		i++
	}
	if i >= len(p.tokens) {
		return false
	}

	save := p.pos
	p.pos = i
	isList := p.BlockLookahead(blockList)
	isRuler := p.RulerLookahead()
	p.pos = save

	return isList && !isRuler
}

// ItemContinues reports whether, after an EOL and skipping
// SPACE/TAB/EOL/GT, the following content either sits deeper than the
// current item's indentation at the same blockquote depth, or (after a
// blank line) opens a new marker at the item's own column.
func (p *parser) ItemContinues() bool {
	item := p.state.currentItem()
	if item == nil || item.Block == nil || item.Block.Item == nil {
		return false
	}

	i := p.pos
	if p.cur().Kind == mdast.TokEOL {
		i = p.pos + 1
	}
	for i < len(p.tokens) {
		k := p.tokens[i].Kind
		if k == mdast.TokSpace || k == mdast.TokTab || k == mdast.TokEOL || k == mdast.TokGT {
			i++
			continue
		}
		break
	}
	if i >= len(p.tokens) || p.tokens[i].Kind == mdast.TokEOF {
		return false
	}

	_, col := p.file.LineAt(p.tokens[i].StartOffset)
	if col > item.Block.Item.Indentation {
		return true
	}

	save := p.pos
	p.pos = i
	isNewMarker := p.BlockLookahead(blockList)
	p.pos = save

	return isNewMarker && col == item.Block.Item.Indentation
}

// gapEOLCount peeks ahead from the cursor, skipping SPACE/TAB/EOL/GT
// exactly the way ItemContinues and skipSpacesTabsGT do, and reports how
// many EOL tokens it crossed before the next significant token. Two or
// more means a blank line separates the cursor from that content.
func (p *parser) gapEOLCount() int {
	i := p.pos
	count := 0
	for i < len(p.tokens) {
		switch p.tokens[i].Kind {
		case mdast.TokEOL:
			count++
			i++
		case mdast.TokSpace, mdast.TokTab, mdast.TokGT:
			i++
		default:
			return count
		}
	}
	return count
}

// TextLookahead reports whether the inline scanner should keep consuming
// text at the cursor: within a header, stop before trailing SHARP runs;
// elsewhere accept anything that is not EOL/EOF.
func (p *parser) TextLookahead(inHeader bool) bool {
	if p.cur().Kind == mdast.TokEOL || p.cur().Kind == mdast.TokEOF {
		return false
	}
	if inHeader && p.atTrailingSharpRun() {
		return false
	}
	return true
}

// atTrailingSharpRun reports whether the cursor sits at a run of SHARP
// tokens (optionally followed by spaces) that runs to EOL/EOF — the ATX
// header's optional closing sequence.
func (p *parser) atTrailingSharpRun() bool {
	if p.cur().Kind != mdast.TokSharp {
		return false
	}
	i := p.pos
	for i < len(p.tokens) && p.tokens[i].Kind == mdast.TokSharp {
		i++
	}
	for i < len(p.tokens) && (p.tokens[i].Kind == mdast.TokSpace || p.tokens[i].Kind == mdast.TokTab) {
		i++
	}
	return i >= len(p.tokens) || p.tokens[i].Kind == mdast.TokEOL || p.tokens[i].Kind == mdast.TokEOF
}

// QuoteInsideTitleLookahead reports whether a matching closing quote for
// a link/image title exists before a RPAREN/EOL/EOF, disambiguating a
// literal quote character appearing inside the title from its delimiter.
func (p *parser) QuoteInsideTitleLookahead(quoteKind mdast.TokenKind) bool {
	i := p.pos
	for i < len(p.tokens) {
		k := p.tokens[i].Kind
		if k == quoteKind {
			return true
		}
		if k == mdast.TokRParen || k == mdast.TokEOL || k == mdast.TokEOF {
			return false
		}
		i++
	}
	return false
}
