package parser

import (
	"github.com/yaklabco/mdhtml/pkg/mdast"
)

// tryParseEmphasis implements Emphasis := delim{1,3} CHAR_SEQUENCE-run
// delim{matching-count}, where delim is '*' or '_'. One delimiter means
// italic, two means bold, three means both; the content between
// delimiters is a flat literal string, never re-entered for nested
// inline parsing (see EmphasisAttrs).
func (p *parser) tryParseEmphasis(line *mdast.Node) (bool, error) {
	save := p.pos
	marker := p.cur().Kind

	openCount := 0
	for p.cur().Kind == marker && openCount < 3 {
		p.advance()
		openCount++
	}
	if openCount == 0 {
		p.pos = save
		return false, nil
	}

	if p.cur().Kind == mdast.TokSpace || p.cur().Kind == mdast.TokEOL || p.cur().Kind == mdast.TokEOF {
		p.pos = save
		return false, nil
	}

	contentStart := p.pos
	for {
		if p.atEOF() || p.cur().Kind == mdast.TokEOL {
			p.pos = save
			return false, nil
		}
		if p.cur().Kind == marker {
			closeStart := p.pos
			closeCount := 0
			for p.cur().Kind == marker {
				p.advance()
				closeCount++
			}
			if closeCount == openCount {
				text := string(p.rawRange(contentStart, closeStart))
				node := mdast.NewNode(mdast.NodeEmphasis)
				node.Inline = mdast.NewInlineAttrs().WithEmphasis(&mdast.EmphasisAttrs{
					Type: emphasisType(openCount),
					Text: text,
				})
				mdast.AppendChild(line, node)
				return true, nil
			}
			continue
		}
		p.advance()
	}
}

func emphasisType(delimiterCount int) mdast.EmphasisType {
	switch delimiterCount {
	case 1:
		return mdast.EmphasisItalic
	case 2:
		return mdast.EmphasisBold
	default:
		return mdast.EmphasisItalicAndBold
	}
}
