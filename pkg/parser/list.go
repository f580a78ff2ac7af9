package parser

import (
	"github.com/yaklabco/mdhtml/pkg/mdast"
)

// parseList implements List := Item+, where every item shares the first
// item's marker kind (ordered vs. unordered) and indentation column. A
// blank line anywhere between two items, or inside a single item's own
// body (detected in parseItem), makes the whole list loose, which wraps
// every item's paragraph content in <p> at render time.
func (p *parser) parseList() (*mdast.Node, error) {
	list := mdast.NewNode(mdast.NodeList)

	ordered, indentation := p.listMarkerShape()
	list.Block = mdast.NewBlockAttrs().WithList(&mdast.ListAttrs{
		Ordered:     ordered,
		Indentation: indentation,
	})
	p.state.pushList(list)
	defer p.state.popList()

	loose := false
	for {
		item, err := p.parseItem(ordered, indentation)
		if err != nil {
			return nil, err
		}
		mdast.AppendChild(list, item)

		if item.Block.Item.Loose {
			loose = true
		}

		gapEOLs := 0
		for p.cur().Kind == mdast.TokEOL {
			gapEOLs++
			p.advance()
		}
		if gapEOLs > 1 {
			loose = true
		}

		if p.atEOF() || !p.ItemLookahead() {
			break
		}
	}

	if loose {
		for item := list.FirstChild; item != nil; item = item.Next {
			if item.Block != nil && item.Block.Item != nil {
				item.Block.Item.Loose = true
			}
		}
	}

	return list, nil
}

// listMarkerShape inspects the upcoming marker, without consuming it, to
// decide whether the list is ordered and what column its items begin at.
func (p *parser) listMarkerShape() (ordered bool, indentation int) {
	i := p.pos
	for i < len(p.tokens) && (p.tokens[i].Kind == mdast.TokSpace || p.tokens[i].Kind == mdast.TokTab) {
		i++
	}
	if i >= len(p.tokens) {
		return false, 1
	}

	_, col := p.file.LineAt(p.tokens[i].StartOffset)

	if p.tokens[i].Kind == mdast.TokDigits {
		markerLen := len(p.text(p.tokens[i])) + 1 // digits + '.'
		return true, col + markerLen + 1
	}

	return false, col + 2 // marker byte + one space
}

// parseItem implements Item := marker SPACE BlockElement (BlockElement |
// continuation-line)*, governed by ItemContinues.
func (p *parser) parseItem(ordered bool, indentation int) (*mdast.Node, error) {
	item := mdast.NewNode(mdast.NodeItem)
	item.Block = mdast.NewBlockAttrs().WithItem(&mdast.ItemAttrs{
		Indentation: indentation,
		Ordered:     ordered,
	})
	p.state.pushItem(item)
	defer p.state.popItem()

	p.consumeItemMarker()

	for {
		child, err := p.parseBlockElement()
		if err != nil {
			return nil, err
		}
		if child != nil {
			mdast.AppendChild(item, child)
		}

		if !p.ItemContinues() {
			break
		}
		if p.gapEOLCount() > 1 {
			item.Block.Item.Loose = true
		}
		p.skipSpacesTabsGT()
	}

	return item, nil
}

// consumeItemMarker advances past the leading indentation, the marker
// itself (bullet or "digits."), and the single space that follows it.
func (p *parser) consumeItemMarker() {
	p.skipSpacesTabs()
	switch p.cur().Kind {
	case mdast.TokStar, mdast.TokMinus, mdast.TokPlus:
		p.advance()
	case mdast.TokDigits:
		p.advance()
		if p.cur().Kind == mdast.TokDot {
			p.advance()
		}
	}
	if p.cur().Kind == mdast.TokSpace || p.cur().Kind == mdast.TokTab {
		p.advance()
	}
}
