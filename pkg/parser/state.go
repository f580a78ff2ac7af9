package parser

import (
	"github.com/yaklabco/mdhtml/pkg/mdast"
)

// parserState holds the stacks of currently-open block contexts and the
// depth counters the lookahead predicates consult. It is owned by a
// single parser invocation and never shared across Parse calls.
type parserState struct {
	// quotes, lists, items mirror spec.md's "stacks of
	// currently-open block contexts"; since Go's garbage collector keeps
	// a *mdast.Node alive for as long as anything references it, the
	// node pushed here and the node later attached to the tree are
	// literally the same pointer — no arena/handle indirection needed.
	quotes []*mdast.Node
	lists  []*mdast.Node
	items  []*mdast.Node

	quoteDepth   int
	parenDepth   int
	bracketDepth int
}

func newParserState() *parserState {
	return &parserState{}
}

func (s *parserState) pushQuote(n *mdast.Node) {
	s.quotes = append(s.quotes, n)
	s.quoteDepth++
}

func (s *parserState) popQuote() {
	if len(s.quotes) == 0 {
		return
	}
	s.quotes = s.quotes[:len(s.quotes)-1]
	s.quoteDepth--
}

func (s *parserState) currentList() *mdast.Node {
	if len(s.lists) == 0 {
		return nil
	}
	return s.lists[len(s.lists)-1]
}

func (s *parserState) pushList(n *mdast.Node) {
	s.lists = append(s.lists, n)
}

func (s *parserState) popList() {
	if len(s.lists) == 0 {
		return
	}
	s.lists = s.lists[:len(s.lists)-1]
}

func (s *parserState) currentItem() *mdast.Node {
	if len(s.items) == 0 {
		return nil
	}
	return s.items[len(s.items)-1]
}

func (s *parserState) pushItem(n *mdast.Node) {
	s.items = append(s.items, n)
}

func (s *parserState) popItem() {
	if len(s.items) == 0 {
		return
	}
	s.items = s.items[:len(s.items)-1]
}
