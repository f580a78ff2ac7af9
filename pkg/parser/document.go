package parser

import (
	"github.com/yaklabco/mdhtml/pkg/mdast"
)

// parseDocument implements Document := (Element (EOL+ Element)*)? EOF.
func (p *parser) parseDocument() (*mdast.Node, error) {
	doc := mdast.NewDocument()

	for !p.atEOF() {
		for p.cur().Kind == mdast.TokEOL {
			p.advance()
		}
		if p.atEOF() {
			break
		}

		child, err := p.parseElement()
		if err != nil {
			return nil, err
		}
		if child != nil {
			mdast.AppendChild(doc, child)
		}
	}

	return doc, nil
}

// parseElement implements Element := ResourceDefinition | BlockElement.
func (p *parser) parseElement() (*mdast.Node, error) {
	if p.atLineStart() && p.looksLikeResourceDefinition() {
		return p.parseResourceDefinition()
	}
	return p.parseBlockElement()
}

// looksLikeResourceDefinition recognizes "[id]:" at line start with
// optional indent up to 3 spaces, without consuming anything.
func (p *parser) looksLikeResourceDefinition() bool {
	i := p.pos
	spaces := 0
	for i < len(p.tokens) && (p.tokens[i].Kind == mdast.TokSpace || p.tokens[i].Kind == mdast.TokTab) {
		spaces++
		i++
	}
	if spaces > 3 {
		return false
	}
	if i >= len(p.tokens) || p.tokens[i].Kind != mdast.TokLBracket {
		return false
	}
	i++
	for i < len(p.tokens) && p.tokens[i].Kind != mdast.TokRBracket {
		if p.tokens[i].Kind == mdast.TokEOL || p.tokens[i].Kind == mdast.TokEOF {
			return false
		}
		i++
	}
	if i >= len(p.tokens) || p.tokens[i].Kind != mdast.TokRBracket {
		return false
	}
	i++
	return i < len(p.tokens) && p.tokens[i].Kind == mdast.TokColon
}

// parseResourceDefinition implements "[id]: url [title]".
func (p *parser) parseResourceDefinition() (*mdast.Node, error) {
	p.skipSpacesTabs()
	p.advance() // '['

	idStart := p.pos
	for p.cur().Kind != mdast.TokRBracket {
		p.advance()
	}
	id := string(p.rawRange(idStart, p.pos))
	p.advance() // ']'
	p.advance() // ':'
	p.skipSpacesTabs()

	if id == "" {
		line, col := p.file.LineAt(p.cur().StartOffset)
		return nil, newParseError(line, col, "empty reference id", ErrEmptyReferenceID)
	}

	urlStart := p.pos
	for p.cur().Kind != mdast.TokSpace && p.cur().Kind != mdast.TokTab &&
		p.cur().Kind != mdast.TokEOL && p.cur().Kind != mdast.TokEOF {
		p.advance()
	}
	location := string(p.rawRange(urlStart, p.pos))

	p.skipSpacesTabs()

	name := ""
	hasName := false
	if p.cur().Kind == mdast.TokDoubleQuote || p.cur().Kind == mdast.TokSingleQuote ||
		p.cur().Kind == mdast.TokLParen {
		closing := matchingQuote(p.cur().Kind)
		p.advance()
		nameStart := p.pos
		for p.cur().Kind != closing && p.cur().Kind != mdast.TokEOL && p.cur().Kind != mdast.TokEOF {
			p.advance()
		}
		name = string(p.rawRange(nameStart, p.pos))
		hasName = true
		if p.cur().Kind == closing {
			p.advance()
		}
	}

	for p.cur().Kind != mdast.TokEOL && p.cur().Kind != mdast.TokEOF {
		p.advance()
	}

	resource := &mdast.Resource{Location: location, Name: name, HasName: hasName}
	p.refs.Define(id, resource)

	node := mdast.NewNode(mdast.NodeResourceDefinition)
	node.Block = mdast.NewBlockAttrs()
	node.Block.ResourceDefinition = &mdast.ResourceDefinitionAttrs{ID: id, Resource: resource}

	p.log.Debug("resource definition registered", "id", id)

	return node, nil
}

func matchingQuote(open mdast.TokenKind) mdast.TokenKind {
	if open == mdast.TokLParen {
		return mdast.TokRParen
	}
	return open
}

// rawRange returns the raw source bytes spanning tokens [from, to).
func (p *parser) rawRange(from, to int) []byte {
	if from >= to || to > len(p.tokens) {
		return nil
	}
	start := p.tokens[from].StartOffset
	end := p.tokens[to-1].EndOffset
	if start > end || end > len(p.content) {
		return nil
	}
	return p.content[start:end]
}
