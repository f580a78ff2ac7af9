// Package parser implements the hand-written tokenizer and
// context-sensitive recursive-descent grammar that builds an mdast.Node
// tree from classic Markdown source.
package parser

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/mdhtml/internal/logging"
	"github.com/yaklabco/mdhtml/pkg/mdast"
)

// Options configures a single Parse invocation.
type Options struct {
	// TabWidth is the column width of a tab stop (spec default: 4).
	TabWidth int
}

// DefaultOptions returns the classic-Markdown defaults.
func DefaultOptions() Options {
	const defaultTabWidth = 4
	return Options{TabWidth: defaultTabWidth}
}

// parser holds everything one Parse call needs: the raw content, its
// flat token stream, a cursor into that stream, the AST under
// construction, and the open-block state stacks.
type parser struct {
	content []byte
	tokens  []mdast.Token
	pos     int

	file  *mdast.FileSnapshot
	refs  *mdast.ReferenceTable
	state *parserState
	opts  Options
	log   *log.Logger
}

// tabWidth returns the configured tab-stop width, falling back to the
// classic default when Options was built without one (e.g. a bare
// Options{} literal).
func (p *parser) tabWidth() int {
	if p.opts.TabWidth > 0 {
		return p.opts.TabWidth
	}
	return mdast.DefaultTabWidth
}

// Parse tokenizes and parses content into a FileSnapshot whose Root is
// the Document node, composing tokenize -> validate token coverage ->
// parse -> attach file back-references, matching the teacher's
// Parser.Parse composition shape.
func Parse(ctx context.Context, content []byte, opts Options) (*mdast.FileSnapshot, *mdast.ReferenceTable, error) {
	logger := logging.FromContext(ctx)

	tokens := Tokenize(content)
	if !mdast.ValidateTokens(tokens[:len(tokens)-1], len(content)) {
		logger.Debug("token stream failed coverage validation", logging.FieldTokenCount, len(tokens))
	}

	file := mdast.NewFileSnapshot("", content)
	file.Tokens = tokens
	if opts.TabWidth > 0 {
		file.TabWidth = opts.TabWidth
	}

	p := &parser{
		content: content,
		tokens:  tokens,
		file:    file,
		refs:    mdast.NewReferenceTable(),
		state:   newParserState(),
		opts:    opts,
		log:     logger,
	}

	doc, err := p.parseDocument()
	if err != nil {
		return nil, nil, err
	}

	file.Root = doc
	mdast.SetFile(doc, file)

	logger.Debug("parse complete", logging.FieldTokenCount, len(tokens), logging.FieldInput, len(content))

	return file, p.refs, nil
}
