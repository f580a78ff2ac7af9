// Package mdhtml converts classic Markdown source into HTML: a
// hand-written tokenizer and context-sensitive recursive-descent parser
// build an AST, which a tree-walking visitor renders to HTML.
package mdhtml

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/mdhtml/internal/config"
	"github.com/yaklabco/mdhtml/internal/logging"
	"github.com/yaklabco/mdhtml/pkg/htmlrender"
	"github.com/yaklabco/mdhtml/pkg/parser"
)

// Option configures a Transform call.
type Option func(*transformConfig)

type transformConfig struct {
	opts   config.ParserOptions
	logger *log.Logger
}

// WithTabWidth overrides the tab-stop column width (default 4).
func WithTabWidth(width int) Option {
	return func(c *transformConfig) {
		c.opts.TabWidth = width
	}
}

// WithOptions sets the full parser options, overriding any prior
// WithTabWidth in the same call.
func WithOptions(opts config.ParserOptions) Option {
	return func(c *transformConfig) {
		c.opts = opts
	}
}

// WithLogger attaches a logger for parse/render Debug-level tracing.
// Defaults to the package-level logging.Default() logger.
func WithLogger(logger *log.Logger) Option {
	return func(c *transformConfig) {
		c.logger = logger
	}
}

// Transform reads Markdown source from src to completion and writes HTML
// to dst. It never names a file: src and dst are the caller's concern.
// A ParseError carries (line, column, message) when the grammar fails to
// match; I/O failures from src or dst propagate as-is.
func Transform(src io.Reader, dst io.Writer, options ...Option) error {
	cfg := transformConfig{
		opts:   config.DefaultParserOptions(),
		logger: logging.Default(),
	}
	for _, opt := range options {
		opt(&cfg)
	}

	content, err := io.ReadAll(src)
	if err != nil {
		return fmt.Errorf("read source: %w", err)
	}

	ctx := logging.WithLogger(context.Background(), cfg.logger)

	file, refs, err := parser.Parse(ctx, content, parser.Options{TabWidth: cfg.opts.TabWidth})
	if err != nil {
		return err
	}

	if err := htmlrender.Render(dst, file.Root, refs, cfg.logger, cfg.opts.StrictRefs); err != nil {
		return fmt.Errorf("render html: %w", err)
	}

	return nil
}
