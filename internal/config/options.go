// Package config holds the small options surface Transform accepts,
// loadable either via functional options in code or from a YAML document
// read off disk by the caller.
package config

// ParserOptions configures a Transform invocation beyond the hard-coded
// grammar: tab handling and how strictly unresolved references are
// treated.
type ParserOptions struct {
	// TabWidth is the column width of a tab stop. Classic Markdown uses 4.
	TabWidth int `yaml:"tab_width"`

	// StrictRefs, when true, turns a reference-lookup miss into a
	// transform-time error instead of the default visible-fallback
	// rendering (spec's non-error "Reference lookup miss" policy remains
	// the default).
	StrictRefs bool `yaml:"strict_refs"`
}

const defaultTabWidth = 4

// DefaultParserOptions returns classic-Markdown defaults: 4-column tabs,
// non-strict reference resolution.
func DefaultParserOptions() ParserOptions {
	return ParserOptions{TabWidth: defaultTabWidth, StrictRefs: false}
}
