package htmlrender

import (
	"strings"

	"github.com/yaklabco/mdhtml/pkg/mdast"
	"github.com/yaklabco/mdhtml/pkg/parser"
)

// escapeReplacer implements the four-entry escape table: & < > ". It makes
// a single pass, so an '&' it inserts is not escaped again, but an "&amp;"
// already present in its input is escaped to "&amp;amp;".
var escapeReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// escape applies the HTML escape table to text content and to URL
// attribute values. Never applied to CharRef values, which are
// already-formed entities.
func escape(s string) string {
	return escapeReplacer.Replace(s)
}

// escapeExceptCharRefs applies the escape table to a flat attribute
// value (alt, title) while leaving any entity reference written
// literally inside it (e.g. "a &amp; b") untouched, matching spec.md
// §8's "entity references pass through unescaped" invariant for values
// that, unlike link/image text, can't carry real CharRef children of
// their own. It re-tokenizes s with the same tokenizer the parser uses,
// so a char ref is recognized by the exact grammar that produced
// NodeCharRef in the first place.
func escapeExceptCharRefs(s string) string {
	tokens := parser.Tokenize([]byte(s))

	var out strings.Builder
	plainStart := 0
	for _, tok := range tokens {
		if tok.Kind != mdast.TokCharEntityRef && tok.Kind != mdast.TokNumericCharRef {
			continue
		}
		out.WriteString(escape(s[plainStart:tok.StartOffset]))
		out.WriteString(s[tok.StartOffset:tok.EndOffset])
		plainStart = tok.EndOffset
	}
	out.WriteString(escape(s[plainStart:]))
	return out.String()
}
