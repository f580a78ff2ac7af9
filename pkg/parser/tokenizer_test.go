package parser

import (
	"testing"

	"github.com/yaklabco/mdhtml/pkg/mdast"
)

func kinds(tokens []mdast.Token) []mdast.TokenKind {
	out := make([]mdast.TokenKind, len(tokens))
	for i, t := range tokens {
		out[i] = t.Kind
	}
	return out
}

func TestTokenize_CharSequenceAndSpace(t *testing.T) {
	tokens := Tokenize([]byte("hello world"))
	got := kinds(tokens)
	want := []mdast.TokenKind{mdast.TokCharSequence, mdast.TokSpace, mdast.TokCharSequence, mdast.TokEOF}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestTokenize_Punctuation(t *testing.T) {
	tokens := Tokenize([]byte("#*_"))
	want := []mdast.TokenKind{mdast.TokSharp, mdast.TokStar, mdast.TokUnderscore, mdast.TokEOF}
	got := kinds(tokens)
	for i, k := range want {
		if got[i] != k {
			t.Errorf("token %d: got %v, want %v", i, got[i], k)
		}
	}
}

func TestTokenize_CommentSigils(t *testing.T) {
	tokens := Tokenize([]byte("<!-- hi -->"))
	got := kinds(tokens)
	if got[0] != mdast.TokCommentOpen {
		t.Errorf("first token: got %v, want TokCommentOpen", got[0])
	}
	if got[len(got)-2] != mdast.TokCommentClose {
		t.Errorf("last real token: got %v, want TokCommentClose", got[len(got)-2])
	}
}

func TestTokenize_CharEntityRef(t *testing.T) {
	tokens := Tokenize([]byte("&amp;"))
	if tokens[0].Kind != mdast.TokCharEntityRef {
		t.Fatalf("got %v, want TokCharEntityRef", tokens[0].Kind)
	}
	if string(tokens[0].Text([]byte("&amp;"))) != "&amp;" {
		t.Errorf("text: got %q", tokens[0].Text([]byte("&amp;")))
	}
}

func TestTokenize_NumericCharRef(t *testing.T) {
	cases := []string{"&#38;", "&#x26;", "&#X26;"}
	for _, c := range cases {
		tokens := Tokenize([]byte(c))
		if tokens[0].Kind != mdast.TokNumericCharRef {
			t.Errorf("%q: got %v, want TokNumericCharRef", c, tokens[0].Kind)
		}
	}
}

func TestTokenize_BareAmpersandFallsBackToPunctuation(t *testing.T) {
	tokens := Tokenize([]byte("a & b"))
	got := kinds(tokens)
	want := []mdast.TokenKind{
		mdast.TokCharSequence, mdast.TokSpace, mdast.TokAmpersand,
		mdast.TokSpace, mdast.TokCharSequence, mdast.TokEOF,
	}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestTokenize_EscapedChar(t *testing.T) {
	tokens := Tokenize([]byte(`\*not emphasis\*`))
	if tokens[0].Kind != mdast.TokEscapedChar {
		t.Fatalf("got %v, want TokEscapedChar", tokens[0].Kind)
	}
}

func TestTokenize_EscapedNonEscapableFallsBackToBackslash(t *testing.T) {
	tokens := Tokenize([]byte(`\q`))
	if tokens[0].Kind != mdast.TokBackslash {
		t.Fatalf("got %v, want TokBackslash", tokens[0].Kind)
	}
}

func TestTokenize_Digits(t *testing.T) {
	tokens := Tokenize([]byte("123. text"))
	if tokens[0].Kind != mdast.TokDigits {
		t.Fatalf("got %v, want TokDigits", tokens[0].Kind)
	}
	if tokens[1].Kind != mdast.TokDot {
		t.Fatalf("got %v, want TokDot", tokens[1].Kind)
	}
}

func TestTokenize_EOLVariants(t *testing.T) {
	for _, input := range []string{"a\nb", "a\rb", "a\r\nb"} {
		tokens := Tokenize([]byte(input))
		found := false
		for _, tok := range tokens {
			if tok.Kind == mdast.TokEOL {
				found = true
			}
		}
		if !found {
			t.Errorf("%q: expected an EOL token", input)
		}
	}
}

func TestTokenize_CoversFullContent(t *testing.T) {
	content := []byte("# Heading\n\nSome *text* with `code` and [a link](http://example.com \"title\").\n")
	tokens := Tokenize(content)
	if !mdast.ValidateTokens(tokens[:len(tokens)-1], len(content)) {
		t.Fatal("token stream does not cover the full content")
	}
	if tokens[len(tokens)-1].Kind != mdast.TokEOF {
		t.Fatal("last token is not TokEOF")
	}
}

func TestTokenize_UTF8RuneStaysWithinOneCharSequence(t *testing.T) {
	content := []byte("héllo wörld")
	tokens := Tokenize(content)
	if tokens[0].Kind != mdast.TokCharSequence {
		t.Fatalf("got %v, want TokCharSequence", tokens[0].Kind)
	}
	if string(tokens[0].Text(content)) != "héllo" {
		t.Errorf("got %q, want %q", tokens[0].Text(content), "héllo")
	}
}
