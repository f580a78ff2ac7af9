package htmlrender

import (
	"bytes"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// detectLanguage guesses a fence-tag-style language name for an indented
// code block's content, for the optional class="language-x" hint. Ported
// from the teacher's content-based detector: a shebang check first, then
// go-enry's classifier restricted to a short candidate list, returning ""
// when neither is confident.
func detectLanguage(content []byte) string {
	if len(content) == 0 {
		return ""
	}

	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return normalizeLanguage(lang)
	}

	if looksLikeDockerfile(content) {
		return "dockerfile"
	}

	candidates := []string{
		"Go", "Python", "Shell", "JavaScript", "TypeScript",
		"Ruby", "Rust", "Java", "C", "C++", "SQL", "JSON",
		"YAML", "HTML", "CSS", "Dockerfile",
	}
	if lang, safe := enry.GetLanguageByClassifier(content, candidates); safe && lang != "" {
		return normalizeLanguage(lang)
	}

	return ""
}

// normalizeLanguage converts go-enry's display names to lowercase fence
// tags, folding "Shell" to "bash" the way fenced code blocks conventionally
// spell it.
func normalizeLanguage(lang string) string {
	if lang == "Shell" {
		return "bash"
	}
	return strings.ToLower(lang)
}

// looksLikeDockerfile is a narrow pre-check the classifier misses on short
// snippets; content-based only, no filename available at this layer.
func looksLikeDockerfile(content []byte) bool {
	trimmed := bytes.TrimSpace(content)
	return bytes.HasPrefix(trimmed, []byte("FROM "))
}
