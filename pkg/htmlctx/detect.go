package htmlctx

import (
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// detectCandidates bounds the classifier to languages that commonly appear
// in fenced code blocks. Unconstrained classification is slow and noisy.
//
//nolint:gochecknoglobals // Static candidate list
var detectCandidates = []string{
	"Go", "Python", "Shell", "JavaScript", "TypeScript",
	"Ruby", "Rust", "Java", "C", "C++", "SQL", "JSON",
	"YAML", "HTML", "CSS", "Dockerfile",
}

// detectLanguage guesses the language of an unlabeled code block. It returns
// a lowercase fence tag, or "" when confidence is too low to label the block.
func detectLanguage(code string) string {
	content := []byte(code)
	if len(content) == 0 {
		return ""
	}

	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return normalizeLanguage(lang)
	}
	if lang, safe := enry.GetLanguageByClassifier(content, detectCandidates); safe && lang != "" {
		return normalizeLanguage(lang)
	}
	return ""
}

// normalizeLanguage converts go-enry language names to fence tags.
func normalizeLanguage(lang string) string {
	if lang == "Shell" {
		return "bash"
	}
	return strings.ToLower(lang)
}
