package usecase

import (
	"regexp"
	"strings"
)

// MaxQueryLength caps free-text queries, in runes
const MaxQueryLength = 100

var (
	multiSpacePattern = regexp.MustCompile(`\s+`)

	// punctuation left alone between words, e.g. "notebook , dell"
	orphanPunctuationPattern   = regexp.MustCompile(`\s+[,;:]+\s+`)
	trailingPunctuationPattern = regexp.MustCompile(`[,;:]+\s*$`)
	leadingPunctuationPattern  = regexp.MustCompile(`^\s*[,;:]+`)
)

// NormalizeQuery cleans a typed search query: orphaned punctuation is dropped,
// whitespace collapsed, and the result cut at a word boundary past MaxQueryLength.
func NormalizeQuery(query string) string {
	cleaned := orphanPunctuationPattern.ReplaceAllString(query, " ")
	cleaned = trailingPunctuationPattern.ReplaceAllString(cleaned, "")
	cleaned = leadingPunctuationPattern.ReplaceAllString(cleaned, "")
	cleaned = multiSpacePattern.ReplaceAllString(cleaned, " ")
	cleaned = strings.TrimSpace(cleaned)

	runes := []rune(cleaned)
	if len(runes) > MaxQueryLength {
		cleaned = string(runes[:MaxQueryLength])
		if lastSpace := strings.LastIndex(cleaned, " "); lastSpace > len(cleaned)/2 {
			cleaned = cleaned[:lastSpace]
		}
	}
	return cleaned
}
