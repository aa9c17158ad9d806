package indexer

import (
	"strings"
	"unicode"
)

// tokenDelimiters defines characters that separate tokens in JSON text.
const tokenDelimiters = "{}[],:\"'\\/=.-_"

// Tokenize splits a string into searchable tokens. Splits on JSON
// punctuation and whitespace, lowercases, drops tokens shorter than 2 chars.
func Tokenize(s string) []string {
	s = strings.ToLower(s)

	tokens := strings.FieldsFunc(s, func(r rune) bool {
		return strings.ContainsRune(tokenDelimiters, r) || unicode.IsSpace(r)
	})

	result := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if len(t) >= 2 {
			result = append(result, t)
		}
	}

	return result
}
