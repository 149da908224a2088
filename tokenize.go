package llmcatalog

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// isDelimiter reports whether r separates tokens. Delimiters are never emitted.
func isDelimiter(r rune) bool {
	if unicode.IsSpace(r) {
		return true
	}
	switch r {
	case '-', '_', '.', '/', '(', ')', '[', ']', '{', '}', ':', ',', ';':
		return true
	}
	return false
}

// isUpper and isLower also count the Other_Uppercase and Other_Lowercase
// properties, so letters such as ª and ʰ are cased.
func isUpper(r rune) bool { return unicode.IsUpper(r) || unicode.Is(unicode.Other_Uppercase, r) }
func isLower(r rune) bool { return unicode.IsLower(r) || unicode.Is(unicode.Other_Lowercase, r) }

// isCamelBoundary reports whether a new token starts at runes[i]:
// "aB" splits before B, and "ABc" splits before B.
func isCamelBoundary(runes []rune, i int) bool {
	if i == 0 || !isUpper(runes[i]) {
		return false
	}
	prev := runes[i-1]
	if isLower(prev) {
		return true
	}
	return isUpper(prev) && i+1 < len(runes) && isLower(runes[i+1])
}

// Tokenize splits text into lowercase word tokens.
//
// Tokens break on whitespace, on the characters - _ . / ( ) [ ] { } : , ;
// and on camelCase boundaries, so "XMLHttpRequest" yields xml, http, request.
// Empty input, or input made only of delimiters, yields no tokens.
func Tokenize(text string) []string {
	lower := cases.Lower(language.Und)
	runes := []rune(text)

	var (
		tokens  []string
		current strings.Builder
	)
	flush := func() {
		if current.Len() == 0 {
			return
		}
		tokens = append(tokens, lower.String(current.String()))
		current.Reset()
	}

	for i, r := range runes {
		if isDelimiter(r) {
			flush()
			continue
		}
		if isCamelBoundary(runes, i) {
			flush()
		}
		current.WriteRune(r)
	}
	flush()

	return tokens
}
