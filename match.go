package llmcatalog

import "strings"

// MatchesTokenSequence reports whether query is a prefix of one of tokens, or a
// prefix of the concatenation of a contiguous run of tokens ("nanobanana" matches
// [..., "nano", "banana"]). query is expected to be lowercase already.
//
// An empty token list never matches. An empty query matches any non-empty list.
func MatchesTokenSequence(query string, tokens []string) bool {
	for _, t := range tokens {
		if strings.HasPrefix(t, query) {
			return true
		}
	}

	var concat strings.Builder
	for start := range tokens {
		concat.Reset()
		for _, t := range tokens[start:] {
			concat.WriteString(t)
			if strings.HasPrefix(concat.String(), query) {
				return true
			}
			// A longer concatenation can no longer become a prefix match.
			if concat.Len() > len(query) {
				break
			}
		}
	}
	return false
}

// TextMatches reports whether every token of filter matches tokens.
// An empty filter matches everything.
func TextMatches(filter string, tokens []string) bool {
	return matchesAll(Tokenize(filter), tokens)
}

func matchesAll(queryTokens, tokens []string) bool {
	for _, q := range queryTokens {
		if !MatchesTokenSequence(q, tokens) {
			return false
		}
	}
	return true
}
