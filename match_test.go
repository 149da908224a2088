package llmcatalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchesTokenSequence_SingleToken(t *testing.T) {
	tokens := []string{"hello", "world"}

	assert.True(t, MatchesTokenSequence("hello", tokens))
	assert.True(t, MatchesTokenSequence("hel", tokens))
	assert.True(t, MatchesTokenSequence("wor", tokens))
	assert.False(t, MatchesTokenSequence("xyz", tokens))
	assert.False(t, MatchesTokenSequence("orld", tokens))
}

func TestMatchesTokenSequence_Concatenation(t *testing.T) {
	tokens := []string{"foo", "bar", "baz"}

	assert.True(t, MatchesTokenSequence("foobar", tokens))
	assert.True(t, MatchesTokenSequence("barbaz", tokens))
	assert.True(t, MatchesTokenSequence("foobarbaz", tokens))
	assert.True(t, MatchesTokenSequence("foob", tokens))
	assert.False(t, MatchesTokenSequence("foobaz", tokens))
	assert.False(t, MatchesTokenSequence("bazfoo", tokens))
}

func TestMatchesTokenSequence_ModelName(t *testing.T) {
	tokens := Tokenize("Google: Gemini 2.5 Flash Image (Nano Banana)")

	for _, q := range []string{"nano", "banana", "nanobanana", "google", "gemini", "flash", "25"} {
		assert.True(t, MatchesTokenSequence(q, tokens), "query %q", q)
	}
	assert.True(t, MatchesTokenSequence("gemini25", tokens))
	assert.False(t, MatchesTokenSequence("xyz", tokens))
	assert.False(t, MatchesTokenSequence("geminiflash", tokens))
}

func TestMatchesTokenSequence_Empty(t *testing.T) {
	// An empty query is a prefix of any token.
	assert.True(t, MatchesTokenSequence("", []string{"test"}))

	assert.False(t, MatchesTokenSequence("test", nil))
	assert.False(t, MatchesTokenSequence("", []string{}))
}

func TestTextMatches(t *testing.T) {
	tokens := Tokenize("OpenAI: GPT-4o mini")

	assert.True(t, TextMatches("", tokens))
	assert.True(t, TextMatches("  --  ", tokens))
	assert.True(t, TextMatches("gpt", tokens))
	assert.True(t, TextMatches("GPT 4o", tokens), "query is tokenized and lowercased")
	assert.True(t, TextMatches("mini openai", tokens), "token order does not matter")
	assert.False(t, TextMatches("gpt claude", tokens), "every query token must match")
	assert.False(t, TextMatches("x", nil))
	assert.True(t, TextMatches("", nil))
}

func BenchmarkMatchesTokenSequence(b *testing.B) {
	tokens := Tokenize("Google: Gemini 2.5 Flash Image (Nano Banana)")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		MatchesTokenSequence("nanobanana", tokens)
	}
}
