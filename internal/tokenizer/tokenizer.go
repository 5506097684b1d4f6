package tokenizer

import (
	"strings"
	"unicode"
)

// Default word tokenization limits.
const (
	// DefaultMinTokenLength is the shortest token kept by WordTokenizer.
	DefaultMinTokenLength = 3

	// DefaultMaxTokens caps the number of tokens WordTokenizer returns.
	DefaultMaxTokens = 10
)

// WordTokenizer extracts lowercase alphanumeric word tokens from free text.
//
// Tokens are runs of letters and digits, lowercased, at least MinTokenLength
// runes long, deduplicated in order of first occurrence, and capped at
// MaxTokens. This is the concept-extraction front end of the reasoner.
type WordTokenizer struct {
	MinTokenLength int
	MaxTokens      int
}

// NewWordTokenizer creates a WordTokenizer with the default limits.
func NewWordTokenizer() *WordTokenizer {
	return &WordTokenizer{
		MinTokenLength: DefaultMinTokenLength,
		MaxTokens:      DefaultMaxTokens,
	}
}

// Tokenize splits text into concept tokens. Empty text yields no tokens.
func (w *WordTokenizer) Tokenize(text string) []string {
	lower := strings.ToLower(text)

	var tokens []string
	seen := make(map[string]struct{})
	var run []rune

	flush := func() {
		if len(run) >= w.MinTokenLength {
			token := string(run)
			if _, dup := seen[token]; !dup {
				seen[token] = struct{}{}
				tokens = append(tokens, token)
			}
		}
		run = run[:0]
	}

	for _, r := range lower {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			run = append(run, r)
			continue
		}
		flush()
		if len(tokens) >= w.MaxTokens {
			return tokens[:w.MaxTokens]
		}
	}
	flush()

	if len(tokens) > w.MaxTokens {
		tokens = tokens[:w.MaxTokens]
	}
	return tokens
}
