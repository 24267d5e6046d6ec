// Package tokenize splits message text into word and separator tokens.
//
// The partition is lossless: joining the token sequence in order
// reproduces the source string byte for byte.
package tokenize

import "strings"

// Separators is the fixed set of single-character separator tokens.
// Every maximal run of other characters is a word.
const Separators = " \t\n\r\f'\"([-,?;.:!])"

// Kind classifies a token.
type Kind int

const (
	// Word is a maximal run of non-separator characters.
	Word Kind = iota

	// Separator is exactly one character drawn from Separators.
	Separator
)

// Token is one span of the source string.
type Token struct {
	Kind Kind
	Text string
}

// IsSeparator reports whether b is a separator character.
func IsSeparator(b byte) bool {
	return strings.IndexByte(Separators, b) >= 0
}

// Split partitions s into its ordered token sequence.
func Split(s string) []Token {
	var tokens []Token
	start := -1 // start of the word in progress, -1 when none
	for i := 0; i < len(s); i++ {
		if !IsSeparator(s[i]) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			tokens = append(tokens, Token{Kind: Word, Text: s[start:i]})
			start = -1
		}
		tokens = append(tokens, Token{Kind: Separator, Text: s[i : i+1]})
	}
	if start >= 0 {
		tokens = append(tokens, Token{Kind: Word, Text: s[start:]})
	}
	return tokens
}

// Join concatenates the token texts in order.
func Join(tokens []Token) string {
	var builder strings.Builder
	for _, tok := range tokens {
		builder.WriteString(tok.Text)
	}
	return builder.String()
}
