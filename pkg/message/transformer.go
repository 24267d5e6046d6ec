// Package message encodes and decodes whole messages by applying a
// word-length-derived circular shift to every word.
package message

import (
	"strings"
	"unicode/utf8"

	"github.com/715d/wordshift/pkg/cipher"
	"github.com/715d/wordshift/pkg/tokenize"
)

// Direction selects which way the per-word shift is applied.
type Direction int

const (
	// Encode shifts each word forward by its own length mod 26.
	Encode Direction = iota

	// Decode shifts each word backward by its own length mod 26.
	Decode
)

// Transformer holds a clear/cipher message pair. Setting either side
// recomputes the other in full; there is no incremental update. The
// zero-argument constructor starts with both sides empty.
//
// Only the per-word, length-derived shift is performed: no message-wide
// shift is ever applied or removed, so decoding ciphertext that did not
// originate from a Transformer is not guaranteed to recover anything
// meaningful. cipher.GuessShift exists for that analysis but is never
// invoked here.
//
// A Transformer is not safe for unsynchronized concurrent use: a setter
// reads and writes the field pair non-atomically.
type Transformer struct {
	clearText  string
	cipherText string
}

// NewTransformer creates a transformer with both messages empty.
func NewTransformer() *Transformer {
	return &Transformer{}
}

// ClearText returns the current plaintext.
func (t *Transformer) ClearText() string {
	return t.clearText
}

// CipherText returns the current ciphertext.
func (t *Transformer) CipherText() string {
	return t.cipherText
}

// SetClearText stores text as the plaintext and recomputes the
// ciphertext word by word.
func (t *Transformer) SetClearText(text string) {
	t.clearText = text
	t.cipherText = transformWords(text, Encode)
}

// SetCipherText stores text as the ciphertext and recomputes the
// plaintext word by word.
func (t *Transformer) SetCipherText(text string) {
	t.cipherText = text
	t.clearText = transformWords(text, Decode)
}

// String implements fmt.Stringer.
func (t *Transformer) String() string {
	return "Transformer[clear:" + t.clearText + ";cipher:" + t.cipherText + "]"
}

// transformWords rebuilds the message token by token. Separators are
// copied unchanged; each word is shifted by its own rune length mod 26,
// normalized positive for Encode and negative for Decode.
func transformWords(text string, dir Direction) string {
	codec := cipher.New()
	var builder strings.Builder
	builder.Grow(len(text))
	for _, tok := range tokenize.Split(text) {
		out := tok.Text
		if tok.Kind == tokenize.Word {
			// The shift is already reduced mod 26, so SetShift cannot fail.
			_ = codec.SetShift(utf8.RuneCountInString(tok.Text) % cipher.AlphabetSize)
			if dir == Decode {
				codec.EnsureNegativeShift()
			} else {
				codec.EnsurePositiveShift()
			}
			out = codec.Apply(tok.Text)
		}
		builder.WriteString(out)
	}
	return builder.String()
}
