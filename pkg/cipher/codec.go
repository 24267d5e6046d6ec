// Package cipher implements a circular single-shift substitution codec
// over the 26-letter unaccented alphabet, plus letter-frequency shift
// recovery.
package cipher

import (
	"errors"
	"fmt"
	"strings"
)

// AlphabetSize is the number of letters in the shifted alphabet.
const AlphabetSize = 26

// ErrInvalidArgument is returned for shift values outside the open
// interval (-AlphabetSize, AlphabetSize).
var ErrInvalidArgument = errors.New("invalid argument")

// Codec applies a single circular alphabetic shift to text. Positive
// shifts move letters forward in the alphabet, negative shifts move
// them backward. A Codec is not safe for concurrent mutation.
type Codec struct {
	shift int
}

// New creates a codec with shift 0 (the identity transform).
func New() *Codec {
	return &Codec{}
}

// NewWithShift creates a codec with the given shift.
func NewWithShift(shift int) (*Codec, error) {
	if err := validateShift(shift); err != nil {
		return nil, err
	}
	return &Codec{shift: shift}, nil
}

// Shift returns the current shift.
func (c *Codec) Shift() int {
	return c.shift
}

// SetShift replaces the current shift. The codec is left unchanged when
// the shift is out of range.
func (c *Codec) SetShift(shift int) error {
	if err := validateShift(shift); err != nil {
		return err
	}
	c.shift = shift
	return nil
}

// EnsurePositiveShift configures the codec for encoding by forcing the
// shift to its absolute value.
func (c *Codec) EnsurePositiveShift() {
	if c.shift < 0 {
		c.shift = -c.shift
	}
}

// EnsureNegativeShift configures the codec for decoding by forcing the
// shift to the negation of its absolute value.
func (c *Codec) EnsureNegativeShift() {
	if c.shift > 0 {
		c.shift = -c.shift
	}
}

// Apply shifts every unaccented letter of text by the current shift,
// wrapping circularly within its case-preserving alphabet. All other
// bytes are copied unchanged, so the output always has the same length
// as the input.
func (c *Codec) Apply(text string) string {
	var builder strings.Builder
	builder.Grow(len(text))
	for i := 0; i < len(text); i++ {
		builder.WriteByte(c.shiftByte(text[i]))
	}
	return builder.String()
}

// IsLetter reports whether b is an unaccented ASCII letter. Everything
// else, including accented letters, passes through Apply unchanged.
func IsLetter(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

// shiftByte maps one byte through the shifted alphabet. The +AlphabetSize
// bias keeps the modulus operand non-negative for any legal shift.
func (c *Codec) shiftByte(b byte) byte {
	var base byte
	switch {
	case b >= 'A' && b <= 'Z':
		base = 'A'
	case b >= 'a' && b <= 'z':
		base = 'a'
	default:
		return b
	}
	return base + byte((int(b-base)+c.shift+AlphabetSize)%AlphabetSize)
}

func validateShift(shift int) error {
	if shift <= -AlphabetSize || shift >= AlphabetSize {
		return fmt.Errorf("%w: shift %d outside (-%d, %d)", ErrInvalidArgument, shift, AlphabetSize, AlphabetSize)
	}
	return nil
}
