package message

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewTransformer(t *testing.T) {
	tr := NewTransformer()

	require.NotNil(t, tr)
	require.Empty(t, tr.ClearText())
	require.Empty(t, tr.CipherText())
}

func TestTransformer_SetClearText(t *testing.T) {
	tests := []struct {
		name       string
		clear      string
		wantCipher string
	}{
		{
			// "Hello" and "World" both have length 5 and shift forward by 5.
			name:       "hello world",
			clear:      "Hello World!",
			wantCipher: "Mjqqt Btwqi!",
		},
		{
			name:       "empty",
			clear:      "",
			wantCipher: "",
		},
		{
			name:       "separators only",
			clear:      " ,;. !",
			wantCipher: " ,;. !",
		},
		{
			// A 26-letter word shifts by 26 mod 26 == 0.
			name:       "alphabet length word",
			clear:      strings.Repeat("a", 26),
			wantCipher: strings.Repeat("a", 26),
		},
		{
			// Words of different lengths get different shifts.
			name:       "mixed lengths",
			clear:      "a bc",
			wantCipher: "b de",
		},
		{
			// The accented letter counts toward the word length but is
			// not shifted itself.
			name:       "accented word",
			clear:      "héllo",
			wantCipher: "méqqt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTransformer()
			tr.SetClearText(tt.clear)

			require.Equal(t, tt.clear, tr.ClearText())
			require.Equal(t, tt.wantCipher, tr.CipherText())
		})
	}
}

func TestTransformer_SetCipherText(t *testing.T) {
	tr := NewTransformer()
	tr.SetCipherText("Mjqqt Btwqi!")

	require.Equal(t, "Mjqqt Btwqi!", tr.CipherText())
	require.Equal(t, "Hello World!", tr.ClearText())
}

// TestTransformer_RoundTrip feeds each transformer's own ciphertext back
// through decoding and expects the original plaintext. This holds because
// shifting never changes a word's length.
func TestTransformer_RoundTrip(t *testing.T) {
	messages := []string{
		"Hello World!",
		"The quick brown fox jumps over the lazy dog.",
		"Les Grecs attaquent par derrière !",
		"one-two three's (four) [five]?",
		"",
		"    ",
	}

	for _, msg := range messages {
		enc := NewTransformer()
		enc.SetClearText(msg)

		dec := NewTransformer()
		dec.SetCipherText(enc.CipherText())
		require.Equal(t, msg, dec.ClearText(), "message %q", msg)
	}
}

func TestTransformer_String(t *testing.T) {
	tr := NewTransformer()
	tr.SetClearText("Hi!")

	require.Equal(t, "Transformer[clear:Hi!;cipher:Jk!]", tr.String())
}
