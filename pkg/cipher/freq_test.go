package cipher

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGuessShift(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{name: "empty", text: "", want: 0},
		{name: "e most frequent", text: "the bees see three trees", want: 0},
		{name: "case insensitive", text: "EeEe", want: 0},
		// 'a' and 'b' tie with two occurrences each; the alphabetically
		// smaller letter wins, so the guess maps E onto A.
		{name: "tie break", text: "aabb", want: 22},
		{name: "single letter", text: "h", want: 3},
		// No letters at all: every bucket is zero, the scan keeps 'a'.
		{name: "no letters", text: "1234 ... !?", want: 22},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, GuessShift(tt.text))
		})
	}
}

// TestGuessShift_RecoversAppliedShift shifts an e-heavy text by every
// legal positive shift and checks the guess recovers it.
func TestGuessShift_RecoversAppliedShift(t *testing.T) {
	const text = "the bees see three trees near the green tree here"

	for s := 0; s < AlphabetSize; s++ {
		codec, err := NewWithShift(s - (AlphabetSize-1)/2) // exercise negative shifts too
		require.NoError(t, err)
		codec.EnsurePositiveShift()

		guessed := GuessShift(codec.Apply(text))
		require.Equal(t, codec.Shift(), guessed, "shift %d", codec.Shift())
	}
}
