package tokenize

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []Token
	}{
		{
			name: "empty",
			in:   "",
			want: nil,
		},
		{
			name: "single word",
			in:   "Hello",
			want: []Token{{Word, "Hello"}},
		},
		{
			name: "two words with punctuation",
			in:   "Hello World!",
			want: []Token{
				{Word, "Hello"},
				{Separator, " "},
				{Word, "World"},
				{Separator, "!"},
			},
		},
		{
			name: "leading and consecutive separators",
			in:   " (hi)",
			want: []Token{
				{Separator, " "},
				{Separator, "("},
				{Word, "hi"},
				{Separator, ")"},
			},
		},
		{
			name: "separators only",
			in:   ",,  !",
			want: []Token{
				{Separator, ","},
				{Separator, ","},
				{Separator, " "},
				{Separator, " "},
				{Separator, "!"},
			},
		},
		{
			name: "whitespace variants",
			in:   "a\tb\nc",
			want: []Token{
				{Word, "a"},
				{Separator, "\t"},
				{Word, "b"},
				{Separator, "\n"},
				{Word, "c"},
			},
		},
		{
			name: "apostrophe splits words",
			in:   "l'eau",
			want: []Token{
				{Word, "l"},
				{Separator, "'"},
				{Word, "eau"},
			},
		},
		{
			name: "hyphen is a separator",
			in:   "well-known",
			want: []Token{
				{Word, "well"},
				{Separator, "-"},
				{Word, "known"},
			},
		},
		{
			name: "non-separator punctuation stays in the word",
			in:   "a_b@c",
			want: []Token{{Word, "a_b@c"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Split(tt.in))
		})
	}
}

// TestSplit_Lossless checks that joining the token sequence reproduces
// the source string exactly.
func TestSplit_Lossless(t *testing.T) {
	inputs := []string{
		"",
		"Hello World!",
		"  leading and trailing  ",
		"(nested [brackets - and, marks?]) done.",
		"Les Grecs attaquent par derrière !",
		"no separators at all",
		"\t\n\r\f'\"([-,?;.:!])",
	}

	for _, in := range inputs {
		tokens := Split(in)
		require.Equal(t, in, Join(tokens))

		for _, tok := range tokens {
			if tok.Kind == Separator {
				require.Len(t, tok.Text, 1)
				require.True(t, IsSeparator(tok.Text[0]))
			} else {
				require.NotEmpty(t, tok.Text)
			}
		}
	}
}

func TestIsSeparator(t *testing.T) {
	for i := 0; i < len(Separators); i++ {
		require.True(t, IsSeparator(Separators[i]), "%q", Separators[i])
	}
	for _, b := range []byte{'a', 'Z', '0', '_', '@', '{', '}'} {
		require.False(t, IsSeparator(b), "%q", b)
	}
}
