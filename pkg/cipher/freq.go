package cipher

// mostFrequentLetter is the statistically most frequent letter in
// English (and French) prose, used as the reference point when guessing
// an unknown shift.
const mostFrequentLetter = 'E'

// GuessShift estimates the shift of a ciphertext from its letter
// frequencies: the most frequent letter is assumed to be the image of
// mostFrequentLetter. Counting is case-insensitive; when several letters
// tie for the maximum, the alphabetically smallest wins. The guess for
// an empty text is 0.
//
// GuessShift is a standalone analysis primitive. Decoding never invokes
// it implicitly.
func GuessShift(text string) int {
	if text == "" {
		return 0
	}

	var counts [AlphabetSize]int
	for i := 0; i < len(text); i++ {
		switch b := text[i]; {
		case b >= 'A' && b <= 'Z':
			counts[b-'A']++
		case b >= 'a' && b <= 'z':
			counts[b-'a']++
		}
	}

	// Strict > keeps the first, i.e. alphabetically smallest, maximum.
	m := 0
	for i := 1; i < AlphabetSize; i++ {
		if counts[i] > counts[m] {
			m = i
		}
	}

	return (m - int(mostFrequentLetter-'A') + AlphabetSize) % AlphabetSize
}
