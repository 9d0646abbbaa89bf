package title

import "unicode/utf8"

const (
	minTitleLength    = 3
	minVowelRatio     = 0.1
	maxRepeatedRunLen = 4
)

// IsNonsense flags strings that fail minimal linguistic plausibility:
// too short, almost vowel-free, or dominated by a repeated character
// run. It gates every cleaning step but is never a user-visible error
// on its own.
func IsNonsense(title string) bool {
	length := utf8.RuneCountInString(title)
	if length < minTitleLength {
		return true
	}

	vowels := 0

	for _, r := range title {
		switch r {
		case 'a', 'e', 'i', 'o', 'u', 'A', 'E', 'I', 'O', 'U':
			vowels++
		}
	}

	if float64(vowels) < float64(length)*minVowelRatio {
		return true
	}

	return hasRepeatedRun(title)
}

func hasRepeatedRun(s string) bool {
	var prev rune

	run := 0

	for _, r := range s {
		if r == prev {
			run++
			if run > maxRepeatedRunLen {
				return true
			}

			continue
		}

		prev = r
		run = 1
	}

	return false
}
