package analyzer

import "strings"

// syllableEnders maps each letter, indexed from 'a', to the letters that may
// follow it at a syllable boundary. The entries are fixed data and must not be
// reordered or deduplicated: scores depend on them byte for byte.
//
// '?' marks the vowel rows. A word token never contains '?', so those rows
// never match a follower.
var syllableEnders = [26]string{
	"?",                          // a
	"acdefgijklmnopstuvwxyz",     // b
	"abedfgijlmnopqstuvwxyz",     // c
	"abcefghijklmnopqtuvwxyz",    // d
	"?oi",                        // e
	"abcdeghijklmnopqrsuvwxyz",   // f
	"abcdefhijklmnopqrtuvwxyz",   // g
	"abcdefghijlmnopqrstuvwxz",   // h
	"o?eau",                      // i
	"abcdefghiklmnopqrstuvwxyz",  // j
	"abcdefghijlmnopqrstuvwxyz",  // k
	"abcgehijmnopqrstuvwxyz",     // l
	"acdefghijklnoqrtuvwxyz",     // m
	"aefhijlmopqruvwxyz",         // n
	"?",                          // o
	"abcdefgijklmnoqstuvwxyzl",   // p
	"abcdefghijklmnoprstuvwxyz",  // q
	"abcefghijopquvwxyz",         // r
	"abcdefgjlmnopqruvwxyz",      // s
	"abcdefghijklmnopqrsuvwxyz",  // t
	"?iao",                       // u
	"abcdefghijklmnopqrstuwxyz",  // v
	"abcdefghijkmoqrtuvxyz",      // w
	"abcdefghijklmnopqrstuvwxyz", // x
	"abcdfghijklmnopqrsuvwxz",    // y
	"abcdefghijklmnopqrstuvwxyz", // z
}

const vowels = "aeoiuy"

// SyllableEstimator approximates English syllable counts from letter
// adjacency. It is not dictionary based and misjudges loanwords,
// contractions and proper nouns.
type SyllableEstimator struct {
	// Trace, when set, receives the normalized word with '*' inserted at
	// every counted boundary. It never affects the count.
	Trace func(word, marked string)
}

// NewSyllableEstimator creates a new SyllableEstimator.
func NewSyllableEstimator() *SyllableEstimator {
	return &SyllableEstimator{}
}

// Estimate returns the syllable count of a lowercase word token.
// It is at least 1 for any non-empty word and 0 for "".
func (e *SyllableEstimator) Estimate(word string) int {
	if word == "" {
		return 0
	}

	word = normalizeWord(word)
	if len(word) <= 2 {
		e.trace(word, word)
		return 1
	}

	var marked strings.Builder
	if e.Trace != nil {
		marked.WriteString(word[:2])
	}

	syllables := 1
	canEnd := false
	for i := 1; i < len(word)-1; i++ {
		c1, c2 := word[i], word[i+1]

		if strings.IndexByte(vowels, c1) >= 0 {
			canEnd = true
		}

		followers, ok := endersOf(c1)
		boundary := false
		switch {
		case !ok:
			boundary = true
		case canEnd && strings.IndexByte(followers, c2) >= 0:
			boundary = true
		}
		if boundary {
			syllables++
			canEnd = false
		}

		if e.Trace != nil {
			if boundary {
				marked.WriteByte('*')
			}
			marked.WriteByte(c2)
		}
	}

	e.trace(word, marked.String())
	return syllables
}

func (e *SyllableEstimator) trace(word, marked string) {
	if e.Trace != nil {
		e.Trace(word, marked)
	}
}

// normalizeWord applies the silent-e, "tion" and trailing "th" rewrites.
func normalizeWord(word string) string {
	word = strings.TrimSuffix(word, "e")
	word = strings.ReplaceAll(word, "tion", "ton")
	if strings.HasSuffix(word, "th") {
		word = word[:len(word)-2] + "t"
	}
	return word
}

func endersOf(c byte) (string, bool) {
	if c < 'a' || c > 'z' {
		return "", false
	}
	return syllableEnders[c-'a'], true
}
