package analyzer

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"readability/internal/port"
)

// WordExtractor splits text into lowercase word tokens drawn from a-z and
// the apostrophe. Tokens never span a sentence boundary.
type WordExtractor struct {
	segmenter port.Segmenter
}

// NewWordExtractor creates a new WordExtractor.
func NewWordExtractor(segmenter port.Segmenter) *WordExtractor {
	return &WordExtractor{segmenter: segmenter}
}

// Extract lowercases text, segments it and tokenizes each sentence.
func (e *WordExtractor) Extract(text string) []string {
	return tokenizeSentences(e.segmenter.Segment(lower(text)))
}

// FromSentences tokenizes sentences that were already segmented.
func (e *WordExtractor) FromSentences(sentences []string) []string {
	lowered := make([]string, len(sentences))
	for i, s := range sentences {
		lowered[i] = lower(s)
	}
	return tokenizeSentences(lowered)
}

// lower builds a fresh Caser per call; a Caser is not safe to share.
func lower(text string) string {
	return cases.Lower(language.English).String(text)
}

func tokenizeSentences(sentences []string) []string {
	var words []string
	for _, sentence := range sentences {
		words = appendWords(words, sentence)
	}
	return words
}

// appendWords scans one sentence rune by rune and flushes the pending token
// at the end, so tokens stay inside their sentence.
func appendWords(words []string, sentence string) []string {
	var current strings.Builder

	for _, r := range sentence {
		if isWordRune(r) {
			current.WriteRune(r)
			continue
		}
		if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}
	if current.Len() > 0 {
		words = append(words, current.String())
	}

	return words
}

func isWordRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || r == '\''
}
