package segmenter

import (
	"regexp"
	"strings"
)

var terminatorRun = regexp.MustCompile(`[.!?]+\s+`)

// PunctuationSegmenter splits after one or more of ".!?" followed by
// whitespace. It over-splits on abbreviations and keeps decimals whole.
type PunctuationSegmenter struct{}

func NewPunctuation() *PunctuationSegmenter {
	return &PunctuationSegmenter{}
}

// Segment returns the trimmed, non-empty sentences of text in order.
// Terminal punctuation stays with its sentence.
func (s *PunctuationSegmenter) Segment(text string) []string {
	text = CollapseWhitespace(text)

	var sentences []string
	prev := 0
	for _, loc := range terminatorRun.FindAllStringIndex(text, -1) {
		if trimmed := strings.TrimSpace(text[prev:loc[1]]); trimmed != "" {
			sentences = append(sentences, trimmed)
		}
		prev = loc[1]
	}
	if trimmed := strings.TrimSpace(text[prev:]); trimmed != "" {
		sentences = append(sentences, trimmed)
	}
	return sentences
}
