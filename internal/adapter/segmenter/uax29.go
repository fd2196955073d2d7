package segmenter

import (
	"strings"

	"github.com/rivo/uniseg"
)

// UAX29Segmenter splits on Unicode sentence boundaries (UAX #29).
//
// Decimal numbers stay whole and a period followed by a lowercase word does
// not end a sentence. An abbreviation followed by a capitalized word does:
// "Mr. Smith" yields two sentences.
type UAX29Segmenter struct{}

func NewUAX29() *UAX29Segmenter {
	return &UAX29Segmenter{}
}

// Segment returns the trimmed, non-empty sentences of text in order.
func (s *UAX29Segmenter) Segment(text string) []string {
	text = CollapseWhitespace(text)

	var sentences []string
	var sentence string
	state := -1
	for len(text) > 0 {
		sentence, text, state = uniseg.FirstSentenceInString(text, state)
		if trimmed := strings.TrimSpace(sentence); trimmed != "" {
			sentences = append(sentences, trimmed)
		}
	}
	return sentences
}
