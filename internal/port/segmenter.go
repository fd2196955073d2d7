package port

// Segmenter splits text into ordered, trimmed, non-empty sentences.
type Segmenter interface {
	Segment(text string) []string
}
