package port

type WordExtractor interface {
	// Extract lowercases and segments text, then tokenizes each sentence.
	Extract(text string) []string

	// FromSentences tokenizes sentences that were already segmented.
	FromSentences(sentences []string) []string
}

type SyllableEstimator interface {
	Estimate(word string) int
}

// LanguageDetector names the natural language of a text.
type LanguageDetector interface {
	// Detect returns the language name and whether detection was reliable.
	Detect(text string) (string, bool)
}
