package analyzer

import (
	"github.com/pemistahl/lingua-go"
)

// LanguageDetector flags inputs the English-only syllable heuristic will
// misjudge.
type LanguageDetector struct {
	detector lingua.LanguageDetector
}

// NewLanguageDetector builds a detector over common Latin-script languages.
// Building loads language models, so create one and share it.
func NewLanguageDetector() *LanguageDetector {
	detector := lingua.NewLanguageDetectorBuilder().
		FromLanguages(
			lingua.English,
			lingua.French,
			lingua.German,
			lingua.Spanish,
			lingua.Portuguese,
			lingua.Italian,
			lingua.Dutch,
		).
		WithLowAccuracyMode().
		Build()
	return &LanguageDetector{detector: detector}
}

// Detect returns the detected language name and whether detection succeeded.
func (d *LanguageDetector) Detect(text string) (string, bool) {
	lang, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return "", false
	}
	return lang.String(), true
}

// IsEnglish reports whether name is the English language name returned by
// Detect.
func IsEnglish(name string) bool {
	return name == lingua.English.String()
}
