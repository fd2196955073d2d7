package usecase

import (
	"errors"
	"fmt"
	"math"
	"time"

	"readability/internal/domain"
	"readability/internal/port"
)

// ErrEmptyInput is returned when a text has no words or no sentences, so a
// formula would divide by zero.
var ErrEmptyInput = errors.New("text has no words or sentences to score")

// Precision selects how the formula ratios are divided.
type Precision int

const (
	// Truncate divides with integer truncation before scaling. It is the
	// default and reproduces the reference scores.
	Truncate Precision = iota
	// Float divides in floating point.
	Float
)

// ParsePrecision maps a config name to a Precision.
func ParsePrecision(name string) (Precision, error) {
	switch name {
	case "truncate", "":
		return Truncate, nil
	case "float":
		return Float, nil
	default:
		return Truncate, fmt.Errorf("unknown precision: %s", name)
	}
}

func (p Precision) String() string {
	if p == Float {
		return "float"
	}
	return "truncate"
}

// Scorer computes Flesch Reading Ease and SMOG grade. It holds no mutable
// state and is safe for concurrent use when its collaborators are.
type Scorer struct {
	segmenter port.Segmenter
	words     port.WordExtractor
	syllables port.SyllableEstimator
	precision Precision
	language  port.LanguageDetector
	now       func() time.Time
}

// NewScorer creates a new Scorer.
func NewScorer(
	segmenter port.Segmenter,
	words port.WordExtractor,
	syllables port.SyllableEstimator,
	precision Precision,
) *Scorer {
	return &Scorer{
		segmenter: segmenter,
		words:     words,
		syllables: syllables,
		precision: precision,
		now:       time.Now,
	}
}

// WithLanguageDetector makes Report fill in the detected language.
func (s *Scorer) WithLanguageDetector(d port.LanguageDetector) *Scorer {
	s.language = d
	return s
}

// Analyze segments text once and derives words and syllables from those
// same sentences.
func (s *Scorer) Analyze(text string) domain.Analysis {
	sentences := s.segmenter.Segment(text)
	words := s.words.FromSentences(sentences)

	syllables := make([]int, len(words))
	for i, w := range words {
		syllables[i] = s.syllables.Estimate(w)
	}

	return domain.Analysis{
		Sentences: sentences,
		Words:     words,
		Syllables: syllables,
	}
}

// Flesch returns the Flesch Reading Ease of text.
func (s *Scorer) Flesch(text string) (float64, error) {
	return FleschScore(s.Analyze(text), s.precision)
}

// SMOG returns the SMOG grade of text, or domain.InsufficientData when text
// has fewer than domain.SMOGMinSentences sentences.
func (s *Scorer) SMOG(text string) (float64, error) {
	return SMOGScore(s.Analyze(text), s.precision)
}

// FleschScore computes 206.835 - 1.015*(W/S) - 84.6*(Y/W).
func FleschScore(a domain.Analysis, precision Precision) (float64, error) {
	words := a.TotalWords()
	sentences := a.TotalSentences()
	if words == 0 || sentences == 0 {
		return 0, ErrEmptyInput
	}
	syllables := a.TotalSyllables()

	var wordsPerSentence, syllablesPerWord float64
	if precision == Float {
		wordsPerSentence = float64(words) / float64(sentences)
		syllablesPerWord = float64(syllables) / float64(words)
	} else {
		wordsPerSentence = float64(words / sentences)
		syllablesPerWord = float64(syllables / words)
	}

	// Explicit conversions keep the products from being fused, so scores are
	// identical on every architecture.
	return 206.835 - float64(1.015*wordsPerSentence) - float64(84.6*syllablesPerWord), nil
}

// SMOGScore computes 1.043*sqrt(C*S/30) + 3.1291, C being the number of
// words with three or more syllables.
func SMOGScore(a domain.Analysis, precision Precision) (float64, error) {
	sentences := a.TotalSentences()
	if sentences < domain.SMOGMinSentences {
		return domain.InsufficientData, nil
	}
	if a.TotalWords() == 0 {
		return 0, ErrEmptyInput
	}
	complexWords := a.ComplexWords()

	var sample float64
	if precision == Float {
		sample = float64(complexWords*sentences) / domain.SMOGMinSentences
	} else {
		sample = float64(complexWords * sentences / domain.SMOGMinSentences)
	}

	return float64(1.043*math.Sqrt(sample)) + 3.1291, nil
}

// Report scores text with both formulas. A text without words or sentences
// yields a report with a nil Flesch score rather than an error.
func (s *Scorer) Report(text string) domain.Report {
	a := s.Analyze(text)

	report := domain.Report{
		Sentences:    a.TotalSentences(),
		Words:        a.TotalWords(),
		Syllables:    a.TotalSyllables(),
		ComplexWords: a.ComplexWords(),
		SMOG:         domain.InsufficientData,
		ScoredAt:     s.now(),
	}

	if flesch, err := FleschScore(a, s.precision); err == nil {
		report.Flesch = &flesch
	}
	if smog, err := SMOGScore(a, s.precision); err == nil {
		report.SMOG = smog
	}
	if s.language != nil && report.Words > 0 {
		if lang, ok := s.language.Detect(text); ok {
			report.Language = lang
		}
	}

	return report
}
