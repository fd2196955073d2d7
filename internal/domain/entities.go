package domain

import "time"

// InsufficientData is the SMOG value reported for inputs with fewer than
// SMOGMinSentences sentences.
const InsufficientData = -1.0

// SMOGMinSentences is the smallest sample SMOG is defined for.
const SMOGMinSentences = 30

// ComplexSyllables is the syllable count at which a word counts as complex.
const ComplexSyllables = 3

type Document struct {
	ID      string
	Path    string
	ModTime time.Time
	Format  string
}

// Analysis is the output of one segmentation pass over one normalized text.
// Syllables is parallel to Words.
type Analysis struct {
	Sentences []string
	Words     []string
	Syllables []int
}

func (a Analysis) TotalSentences() int { return len(a.Sentences) }

func (a Analysis) TotalWords() int { return len(a.Words) }

func (a Analysis) TotalSyllables() int {
	total := 0
	for _, n := range a.Syllables {
		total += n
	}
	return total
}

// ComplexWords counts words, not syllables, at or above ComplexSyllables.
func (a Analysis) ComplexWords() int {
	count := 0
	for _, n := range a.Syllables {
		if n >= ComplexSyllables {
			count++
		}
	}
	return count
}

// Report is the scored result for one text.
type Report struct {
	Path         string    `json:"path,omitempty"`
	Format       string    `json:"format,omitempty"`
	Sentences    int       `json:"sentences"`
	Words        int       `json:"words"`
	Syllables    int       `json:"syllables"`
	ComplexWords int       `json:"complex_words"`
	Flesch       *float64  `json:"flesch"` // nil when the text has no words or sentences
	SMOG         float64   `json:"smog"`   // InsufficientData below SMOGMinSentences
	Language     string    `json:"language,omitempty"`
	ScoredAt     time.Time `json:"scored_at"`
}

// SMOGDefined reports whether SMOG holds a computed grade.
func (r Report) SMOGDefined() bool {
	return r.SMOG != InsufficientData
}

// Stats aggregates reports across a scanned corpus.
type Stats struct {
	TotalDocs      int     `json:"total_docs"`
	TotalSentences int     `json:"total_sentences"`
	TotalWords     int     `json:"total_words"`
	TotalSyllables int     `json:"total_syllables"`
	MeanFlesch     float64 `json:"mean_flesch"`
	ScoredDocs     int     `json:"scored_docs"` // docs with a defined Flesch score
}
