package analyzer

import (
	"testing"
)

func TestSyllableEstimator_Estimate(t *testing.T) {
	tests := []struct {
		word     string
		expected int
	}{
		{"a", 1},
		{"e", 1},
		{"the", 1},
		{"on", 1},
		{"cat", 1},
		{"cake", 1},
		{"bath", 1},
		{"happy", 2},
		{"don't", 2},
		{"banana", 3},
		{"computer", 3},
		{"information", 3},
	}

	est := NewSyllableEstimator()
	for _, tt := range tests {
		if got := est.Estimate(tt.word); got != tt.expected {
			t.Errorf("Estimate(%q) = %d, want %d", tt.word, got, tt.expected)
		}
	}
}

func TestSyllableEstimator_Empty(t *testing.T) {
	if got := NewSyllableEstimator().Estimate(""); got != 0 {
		t.Errorf("expected 0 for empty word, got %d", got)
	}
}

func TestSyllableEstimator_AtLeastOne(t *testing.T) {
	words := []string{
		"x", "xx", "xxx", "rhythm", "strengths", "queue", "aeiou",
		"''", "'", "tion", "th", "eeeeee", "zzzzzzzzzz", "onomatopoeia",
	}

	est := NewSyllableEstimator()
	for _, w := range words {
		if got := est.Estimate(w); got < 1 {
			t.Errorf("Estimate(%q) = %d, want >= 1", w, got)
		}
	}
}

func TestSyllableEstimator_Trace(t *testing.T) {
	tests := []struct {
		word   string
		normal string
		marked string
	}{
		{"banana", "banana", "ban*an*a"},
		{"happy", "happy", "happ*y"},
		{"the", "t", "t"},
		{"nation", "naton", "nat*on"},
	}

	for _, tt := range tests {
		var gotWord, gotMarked string
		est := &SyllableEstimator{
			Trace: func(word, marked string) {
				gotWord, gotMarked = word, marked
			},
		}
		est.Estimate(tt.word)
		if gotWord != tt.normal {
			t.Errorf("Estimate(%q) traced word %q, want %q", tt.word, gotWord, tt.normal)
		}
		if gotMarked != tt.marked {
			t.Errorf("Estimate(%q) traced %q, want %q", tt.word, gotMarked, tt.marked)
		}
	}
}

func TestSyllableEstimator_TraceDoesNotChangeCount(t *testing.T) {
	plain := NewSyllableEstimator()
	traced := &SyllableEstimator{Trace: func(string, string) {}}

	for _, w := range []string{"readability", "syllable", "estimation", "happy", "a"} {
		if plain.Estimate(w) != traced.Estimate(w) {
			t.Errorf("trace changed the count for %q", w)
		}
	}
}

func TestNormalizeWord(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"cake", "cak"},
		{"nation", "naton"},
		{"statione", "staton"},
		{"bath", "bat"},
		{"bathe", "bat"},
		{"free", "fre"},
		{"e", ""},
	}

	for _, tt := range tests {
		if got := normalizeWord(tt.input); got != tt.expected {
			t.Errorf("normalizeWord(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestSyllableEnders_CoversAlphabet(t *testing.T) {
	for c := byte('a'); c <= 'z'; c++ {
		if followers, ok := endersOf(c); !ok || followers == "" {
			t.Errorf("missing ender row for %q", c)
		}
	}
	if _, ok := endersOf('\''); ok {
		t.Error("apostrophe must not have an ender row")
	}
}
