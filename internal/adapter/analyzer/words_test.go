package analyzer

import (
	"reflect"
	"strings"
	"testing"

	"readability/internal/adapter/segmenter"
)

func newExtractor() *WordExtractor {
	return NewWordExtractor(segmenter.NewUAX29())
}

func TestWordExtractor_RoundTrip(t *testing.T) {
	got := newExtractor().Extract("The cat sat on the mat. It was happy.")
	expected := []string{"the", "cat", "sat", "on", "the", "mat", "it", "was", "happy"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("got %q, want %q", got, expected)
	}
}

func TestWordExtractor_Apostrophes(t *testing.T) {
	got := newExtractor().Extract("Don't stop, it's 'fine'.")
	expected := []string{"don't", "stop", "it's", "'fine'"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("got %q, want %q", got, expected)
	}
}

func TestWordExtractor_NonLetters(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"hello-world", []string{"hello", "world"}},
		{"route66 rocks", []string{"route", "rocks"}},
		{"snake_case_name", []string{"snake", "case", "name"}},
		{"CamelCase", []string{"camelcase"}},
		{"café au lait", []string{"caf", "au", "lait"}},
		{"123 456", nil},
		{"...!!!", nil},
		{"", nil},
	}

	for _, tt := range tests {
		got := newExtractor().Extract(tt.input)
		if !reflect.DeepEqual(got, tt.expected) {
			t.Errorf("Extract(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestWordExtractor_TokensStopAtSentenceBoundary(t *testing.T) {
	// The sentences are adjacent with no separator between the last letter
	// of one and the first letter of the next.
	got := newExtractor().FromSentences([]string{"Ends with abc", "def starts here"})
	expected := []string{"ends", "with", "abc", "def", "starts", "here"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("got %q, want %q", got, expected)
	}
}

func TestWordExtractor_WhitespaceInsensitive(t *testing.T) {
	compact := "The cat sat. It was happy! Was it?"
	spaced := "  The \t cat\n\nsat.   It   was\r\nhappy!\n\n\nWas  it?  "

	a := newExtractor().Extract(compact)
	b := newExtractor().Extract(spaced)
	if len(a) != len(b) {
		t.Errorf("word count changed with whitespace: %d vs %d", len(a), len(b))
	}
	if !reflect.DeepEqual(a, b) {
		t.Errorf("tokens changed with whitespace: %q vs %q", a, b)
	}
}

func TestWordExtractor_ExtractMatchesFromSentences(t *testing.T) {
	text := "Mr. Smith went home. The value is 3.14 today! Isn't it?"
	seg := segmenter.NewUAX29()
	ext := NewWordExtractor(seg)

	direct := ext.Extract(text)
	viaSentences := ext.FromSentences(seg.Segment(text))
	if !reflect.DeepEqual(direct, viaSentences) {
		t.Errorf("Extract = %q, FromSentences = %q", direct, viaSentences)
	}
}

func TestWordExtractor_NoEmptyTokens(t *testing.T) {
	got := newExtractor().Extract("a,,b  ;; c--d. ''")
	for _, w := range got {
		if w == "" {
			t.Fatalf("empty token in %q", got)
		}
	}
	if strings.Join(got, " ") != "a b c d ''" {
		t.Errorf("got %q", got)
	}
}
