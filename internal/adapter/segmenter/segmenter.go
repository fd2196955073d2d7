package segmenter

import (
	"fmt"
	"regexp"

	"readability/internal/port"
)

// Strategy names accepted by New.
const (
	UAX29       = "uax29"
	Punctuation = "punctuation"
)

var whitespaceRun = regexp.MustCompile(`[ \t\n\v\f\r]+`)

// CollapseWhitespace replaces every run of whitespace with a single space.
func CollapseWhitespace(text string) string {
	return whitespaceRun.ReplaceAllString(text, " ")
}

// New returns the segmenter for the named strategy.
func New(strategy string) (port.Segmenter, error) {
	switch strategy {
	case UAX29, "":
		return NewUAX29(), nil
	case Punctuation:
		return NewPunctuation(), nil
	default:
		return nil, fmt.Errorf("unknown sentence segmenter: %s", strategy)
	}
}
