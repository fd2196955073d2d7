package extract

import (
	"path/filepath"
	"strings"

	"readability/internal/port"
)

// ForPath returns the extractor for a file, chosen by extension.
func ForPath(path string) port.TextExtractor {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return NewMarkdown()
	case ".html", ".htm":
		return NewHTML()
	default:
		return NewPlain()
	}
}

// Plain passes text through unchanged.
type Plain struct{}

func NewPlain() *Plain { return &Plain{} }

func (p *Plain) Extract(content string) (string, error) { return content, nil }

func (p *Plain) Format() string { return "text" }
