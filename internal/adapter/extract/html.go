package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// HTML extracts prose from paragraphs and list items. Scripts, styles and
// nested lists inside an item are not counted twice.
type HTML struct{}

func NewHTML() *HTML { return &HTML{} }

func (h *HTML) Format() string { return "html" }

// Extract returns one line of plain text per prose block. Documents without
// paragraphs or list items fall back to the body text.
func (h *HTML) Extract(content string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return "", fmt.Errorf("failed to parse html: %w", err)
	}

	doc.Find("script, style, noscript, template").Remove()

	var blocks []string
	doc.Find("p, li").Each(func(_ int, s *goquery.Selection) {
		sel := s
		if goquery.NodeName(s) == "li" {
			// Paragraphs and sub-lists inside an item are visited on their own.
			sel = s.Clone()
			sel.Find("p, ul, ol").Remove()
		}
		if text := strings.Join(strings.Fields(sel.Text()), " "); text != "" {
			blocks = append(blocks, text)
		}
	})

	if len(blocks) == 0 {
		body := strings.Join(strings.Fields(doc.Find("body").Text()), " ")
		return body, nil
	}

	return strings.Join(blocks, "\n"), nil
}
