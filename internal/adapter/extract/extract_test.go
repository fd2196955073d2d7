package extract

import (
	"strings"
	"testing"
)

func TestForPath(t *testing.T) {
	tests := []struct {
		path   string
		format string
	}{
		{"notes.md", "markdown"},
		{"README.MARKDOWN", "markdown"},
		{"index.html", "html"},
		{"page.HTM", "html"},
		{"essay.txt", "text"},
		{"no-extension", "text"},
	}

	for _, tt := range tests {
		if got := ForPath(tt.path).Format(); got != tt.format {
			t.Errorf("ForPath(%q).Format() = %s, want %s", tt.path, got, tt.format)
		}
	}
}

func TestPlain_Passthrough(t *testing.T) {
	in := "Line one.\nLine two."
	got, err := NewPlain().Extract(in)
	if err != nil {
		t.Fatal(err)
	}
	if got != in {
		t.Errorf("got %q, want %q", got, in)
	}
}

func TestMarkdown_Extract(t *testing.T) {
	src := "# Title Heading\n\n" +
		"First paragraph with *emphasis* and a [link](https://example.com).\n" +
		"Second line.\n\n" +
		"- item one.\n" +
		"- item `two`.\n\n" +
		"```go\ncode here.\n```\n\n" +
		"| a | b |\n" +
		"|---|---|\n"

	got, err := NewMarkdown().Extract(src)
	if err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{
		"First paragraph with emphasis and a link.",
		"Second line.",
		"item one.",
		"item two.",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in %q", want, got)
		}
	}
	for _, unwanted := range []string{"Title", "code here", "|", "*", "https://"} {
		if strings.Contains(got, unwanted) {
			t.Errorf("did not expect %q in %q", unwanted, got)
		}
	}
}

func TestMarkdown_Empty(t *testing.T) {
	got, err := NewMarkdown().Extract("")
	if err != nil {
		t.Fatal(err)
	}
	if got != "" {
		t.Errorf("expected empty output, got %q", got)
	}
}

func TestHTML_Extract(t *testing.T) {
	src := `<html><head><title>Ignored</title><style>p { color: red; }</style></head>
<body>
<h1>Heading</h1>
<p>The cat sat
   on the mat.</p>
<script>var x = "not prose";</script>
<ul>
  <li>First item.
    <ul><li>Nested item.</li></ul>
  </li>
  <li><p>Item paragraph.</p></li>
</ul>
</body></html>`

	got, err := NewHTML().Extract(src)
	if err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(got, "\n")
	counts := map[string]int{}
	for _, l := range lines {
		counts[l]++
	}

	for _, want := range []string{"The cat sat on the mat.", "First item.", "Nested item.", "Item paragraph."} {
		if counts[want] != 1 {
			t.Errorf("expected %q exactly once in %q", want, lines)
		}
	}
	for _, unwanted := range []string{"not prose", "color", "Heading", "Ignored"} {
		if strings.Contains(got, unwanted) {
			t.Errorf("did not expect %q in %q", unwanted, got)
		}
	}
}

func TestHTML_FallbackToBody(t *testing.T) {
	got, err := NewHTML().Extract("<html><body><div>Just a div.</div></body></html>")
	if err != nil {
		t.Fatal(err)
	}
	if got != "Just a div." {
		t.Errorf("got %q, want %q", got, "Just a div.")
	}
}
