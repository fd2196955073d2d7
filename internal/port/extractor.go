package port

// TextExtractor turns raw file content into scoreable prose.
type TextExtractor interface {
	Extract(content string) (string, error)

	// Format names the input format, e.g. "markdown".
	Format() string
}
