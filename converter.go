package showcase

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms an HTML fragment, such as a page description,
	// into Markdown. Empty input yields empty output.
	Convert(html string) (string, error)
}
