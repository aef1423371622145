package handbook

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// The input should be the body of a section fragment (e.g., from a PageParser).
	// Returns the Markdown representation of the content.
	Convert(html string) (string, error)
}
