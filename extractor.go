package wikisum

// ExtractResult holds the article content extracted from a rendered page.
type ExtractResult struct {
	// Title is the displayed article title.
	Title string

	// ContentHTML is the article body markup, without site chrome.
	ContentHTML string
}

// Extractor isolates the article body from a fully rendered page.
type Extractor interface {
	// Extract processes a rendered page and returns its article content.
	// Returns EMALFORMED if the page holds no article body.
	Extract(html string) (*ExtractResult, error)
}
