// Package goquery implements wikisum.Extractor for rendered article pages
// using CSS selectors.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/wikisum"
)

// Selectors locating article parts on a rendered page.
const (
	TitleSelector   = "#firstHeading"
	ContentSelector = "#mw-content-text .mw-parser-output"
)

// chromeSelectors match elements inside the content container that belong
// to the site rather than the article.
var chromeSelectors = []string{
	".mw-editsection",
	"#toc",
	".toc",
	".mw-jump-link",
	"script",
	"noscript",
}

// Ensure Extractor implements wikisum.Extractor at compile time.
var _ wikisum.Extractor = (*Extractor)(nil)

// Extractor isolates the article body from a rendered wiki page.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the article title and the outer HTML of its parser
// output container with site chrome removed.
func (e *Extractor) Extract(html string) (*wikisum.ExtractResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, wikisum.Errorf(wikisum.EINVALID, "failed to parse HTML: %v", err)
	}

	content := doc.Find(ContentSelector).First()
	if content.Length() == 0 {
		return nil, wikisum.Errorf(wikisum.EMALFORMED, "no article content found")
	}
	for _, sel := range chromeSelectors {
		content.Find(sel).Remove()
	}

	body, err := goquery.OuterHtml(content)
	if err != nil {
		return nil, wikisum.Errorf(wikisum.EINTERNAL, "failed to render content: %v", err)
	}

	title := strings.TrimSpace(doc.Find(TitleSelector).First().Text())
	if title == "" {
		title = strings.TrimSpace(doc.Find("title").First().Text())
	}

	return &wikisum.ExtractResult{
		Title:       title,
		ContentHTML: body,
	}, nil
}
