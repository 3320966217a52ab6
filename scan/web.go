package scan

import (
	"context"

	"github.com/fwojciec/wikisum"
	"golang.org/x/net/html"
)

var _ wikisum.ArticleSource = (*WebSource)(nil)

// WebSource reads an article from its rendered page.
type WebSource struct {
	Fetcher   wikisum.Fetcher
	Extractor wikisum.Extractor
}

// Sections fetches the article page, isolates its body and segments it.
// The lead carries the displayed title, which follows redirects.
func (s *WebSource) Sections(ctx context.Context, ref wikisum.PageRef) ([]wikisum.Section, error) {
	page, err := s.Fetcher.Fetch(ctx, ref.ArticleURL())
	if err != nil {
		return nil, err
	}

	extracted, err := s.Extractor.Extract(page)
	if err != nil {
		return nil, err
	}

	title := extracted.Title
	if title == "" {
		title = ref.Title
	}
	return wikisum.Segment(html.UnescapeString(extracted.ContentHTML), title)
}
