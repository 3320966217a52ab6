package mock

import (
	"context"

	"github.com/fwojciec/wikisum"
)

var _ wikisum.ArticleSource = (*ArticleSource)(nil)

// ArticleSource is a mock implementation of wikisum.ArticleSource.
type ArticleSource struct {
	SectionsFn func(ctx context.Context, ref wikisum.PageRef) ([]wikisum.Section, error)
}

func (s *ArticleSource) Sections(ctx context.Context, ref wikisum.PageRef) ([]wikisum.Section, error) {
	return s.SectionsFn(ctx, ref)
}

var _ wikisum.StopwordService = (*StopwordService)(nil)

// StopwordService is a mock implementation of wikisum.StopwordService.
type StopwordService struct {
	LookupFn func(lang string) (string, wikisum.StopwordSet, bool)
}

func (s *StopwordService) Lookup(lang string) (string, wikisum.StopwordSet, bool) {
	return s.LookupFn(lang)
}

var _ wikisum.LanguageDetector = (*LanguageDetector)(nil)

// LanguageDetector is a mock implementation of wikisum.LanguageDetector.
type LanguageDetector struct {
	DetectFn func(text string) (string, bool)
}

func (d *LanguageDetector) Detect(text string) (string, bool) {
	return d.DetectFn(text)
}
