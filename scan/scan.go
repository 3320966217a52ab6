// Package scan orchestrates summarizing one article: sourcing its sections,
// choosing stop words, and summarizing each section.
package scan

import (
	"context"

	"github.com/fwojciec/wikisum"
	"golang.org/x/sync/errgroup"
)

// Scanner produces the report for one article.
type Scanner struct {
	Source    wikisum.ArticleSource
	Stopwords wikisum.StopwordService

	// Detector, if set, picks stop words for pages whose wiki language has
	// no corpus.
	Detector wikisum.LanguageDetector

	TieMode wikisum.TieMode

	// Concurrency bounds parallel section summaries. Values below 1 mean
	// sequential processing.
	Concurrency int
}

// Scan sources the article's sections and summarizes each one. Section
// reports keep document order regardless of Concurrency.
func (s *Scanner) Scan(ctx context.Context, ref wikisum.PageRef) (*wikisum.Report, error) {
	sections, err := s.Source.Sections(ctx, ref)
	if err != nil {
		return nil, err
	}

	corpus, set := s.stopwords(ref.Language, sections)
	opts := wikisum.SummaryOptions{
		BaseURL:   ref.URL,
		WikiHost:  ref.WikiHost(),
		Stopwords: set,
		TieMode:   s.TieMode,
	}

	concurrency := s.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}

	reports := make([]wikisum.SectionReport, len(sections))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, section := range sections {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			reports[i] = wikisum.SummarizeSection(section, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &wikisum.Report{
		Title:    ref.Title,
		URL:      ref.URL,
		Language: ref.Language,
		Corpus:   corpus,
		Sections: reports,
	}, nil
}

// stopwords resolves the stop-word set for lang. When lang has no corpus
// and a Detector is configured, the lead text decides instead.
func (s *Scanner) stopwords(lang string, sections []wikisum.Section) (string, wikisum.StopwordSet) {
	corpus, set, ok := s.Stopwords.Lookup(lang)
	if ok || s.Detector == nil || len(sections) == 0 {
		return corpus, set
	}

	detected, found := s.Detector.Detect(wikisum.Clean(sections[0].Body))
	if !found {
		return corpus, set
	}
	if c, st, ok := s.Stopwords.Lookup(detected); ok {
		return c, st
	}
	return corpus, set
}
