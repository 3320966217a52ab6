package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/wikisum"
)

// Ensure LoggingArticleSource implements wikisum.ArticleSource.
var _ wikisum.ArticleSource = (*LoggingArticleSource)(nil)

// LoggingArticleSource wraps an ArticleSource with logging.
type LoggingArticleSource struct {
	next   wikisum.ArticleSource
	logger *slog.Logger
}

// NewLoggingArticleSource creates a new LoggingArticleSource.
func NewLoggingArticleSource(next wikisum.ArticleSource, logger *slog.Logger) *LoggingArticleSource {
	return &LoggingArticleSource{next: next, logger: logger}
}

// Sections delegates to the wrapped source and logs the section count.
func (s *LoggingArticleSource) Sections(ctx context.Context, ref wikisum.PageRef) (sections []wikisum.Section, err error) {
	defer func(begin time.Time) {
		s.logger.Info("sections",
			"url", ref.URL,
			"count", len(sections),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Sections(ctx, ref)
}
