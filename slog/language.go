package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/wikisum"
)

// Ensure decorators implement their interfaces.
var (
	_ wikisum.StopwordService  = (*LoggingStopwordService)(nil)
	_ wikisum.LanguageDetector = (*LoggingLanguageDetector)(nil)
)

// LoggingStopwordService wraps a StopwordService and warns on fallbacks.
type LoggingStopwordService struct {
	next   wikisum.StopwordService
	logger *slog.Logger
}

// NewLoggingStopwordService creates a new LoggingStopwordService.
func NewLoggingStopwordService(next wikisum.StopwordService, logger *slog.Logger) *LoggingStopwordService {
	return &LoggingStopwordService{next: next, logger: logger}
}

// Lookup delegates to the wrapped service. Unsupported languages are
// logged at warning level.
func (s *LoggingStopwordService) Lookup(lang string) (string, wikisum.StopwordSet, bool) {
	corpus, set, ok := s.next.Lookup(lang)
	if !ok {
		s.logger.Warn("unsupported language, using fallback stop words",
			"language", lang,
			"corpus", corpus,
		)
		return corpus, set, ok
	}
	s.logger.Debug("stop words",
		"language", lang,
		"corpus", corpus,
		"words", set.Len(),
	)
	return corpus, set, ok
}

// LoggingLanguageDetector wraps a LanguageDetector with logging.
type LoggingLanguageDetector struct {
	next   wikisum.LanguageDetector
	logger *slog.Logger
}

// NewLoggingLanguageDetector creates a new LoggingLanguageDetector.
func NewLoggingLanguageDetector(next wikisum.LanguageDetector, logger *slog.Logger) *LoggingLanguageDetector {
	return &LoggingLanguageDetector{next: next, logger: logger}
}

// Detect delegates to the wrapped detector and logs the outcome.
func (d *LoggingLanguageDetector) Detect(text string) (string, bool) {
	begin := time.Now()
	lang, ok := d.next.Detect(text)
	name := lang
	if !ok {
		name = "(unknown)"
	}
	d.logger.Info("language detection",
		"language", name,
		"duration", time.Since(begin),
	)
	return lang, ok
}
