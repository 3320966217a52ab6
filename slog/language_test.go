package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/fwojciec/wikisum"
	"github.com/fwojciec/wikisum/mock"
	wslog "github.com/fwojciec/wikisum/slog"
	"github.com/stretchr/testify/assert"
)

func TestLoggingStopwordService_Lookup(t *testing.T) {
	t.Parallel()

	t.Run("warns on fallback", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.StopwordService{
			LookupFn: func(lang string) (string, wikisum.StopwordSet, bool) {
				return "english", wikisum.NewStopwordSet("the"), false
			},
		}

		svc := wslog.NewLoggingStopwordService(inner, logger)
		corpus, set, ok := svc.Lookup("xx")

		assert.False(t, ok)
		assert.Equal(t, "english", corpus)
		assert.True(t, set.Contains("the"))
		output := buf.String()
		assert.Contains(t, output, "level=WARN")
		assert.Contains(t, output, "language=xx")
		assert.Contains(t, output, "corpus=english")
	})

	t.Run("logs known languages at debug level only", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		inner := &mock.StopwordService{
			LookupFn: func(lang string) (string, wikisum.StopwordSet, bool) {
				return "german", wikisum.NewStopwordSet("und", "der"), true
			},
		}

		wslog.NewLoggingStopwordService(inner, logger).Lookup("de")

		output := buf.String()
		assert.Contains(t, output, "level=DEBUG")
		assert.Contains(t, output, "words=2")
	})

	t.Run("silent for known languages at info level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.StopwordService{
			LookupFn: func(lang string) (string, wikisum.StopwordSet, bool) {
				return "german", wikisum.NewStopwordSet("und"), true
			},
		}

		wslog.NewLoggingStopwordService(inner, logger).Lookup("de")

		assert.Empty(t, buf.String())
	})
}

func TestLoggingLanguageDetector_Detect(t *testing.T) {
	t.Parallel()

	t.Run("logs detected language", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.LanguageDetector{
			DetectFn: func(text string) (string, bool) { return "sv", true },
		}

		lang, ok := wslog.NewLoggingLanguageDetector(inner, logger).Detect("Stockholm är Sveriges huvudstad")

		assert.True(t, ok)
		assert.Equal(t, "sv", lang)
		output := buf.String()
		assert.Contains(t, output, "language detection")
		assert.Contains(t, output, "language=sv")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs unknown language", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.LanguageDetector{
			DetectFn: func(text string) (string, bool) { return "", false },
		}

		_, ok := wslog.NewLoggingLanguageDetector(inner, logger).Detect("???")

		assert.False(t, ok)
		assert.Contains(t, buf.String(), "language=(unknown)")
	})
}
