package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/wikisum"
	"github.com/fwojciec/wikisum/mock"
	wslog "github.com/fwojciec/wikisum/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingArticleSource_Sections(t *testing.T) {
	t.Parallel()

	ref := wikisum.PageRef{Language: "en", Slug: "Rome", Title: "Rome", URL: "https://en.wikipedia.org/wiki/Rome"}

	t.Run("logs section count and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.ArticleSource{
			SectionsFn: func(ctx context.Context, ref wikisum.PageRef) ([]wikisum.Section, error) {
				return []wikisum.Section{{Title: "Rome"}, {Title: "History"}}, nil
			},
		}

		src := wslog.NewLoggingArticleSource(inner, logger)
		sections, err := src.Sections(context.Background(), ref)

		require.NoError(t, err)
		assert.Len(t, sections, 2)
		output := buf.String()
		assert.Contains(t, output, "sections")
		assert.Contains(t, output, "url=https://en.wikipedia.org/wiki/Rome")
		assert.Contains(t, output, "count=2")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.ArticleSource{
			SectionsFn: func(ctx context.Context, ref wikisum.PageRef) ([]wikisum.Section, error) {
				return nil, errors.New("connection failed")
			},
		}

		src := wslog.NewLoggingArticleSource(inner, logger)
		_, err := src.Sections(context.Background(), ref)

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "count=0")
		assert.Contains(t, output, "err=\"connection failed\"")
	})
}
