package scan_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fwojciec/wikisum"
	"github.com/fwojciec/wikisum/mock"
	"github.com/fwojciec/wikisum/scan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var noDelays = []time.Duration{time.Millisecond, time.Millisecond, time.Millisecond}

func TestFetchWithRetryDelays(t *testing.T) {
	t.Parallel()

	t.Run("returns first success", func(t *testing.T) {
		t.Parallel()

		calls := 0
		fetch := func(ctx context.Context, url string) (string, error) {
			calls++
			if calls < 3 {
				return "", errors.New("connection reset")
			}
			return "ok", nil
		}

		var retries []any
		logger := func(msg string, args ...any) { retries = append(retries, args...) }

		body, err := scan.FetchWithRetryDelays(context.Background(), "https://en.wikipedia.org/wiki/Rome", fetch, logger, noDelays)

		require.NoError(t, err)
		assert.Equal(t, "ok", body)
		assert.Equal(t, 3, calls)
		assert.Contains(t, retries, 2)
		assert.Contains(t, retries, 3)
	})

	t.Run("gives up after all attempts", func(t *testing.T) {
		t.Parallel()

		calls := 0
		fetch := func(ctx context.Context, url string) (string, error) {
			calls++
			return "", errors.New("connection reset")
		}

		_, err := scan.FetchWithRetryDelays(context.Background(), "u", fetch, nil, noDelays)

		require.EqualError(t, err, "connection reset")
		assert.Equal(t, 4, calls)
	})

	t.Run("does not retry coded errors", func(t *testing.T) {
		t.Parallel()

		calls := 0
		fetch := func(ctx context.Context, url string) (string, error) {
			calls++
			return "", wikisum.Errorf(wikisum.ENOTFOUND, "page not found")
		}

		_, err := scan.FetchWithRetryDelays(context.Background(), "u", fetch, nil, noDelays)

		require.Error(t, err)
		assert.Equal(t, wikisum.ENOTFOUND, wikisum.ErrorCode(err))
		assert.Equal(t, 1, calls)
	})

	t.Run("stops when the context is canceled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		fetch := func(ctx context.Context, url string) (string, error) {
			cancel()
			return "", errors.New("connection reset")
		}

		_, err := scan.FetchWithRetryDelays(ctx, "u", fetch, nil, []time.Duration{time.Hour})

		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestRetryFetcher(t *testing.T) {
	t.Parallel()

	t.Run("retries through the wrapped fetcher", func(t *testing.T) {
		t.Parallel()

		calls := 0
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				calls++
				if calls == 1 {
					return "", errors.New("timeout")
				}
				return "ok", nil
			},
		}

		body, err := scan.NewRetryFetcher(inner, noDelays, nil).Fetch(context.Background(), "u")

		require.NoError(t, err)
		assert.Equal(t, "ok", body)
		assert.Equal(t, 2, calls)
	})

	t.Run("close delegates", func(t *testing.T) {
		t.Parallel()

		closed := false
		inner := &mock.Fetcher{CloseFn: func() error { closed = true; return nil }}

		require.NoError(t, scan.NewRetryFetcher(inner, nil, nil).Close())
		assert.True(t, closed)
	})
}
