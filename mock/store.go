package mock

import (
	"context"

	"github.com/fwojciec/wikisum"
)

var _ wikisum.ReportStore = (*ReportStore)(nil)

// ReportStore is a mock implementation of wikisum.ReportStore.
type ReportStore struct {
	SaveFn   func(ctx context.Context, r *wikisum.Report) error
	CommitFn func() error
	AbortFn  func() error
}

func (s *ReportStore) Save(ctx context.Context, r *wikisum.Report) error {
	return s.SaveFn(ctx, r)
}

func (s *ReportStore) Commit() error {
	return s.CommitFn()
}

func (s *ReportStore) Abort() error {
	return s.AbortFn()
}
