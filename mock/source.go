package mock

import (
	"context"

	"github.com/fwojciec/sifter"
)

var _ sifter.SourceService = (*SourceService)(nil)

// SourceService is a mock implementation of sifter.SourceService.
type SourceService struct {
	FindSourceRecordsFn     func(ctx context.Context, filter sifter.SourceFilter) ([]*sifter.SourceRecord, error)
	CountSourceRecordsFn    func(ctx context.Context, filter sifter.SourceFilter) (int, error)
	CountSourceCategoriesFn func(ctx context.Context) ([]sifter.CategoryCount, error)
}

func (s *SourceService) FindSourceRecords(ctx context.Context, filter sifter.SourceFilter) ([]*sifter.SourceRecord, error) {
	return s.FindSourceRecordsFn(ctx, filter)
}

func (s *SourceService) CountSourceRecords(ctx context.Context, filter sifter.SourceFilter) (int, error) {
	return s.CountSourceRecordsFn(ctx, filter)
}

func (s *SourceService) CountSourceCategories(ctx context.Context) ([]sifter.CategoryCount, error) {
	return s.CountSourceCategoriesFn(ctx)
}
