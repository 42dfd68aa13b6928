// Package slog provides logging decorators for sifter services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/sifter"
)

// Ensure LoggingSourceService implements sifter.SourceService.
var _ sifter.SourceService = (*LoggingSourceService)(nil)

// LoggingSourceService wraps a SourceService with debug logging.
type LoggingSourceService struct {
	next   sifter.SourceService
	logger *slog.Logger
}

// NewLoggingSourceService creates a new LoggingSourceService.
func NewLoggingSourceService(next sifter.SourceService, logger *slog.Logger) *LoggingSourceService {
	return &LoggingSourceService{next: next, logger: logger}
}

// FindSourceRecords delegates to the wrapped service and logs the query.
func (s *LoggingSourceService) FindSourceRecords(ctx context.Context, filter sifter.SourceFilter) (records []*sifter.SourceRecord, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find source records",
			filterAttrs(filter.Category, filter.SubjectID),
			"count", len(records),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindSourceRecords(ctx, filter)
}

// CountSourceRecords delegates to the wrapped service and logs the count.
func (s *LoggingSourceService) CountSourceRecords(ctx context.Context, filter sifter.SourceFilter) (n int, err error) {
	defer func(begin time.Time) {
		s.logger.Info("count source records",
			filterAttrs(filter.Category, filter.SubjectID),
			"count", n,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CountSourceRecords(ctx, filter)
}

// CountSourceCategories delegates to the wrapped service.
func (s *LoggingSourceService) CountSourceCategories(ctx context.Context) (counts []sifter.CategoryCount, err error) {
	defer func(begin time.Time) {
		s.logger.Info("count source categories",
			"categories", len(counts),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CountSourceCategories(ctx)
}

// filterAttrs groups the optional filter fields that are set.
func filterAttrs(category *string, subjectID *int64) slog.Attr {
	var attrs []any
	if category != nil {
		attrs = append(attrs, slog.String("category", *category))
	}
	if subjectID != nil {
		attrs = append(attrs, slog.Int64("subject", *subjectID))
	}
	return slog.Group("filter", attrs...)
}
