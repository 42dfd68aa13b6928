package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/sifter"
)

// Ensure LoggingDigestService implements sifter.DigestService.
var _ sifter.DigestService = (*LoggingDigestService)(nil)

// LoggingDigestService wraps a DigestService with debug logging.
type LoggingDigestService struct {
	next   sifter.DigestService
	logger *slog.Logger
}

// NewLoggingDigestService creates a new LoggingDigestService.
func NewLoggingDigestService(next sifter.DigestService, logger *slog.Logger) *LoggingDigestService {
	return &LoggingDigestService{next: next, logger: logger}
}

// CreateDigest delegates to the wrapped service and logs the insert.
func (s *LoggingDigestService) CreateDigest(ctx context.Context, d *sifter.Digest) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("create digest",
			"id", d.ID,
			"subject", d.SubjectID,
			"chars", len([]rune(d.Content)),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateDigest(ctx, d)
}

// CountDigests delegates to the wrapped service and logs the count.
func (s *LoggingDigestService) CountDigests(ctx context.Context, filter sifter.DigestFilter) (n int, err error) {
	defer func(begin time.Time) {
		s.logger.Info("count digests",
			filterAttrs(filter.Category, filter.SubjectID),
			"count", n,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CountDigests(ctx, filter)
}
