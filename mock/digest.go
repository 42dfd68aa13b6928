package mock

import (
	"context"

	"github.com/fwojciec/sifter"
)

var _ sifter.DigestService = (*DigestService)(nil)

// DigestService is a mock implementation of sifter.DigestService.
type DigestService struct {
	CreateDigestFn func(ctx context.Context, d *sifter.Digest) error
	CountDigestsFn func(ctx context.Context, filter sifter.DigestFilter) (int, error)
}

func (s *DigestService) CreateDigest(ctx context.Context, d *sifter.Digest) error {
	return s.CreateDigestFn(ctx, d)
}

func (s *DigestService) CountDigests(ctx context.Context, filter sifter.DigestFilter) (int, error) {
	return s.CountDigestsFn(ctx, filter)
}
