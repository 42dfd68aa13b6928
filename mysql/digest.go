package mysql

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/sifter"
)

// Compile-time interface verification.
var _ sifter.DigestService = (*DigestService)(nil)

// DigestService implements sifter.DigestService against experience_memory.
type DigestService struct {
	db *DB
}

// NewDigestService creates a new DigestService.
func NewDigestService(db *DB) *DigestService {
	return &DigestService{db: db}
}

// CreateDigest inserts a digest in its own transaction and sets its ID.
// The context column is left NULL.
func (s *DigestService) CreateDigest(ctx context.Context, d *sifter.Digest) error {
	if err := d.Validate(); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, "INSERT INTO `experience_memory` "+
		"(`member_id`, `memory_type`, `content`, `confidence`, `category`, `created_at`, `last_recalled`) "+
		"VALUES (?, ?, ?, ?, ?, ?, ?)",
		d.SubjectID, d.MemoryType, d.Content, d.Confidence, d.Category, d.CreatedAt.UTC(), d.LastRecalled.UTC())
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit digest: %w", err)
	}

	d.ID = id
	return nil
}

// CountDigests returns the number of digests matching the filter.
func (s *DigestService) CountDigests(ctx context.Context, filter sifter.DigestFilter) (int, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT COUNT(*) FROM `experience_memory` WHERE 1=1")
	if filter.SubjectID != nil {
		query.WriteString(" AND `member_id` = ?")
		args = append(args, *filter.SubjectID)
	}
	if filter.Category != nil {
		query.WriteString(" AND `category` = ?")
		args = append(args, *filter.Category)
	}

	var n int
	if err := s.db.QueryRowContext(ctx, query.String(), args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
