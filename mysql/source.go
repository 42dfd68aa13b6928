package mysql

import (
	"context"
	"database/sql"
	"strings"

	"github.com/fwojciec/sifter"
)

// Compile-time interface verification.
var _ sifter.SourceService = (*SourceService)(nil)

// SourceService implements sifter.SourceService against domain_memory.
type SourceService struct {
	db *DB
}

// NewSourceService creates a new SourceService.
func NewSourceService(db *DB) *SourceService {
	return &SourceService{db: db}
}

// FindSourceRecords retrieves records matching the filter, ordered by ID.
func (s *SourceService) FindSourceRecords(ctx context.Context, filter sifter.SourceFilter) ([]*sifter.SourceRecord, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT `id`, `member_id`, `category`, `key_field`, `value`, `structured_data` FROM `domain_memory` WHERE 1=1")
	appendSourceFilter(&query, &args, filter)
	query.WriteString(" ORDER BY `id` ASC")

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*sifter.SourceRecord
	for rows.Next() {
		var rec sifter.SourceRecord
		var key, title, payload sql.NullString

		if err := rows.Scan(&rec.ID, &rec.SubjectID, &rec.Category, &key, &title, &payload); err != nil {
			return nil, err
		}
		rec.Key = key.String
		rec.Title = title.String
		rec.Payload = payload.String

		records = append(records, &rec)
	}

	return records, rows.Err()
}

// CountSourceRecords returns the number of records matching the filter.
func (s *SourceService) CountSourceRecords(ctx context.Context, filter sifter.SourceFilter) (int, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT COUNT(*) FROM `domain_memory` WHERE 1=1")
	appendSourceFilter(&query, &args, filter)

	var n int
	if err := s.db.QueryRowContext(ctx, query.String(), args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// CountSourceCategories returns record counts grouped by category.
func (s *SourceService) CountSourceCategories(ctx context.Context) ([]sifter.CategoryCount, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT `category`, COUNT(*) FROM `domain_memory` GROUP BY `category` ORDER BY `category` ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []sifter.CategoryCount
	for rows.Next() {
		var c sifter.CategoryCount
		if err := rows.Scan(&c.Category, &c.Count); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}

	return counts, rows.Err()
}

// appendSourceFilter appends WHERE conditions for a source filter.
func appendSourceFilter(query *strings.Builder, args *[]any, filter sifter.SourceFilter) {
	if filter.Category != nil {
		query.WriteString(" AND `category` = ?")
		*args = append(*args, *filter.Category)
	}
	if filter.SubjectID != nil {
		query.WriteString(" AND `member_id` = ?")
		*args = append(*args, *filter.SubjectID)
	}
}
