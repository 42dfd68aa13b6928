package sifter

import "context"

// CategoryBlogPost is the source category holding ingested blog posts.
const CategoryBlogPost = "blog_post"

// SourceRecord represents a row of domain memory. Blog posts carry their
// title in Title and a JSON payload with an HTML "content" field in Payload.
type SourceRecord struct {
	ID        int64  `json:"id"`
	SubjectID int64  `json:"subjectId"`
	Category  string `json:"category"`
	Key       string `json:"key"`
	Title     string `json:"title"`
	Payload   string `json:"payload"`
}

// SourceFilter represents a filter for FindSourceRecords and CountSourceRecords.
type SourceFilter struct {
	Category  *string `json:"category"`
	SubjectID *int64  `json:"subjectId"`
}

// CategoryCount holds the number of source records in a category.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// SourceService represents read access to domain memory.
type SourceService interface {
	// FindSourceRecords retrieves records matching the filter, ordered by ID.
	FindSourceRecords(ctx context.Context, filter SourceFilter) ([]*SourceRecord, error)

	// CountSourceRecords returns the number of records matching the filter.
	CountSourceRecords(ctx context.Context, filter SourceFilter) (int, error)

	// CountSourceCategories returns record counts grouped by category,
	// ordered by category name.
	CountSourceCategories(ctx context.Context) ([]CategoryCount, error)
}
