package mysql_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/fwojciec/sifter"
	"github.com/fwojciec/sifter/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sourceColumns = []string{"id", "member_id", "category", "key_field", "value", "structured_data"}

func TestSourceService_FindSourceRecords(t *testing.T) {
	t.Parallel()

	t.Run("queries by category and scans rows", func(t *testing.T) {
		t.Parallel()

		db, mock := setupMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM `domain_memory` WHERE 1=1 AND `category` = ? ORDER BY `id` ASC")).
			WithArgs("blog_post").
			WillReturnRows(sqlmock.NewRows(sourceColumns).
				AddRow(int64(1), int64(999), "blog_post", "first-post", "First Post", `{"content":"<p>x</p>"}`).
				AddRow(int64(2), int64(999), "blog_post", nil, nil, nil))

		category := "blog_post"
		records, err := mysql.NewSourceService(db).FindSourceRecords(context.Background(), sifter.SourceFilter{Category: &category})

		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, int64(1), records[0].ID)
		assert.Equal(t, "first-post", records[0].Key)
		assert.Equal(t, "First Post", records[0].Title)
		assert.Equal(t, `{"content":"<p>x</p>"}`, records[0].Payload)
		assert.Empty(t, records[1].Title)
		assert.Empty(t, records[1].Payload)
	})

	t.Run("adds subject condition", func(t *testing.T) {
		t.Parallel()

		db, mock := setupMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("AND `category` = ? AND `member_id` = ?")).
			WithArgs("blog_post", int64(999)).
			WillReturnRows(sqlmock.NewRows(sourceColumns))

		category := "blog_post"
		subject := int64(999)
		records, err := mysql.NewSourceService(db).FindSourceRecords(context.Background(), sifter.SourceFilter{Category: &category, SubjectID: &subject})

		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("returns query error", func(t *testing.T) {
		t.Parallel()

		db, mock := setupMockDB(t)
		mock.ExpectQuery("SELECT").WillReturnError(errors.New("server has gone away"))

		_, err := mysql.NewSourceService(db).FindSourceRecords(context.Background(), sifter.SourceFilter{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "server has gone away")
	})
}

func TestSourceService_CountSourceRecords(t *testing.T) {
	t.Parallel()

	db, mock := setupMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM `domain_memory` WHERE 1=1 AND `category` = ? AND `member_id` = ?")).
		WithArgs("blog_post", int64(999)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

	category := "blog_post"
	subject := int64(999)
	n, err := mysql.NewSourceService(db).CountSourceRecords(context.Background(), sifter.SourceFilter{Category: &category, SubjectID: &subject})

	require.NoError(t, err)
	assert.Equal(t, 12, n)
}

func TestSourceService_CountSourceCategories(t *testing.T) {
	t.Parallel()

	db, mock := setupMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta("GROUP BY `category`")).
		WillReturnRows(sqlmock.NewRows([]string{"category", "count"}).
			AddRow("blog_post", 12).
			AddRow("entity", 4))

	counts, err := mysql.NewSourceService(db).CountSourceCategories(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []sifter.CategoryCount{
		{Category: "blog_post", Count: 12},
		{Category: "entity", Count: 4},
	}, counts)
}
