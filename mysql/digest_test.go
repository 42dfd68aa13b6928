package mysql_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/fwojciec/sifter"
	"github.com/fwojciec/sifter/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const insertDigestSQL = "INSERT INTO `experience_memory`"

func TestDigestService_CreateDigest(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 2, 3, 4, 5, 6, 0, time.UTC)

	t.Run("inserts and commits in one transaction", func(t *testing.T) {
		t.Parallel()

		db, mock := setupMockDB(t)
		d := sifter.BuildDigest(sifter.DefaultDigestConfig(), "Post", "Body", now)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(insertDigestSQL)).
			WithArgs(int64(999), "insight", d.Content, 0.95, "transmission_digest", now, now).
			WillReturnResult(sqlmock.NewResult(42, 1))
		mock.ExpectCommit()

		err := mysql.NewDigestService(db).CreateDigest(context.Background(), d)

		require.NoError(t, err)
		assert.Equal(t, int64(42), d.ID)
	})

	t.Run("rolls back when insert fails", func(t *testing.T) {
		t.Parallel()

		db, mock := setupMockDB(t)
		d := sifter.BuildDigest(sifter.DefaultDigestConfig(), "Post", "Body", now)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(insertDigestSQL)).
			WillReturnError(errors.New("Error 1406: Data too long for column 'content'"))
		mock.ExpectRollback()

		err := mysql.NewDigestService(db).CreateDigest(context.Background(), d)

		require.Error(t, err)
		assert.Zero(t, d.ID)
	})

	t.Run("returns error when commit fails", func(t *testing.T) {
		t.Parallel()

		db, mock := setupMockDB(t)
		d := sifter.BuildDigest(sifter.DefaultDigestConfig(), "Post", "Body", now)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(insertDigestSQL)).
			WillReturnResult(sqlmock.NewResult(7, 1))
		mock.ExpectCommit().WillReturnError(errors.New("lock wait timeout"))

		err := mysql.NewDigestService(db).CreateDigest(context.Background(), d)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to commit digest")
		assert.Zero(t, d.ID)
	})

	t.Run("validates before touching the database", func(t *testing.T) {
		t.Parallel()

		db, _ := setupMockDB(t)

		err := mysql.NewDigestService(db).CreateDigest(context.Background(), &sifter.Digest{})

		require.Error(t, err)
		assert.Equal(t, sifter.EINVALID, sifter.ErrorCode(err))
	})
}

func TestDigestService_CountDigests(t *testing.T) {
	t.Parallel()

	db, mock := setupMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM `experience_memory` WHERE 1=1 AND `member_id` = ?")).
		WithArgs(int64(999)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	subject := int64(999)
	n, err := mysql.NewDigestService(db).CountDigests(context.Background(), sifter.DigestFilter{SubjectID: &subject})

	require.NoError(t, err)
	assert.Equal(t, 3, n)
}
