package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/sifter"
	"github.com/fwojciec/sifter/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDigestService_CreateDigest(t *testing.T) {
	t.Parallel()

	t.Run("inserts digest and assigns ID", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewDigestService(db)
		ctx := context.Background()
		now := time.Date(2025, 2, 3, 4, 5, 6, 0, time.UTC)

		d := sifter.BuildDigest(sifter.DefaultDigestConfig(), "Post", "Body", now)
		require.NoError(t, svc.CreateDigest(ctx, d))

		assert.NotZero(t, d.ID)

		var memberID int64
		var memoryType, content, category, createdAt, lastRecalled string
		var confidence float64
		err := db.QueryRowContext(ctx, `
			SELECT member_id, memory_type, content, confidence, category, created_at, last_recalled
			FROM experience_memory WHERE id = ?
		`, d.ID).Scan(&memberID, &memoryType, &content, &confidence, &category, &createdAt, &lastRecalled)
		require.NoError(t, err)

		assert.Equal(t, int64(999), memberID)
		assert.Equal(t, "insight", memoryType)
		assert.Equal(t, "LUX TRANSMISSION DIGEST: 'Post'\n\nBody", content)
		assert.InDelta(t, 0.95, confidence, 1e-9)
		assert.Equal(t, "transmission_digest", category)
		assert.Equal(t, "2025-02-03T04:05:06Z", createdAt)
		assert.Equal(t, createdAt, lastRecalled)
	})

	t.Run("returns error for invalid digest", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewDigestService(db)

		err := svc.CreateDigest(context.Background(), &sifter.Digest{})

		require.Error(t, err)
		assert.Equal(t, sifter.EINVALID, sifter.ErrorCode(err))
	})

	t.Run("each digest is committed independently", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewDigestService(db)
		ctx := context.Background()
		now := time.Now().UTC()

		require.NoError(t, svc.CreateDigest(ctx, sifter.BuildDigest(sifter.DefaultDigestConfig(), "A", "a", now)))
		require.Error(t, svc.CreateDigest(ctx, &sifter.Digest{MemoryType: "insight"}))
		require.NoError(t, svc.CreateDigest(ctx, sifter.BuildDigest(sifter.DefaultDigestConfig(), "B", "b", now)))

		n, err := svc.CountDigests(ctx, sifter.DigestFilter{})
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})
}

func TestDigestService_CountDigests(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	svc := sqlite.NewDigestService(db)
	ctx := context.Background()
	now := time.Now().UTC()

	other := sifter.DefaultDigestConfig()
	other.SubjectID = 1

	require.NoError(t, svc.CreateDigest(ctx, sifter.BuildDigest(sifter.DefaultDigestConfig(), "A", "a", now)))
	require.NoError(t, svc.CreateDigest(ctx, sifter.BuildDigest(sifter.DefaultDigestConfig(), "B", "b", now)))
	require.NoError(t, svc.CreateDigest(ctx, sifter.BuildDigest(other, "C", "c", now)))

	subject := int64(999)
	n, err := svc.CountDigests(ctx, sifter.DigestFilter{SubjectID: &subject})

	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
