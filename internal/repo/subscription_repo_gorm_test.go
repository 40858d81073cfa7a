package repo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UnicAcademy-01/stemgurukul-backend/internal/domain"
)

func TestSubscriptionRepo_Upsert(t *testing.T) {
	t.Run("first subscribe creates the row", func(t *testing.T) {
		db := setupTestDB(t)
		r := NewSubscriptionRepo(db)

		rec, err := r.Upsert(context.Background(), "ann@x.com", true)
		require.NoError(t, err)
		assert.NotEmpty(t, rec.SubscribeID)
		assert.Equal(t, "ann@x.com", rec.Email)
		assert.True(t, rec.Subscribed)
		assert.WithinDuration(t, rec.CreatedAt, rec.UpdatedAt, time.Second)
	})

	t.Run("repeat with same arguments converges to one unchanged row", func(t *testing.T) {
		db := setupTestDB(t)
		r := NewSubscriptionRepo(db)
		ctx := context.Background()

		first, err := r.Upsert(ctx, "ann@x.com", true)
		require.NoError(t, err)

		time.Sleep(10 * time.Millisecond)

		second, err := r.Upsert(ctx, "ann@x.com", true)
		require.NoError(t, err)

		assert.Equal(t, first.SubscribeID, second.SubscribeID)
		assert.True(t, second.CreatedAt.Equal(first.CreatedAt), "created_at must not move")
		assert.False(t, second.UpdatedAt.Before(first.UpdatedAt), "updated_at must not decrease")

		var n int64
		require.NoError(t, db.Model(&domain.Subscription{}).Count(&n).Error)
		assert.Equal(t, int64(1), n)
	})

	t.Run("resubscribe flips the flag in place", func(t *testing.T) {
		db := setupTestDB(t)
		r := NewSubscriptionRepo(db)
		ctx := context.Background()

		first, err := r.Upsert(ctx, "ann@x.com", true)
		require.NoError(t, err)

		off, err := r.Upsert(ctx, "ann@x.com", false)
		require.NoError(t, err)
		assert.Equal(t, first.SubscribeID, off.SubscribeID)
		assert.False(t, off.Subscribed)

		on, err := r.Upsert(ctx, "ann@x.com", true)
		require.NoError(t, err)
		assert.Equal(t, first.SubscribeID, on.SubscribeID)
		assert.True(t, on.Subscribed)
	})

	t.Run("case and whitespace variants collapse to one row", func(t *testing.T) {
		db := setupTestDB(t)
		r := NewSubscriptionRepo(db)
		ctx := context.Background()

		a, err := r.Upsert(ctx, "  A@B.com ", true)
		require.NoError(t, err)
		assert.Equal(t, "a@b.com", a.Email)

		b, err := r.Upsert(ctx, "a@b.com", false)
		require.NoError(t, err)
		assert.Equal(t, a.SubscribeID, b.SubscribeID)

		var n int64
		require.NoError(t, db.Model(&domain.Subscription{}).Count(&n).Error)
		assert.Equal(t, int64(1), n)
	})
}
