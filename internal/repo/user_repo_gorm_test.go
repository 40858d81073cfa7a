package repo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/UnicAcademy-01/stemgurukul-backend/internal/domain"
)

// setupTestDB prepares an in-memory SQLite database with both tables.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&domain.User{}, &domain.Subscription{})
	require.NoError(t, err, "failed to migrate tables")

	return db
}

func TestUserRepo_Create(t *testing.T) {
	t.Run("fresh email succeeds and mints an id", func(t *testing.T) {
		db := setupTestDB(t)
		r := NewUserRepo(db)

		u := &domain.User{Name: "Ann", Mobile: "555", Email: "ann@x.com", PasswordHash: "h"}
		require.NoError(t, r.Create(context.Background(), u))
		assert.NotEmpty(t, u.UserID)
	})

	t.Run("duplicate email returns ErrEmailExists and adds no row", func(t *testing.T) {
		db := setupTestDB(t)
		r := NewUserRepo(db)
		ctx := context.Background()

		require.NoError(t, r.Create(ctx, &domain.User{Name: "Ann", Mobile: "555", Email: "ann@x.com", PasswordHash: "h"}))

		err := r.Create(ctx, &domain.User{Name: "Ann2", Mobile: "556", Email: "ann@x.com", PasswordHash: "h2"})
		assert.ErrorIs(t, err, domain.ErrEmailExists)

		var n int64
		require.NoError(t, db.Model(&domain.User{}).Count(&n).Error)
		assert.Equal(t, int64(1), n)
	})

	t.Run("emails differing only in case and whitespace collide", func(t *testing.T) {
		db := setupTestDB(t)
		r := NewUserRepo(db)
		ctx := context.Background()

		require.NoError(t, r.Create(ctx, &domain.User{Name: "A", Mobile: "1", Email: "a@b.com", PasswordHash: "h"}))

		err := r.Create(ctx, &domain.User{Name: "B", Mobile: "2", Email: "  A@B.com ", PasswordHash: "h"})
		assert.ErrorIs(t, err, domain.ErrEmailExists)
	})

	t.Run("unique index is the backstop when the pre-check is bypassed", func(t *testing.T) {
		db := setupTestDB(t)
		r := NewUserRepo(db)

		// Simulate the losing side of a signup race: a row lands after the
		// pre-check would have passed.
		require.NoError(t, db.Create(&domain.User{UserID: "u1", Name: "A", Mobile: "1", Email: "race@x.com", PasswordHash: "h"}).Error)

		err := db.Create(&domain.User{UserID: "u2", Name: "B", Mobile: "2", Email: "race@x.com", PasswordHash: "h"}).Error
		require.Error(t, err)
		assert.True(t, isDupKey(err), "driver unique violation must be recognized: %v", err)

		err = r.Create(context.Background(), &domain.User{Name: "B", Mobile: "2", Email: "race@x.com", PasswordHash: "h"})
		assert.ErrorIs(t, err, domain.ErrEmailExists)
	})
}

func TestUserRepo_FindByEmail(t *testing.T) {
	db := setupTestDB(t)
	r := NewUserRepo(db)
	ctx := context.Background()

	require.NoError(t, r.Create(ctx, &domain.User{Name: "Ann", Mobile: "555", Email: "ann@x.com", PasswordHash: "h"}))

	t.Run("found", func(t *testing.T) {
		u, err := r.FindByEmail(ctx, "ann@x.com")
		require.NoError(t, err)
		assert.Equal(t, "Ann", u.Name)
		assert.Equal(t, "ann@x.com", u.Email)
	})

	t.Run("lookup normalizes like the store does", func(t *testing.T) {
		u, err := r.FindByEmail(ctx, " ANN@X.com ")
		require.NoError(t, err)
		assert.Equal(t, "ann@x.com", u.Email)
	})

	t.Run("missing email returns ErrUserNotFound", func(t *testing.T) {
		_, err := r.FindByEmail(ctx, "nobody@x.com")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}
