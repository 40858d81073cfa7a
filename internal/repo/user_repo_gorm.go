package repo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/UnicAcademy-01/stemgurukul-backend/internal/domain"
)

type UserRepo struct{ db *gorm.DB }

var _ domain.UserRepository = (*UserRepo)(nil)

func NewUserRepo(db *gorm.DB) *UserRepo { return &UserRepo{db: db} }

// Create inserts a new user row. The pre-check gives the friendly conflict
// answer on the common path; the unique index on emailid is what actually
// guarantees uniqueness when two signups race past the check.
func (r *UserRepo) Create(ctx context.Context, u *domain.User) error {
	u.Email = domain.NormalizeEmail(u.Email)
	if u.UserID == "" {
		u.UserID = uuid.NewString()
	}

	var n int64
	if err := r.db.WithContext(ctx).Model(&domain.User{}).
		Where("emailid = ?", u.Email).Count(&n).Error; err != nil {
		return fmt.Errorf("check email: %w", err)
	}
	if n > 0 {
		return domain.ErrEmailExists
	}

	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if isDupKey(err) {
			return domain.ErrEmailExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	err := r.db.WithContext(ctx).
		Where("emailid = ?", domain.NormalizeEmail(email)).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &u, nil
}

// isDupKey matches unique-violation messages across drivers instead of
// depending on gorm.ErrDuplicatedKey, which varies between versions.
func isDupKey(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique violation") ||
		strings.Contains(msg, "duplicate key")
}
