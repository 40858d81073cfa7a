package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/UnicAcademy-01/stemgurukul-backend/internal/domain"
)

type SubscriptionRepo struct{ db *gorm.DB }

var _ domain.SubscriptionRepository = (*SubscriptionRepo)(nil)

func NewSubscriptionRepo(db *gorm.DB) *SubscriptionRepo { return &SubscriptionRepo{db: db} }

// Upsert inserts or updates the single row for a normalized email.
// On conflict only subscribers and updated_at are overwritten, so
// created_at keeps the timestamp of the first subscribe.
func (r *SubscriptionRepo) Upsert(ctx context.Context, email string, subscribed bool) (*domain.Subscription, error) {
	now := time.Now()
	row := domain.Subscription{
		SubscribeID: uuid.NewString(),
		Email:       domain.NormalizeEmail(email),
		Subscribed:  subscribed,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "emailid"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"subscribers": subscribed,
			"updated_at":  now,
		}),
	}).Create(&row).Error
	if err != nil {
		return nil, fmt.Errorf("upsert subscription: %w", err)
	}

	// Re-read so the caller gets the stored row (original subscribe_id and
	// created_at when the email already existed).
	var stored domain.Subscription
	if err := r.db.WithContext(ctx).
		Where("emailid = ?", row.Email).First(&stored).Error; err != nil {
		return nil, fmt.Errorf("load subscription: %w", err)
	}
	return &stored, nil
}
