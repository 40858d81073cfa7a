package domain

import (
	"context"
	"time"
)

// Subscription is one row of subscribe_table. The email is stored trimmed
// and lower-cased, so at most one row per address can ever exist.
type Subscription struct {
	SubscribeID string    `gorm:"column:subscribe_id;primaryKey;size:36" json:"subscribe_id"`
	Email       string    `gorm:"column:emailid;uniqueIndex;size:255;not null" json:"emailid"`
	Subscribed  bool      `gorm:"column:subscribers;not null" json:"subscribers"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Subscription) TableName() string { return "subscribe_table" }

type SubscriptionRepository interface {
	// Upsert creates the row for email or overwrites its subscribed flag.
	// created_at is set once; updated_at is refreshed on every call.
	Upsert(ctx context.Context, email string, subscribed bool) (*Subscription, error)
}
