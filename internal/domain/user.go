package domain

import (
	"context"
	"time"
)

// User is a registered account in user_table. Rows are written once on
// signup and never updated or deleted afterwards.
type User struct {
	UserID       string    `gorm:"column:user_id;primaryKey;size:36" json:"user_id"`
	Name         string    `gorm:"size:64;not null" json:"name"`
	Mobile       string    `gorm:"column:mobileno;size:20;not null" json:"mobileno"`
	Email        string    `gorm:"column:emailid;uniqueIndex;size:255;not null" json:"emailid"`
	PasswordHash string    `gorm:"column:password;size:100;not null" json:"-"`
	CreatedAt    time.Time `json:"-"`
}

func (User) TableName() string { return "user_table" }

type UserRepository interface {
	// Create persists a new user. Returns ErrEmailExists when a row with
	// the same (normalized) email is already present.
	Create(ctx context.Context, u *User) error
	// FindByEmail returns ErrUserNotFound when no row matches.
	FindByEmail(ctx context.Context, email string) (*User, error)
}
