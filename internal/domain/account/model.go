package account

import "time"

type User struct {
	ID           string    `gorm:"type:uuid;primaryKey"`
	Username     string    `gorm:"not null;uniqueIndex" validate:"required,min=3,max=50"`
	PasswordHash string    `gorm:"column:password_hash;not null"`
	Email        string    `gorm:"not null" validate:"omitempty,email,max=255"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null;autoUpdateTime:false"`
}

// Session stores only the sha256 of the token handed to the client.
type Session struct {
	TokenHash string    `gorm:"column:token_hash;primaryKey"`
	UserID    string    `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time `gorm:"not null"`
	ExpiresAt time.Time `gorm:"not null;index"`
}

func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

type LoginResult struct {
	Token     string
	User      User
	ExpiresAt time.Time
}

type UpdateProfileInput struct {
	UserID   string
	Username *string
	Email    *string
}

type ChangePasswordInput struct {
	UserID          string
	CurrentPassword string
	NewPassword     string
	// KeepToken is the caller's own session; every other session is revoked.
	KeepToken string
}
