package account

import (
	"context"
	"time"
)

type UserRepository interface {
	GetUserByID(ctx context.Context, id string) (*User, error)
	GetUserByUsername(ctx context.Context, username string) (*User, error)
	CreateUser(ctx context.Context, user *User) error
	UpdateUser(ctx context.Context, user *User) error
	CountUsers(ctx context.Context) (int64, error)
}

// SessionStore is implemented by the postgres, redis and in-memory stores.
type SessionStore interface {
	CreateSession(ctx context.Context, session *Session) error
	GetSession(ctx context.Context, tokenHash string) (*Session, error)
	DeleteSession(ctx context.Context, tokenHash string) error
	DeleteUserSessionsExcept(ctx context.Context, userID, keepHash string) (int64, error)
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}
