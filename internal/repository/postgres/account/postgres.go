package account

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	accountdomain "wedding-site-go/internal/domain/account"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetUserByID(ctx context.Context, id string) (*accountdomain.User, error) {
	var user accountdomain.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, accountdomain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *PostgresRepository) GetUserByUsername(ctx context.Context, username string) (*accountdomain.User, error) {
	var user accountdomain.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, accountdomain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *PostgresRepository) CreateUser(ctx context.Context, user *accountdomain.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return accountdomain.ErrUsernameTaken
		}
		return err
	}
	return nil
}

func (r *PostgresRepository) UpdateUser(ctx context.Context, user *accountdomain.User) error {
	result := r.db.WithContext(ctx).
		Model(&accountdomain.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]interface{}{
			"username":      user.Username,
			"email":         user.Email,
			"password_hash": user.PasswordHash,
			"updated_at":    user.UpdatedAt,
		})
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return accountdomain.ErrUsernameTaken
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return accountdomain.ErrUserNotFound
	}
	return nil
}

func (r *PostgresRepository) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&accountdomain.User{}).Count(&count).Error
	return count, err
}

// SessionRepository is the default session store.
type SessionRepository struct {
	db *gorm.DB
}

func NewSessionPostgres(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) CreateSession(ctx context.Context, session *accountdomain.Session) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *SessionRepository) GetSession(ctx context.Context, tokenHash string) (*accountdomain.Session, error) {
	var session accountdomain.Session
	if err := r.db.WithContext(ctx).Where("token_hash = ?", tokenHash).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, accountdomain.ErrSessionNotFound
		}
		return nil, err
	}
	return &session, nil
}

func (r *SessionRepository) DeleteSession(ctx context.Context, tokenHash string) error {
	return r.db.WithContext(ctx).Delete(&accountdomain.Session{}, "token_hash = ?", tokenHash).Error
}

func (r *SessionRepository) DeleteUserSessionsExcept(ctx context.Context, userID, keepHash string) (int64, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if keepHash != "" {
		query = query.Where("token_hash <> ?", keepHash)
	}
	result := query.Delete(&accountdomain.Session{})
	return result.RowsAffected, result.Error
}

func (r *SessionRepository) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&accountdomain.Session{}, "expires_at <= ?", now)
	return result.RowsAffected, result.Error
}
