package account

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"wedding-site-go/internal/validation"
)

const (
	minPasswordBytes = 8
	maxPasswordBytes = 72
)

type Service struct {
	users    UserRepository
	sessions SessionStore
	ttl      time.Duration
	hashCost int
	now      func() time.Time
}

func NewService(users UserRepository, sessions SessionStore, ttl time.Duration) *Service {
	return &Service{
		users:    users,
		sessions: sessions,
		ttl:      ttl,
		hashCost: bcrypt.DefaultCost,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

var (
	dummyHashOnce sync.Once
	dummyHash     []byte
)

// compareDummy keeps unknown-user logins as slow as wrong-password ones.
func compareDummy(password string) {
	dummyHashOnce.Do(func() {
		dummyHash, _ = bcrypt.GenerateFromPassword([]byte("wedding-site-dummy"), bcrypt.DefaultCost)
	})
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
}

func (s *Service) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			compareDummy(password)
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := newToken()
	if err != nil {
		return nil, err
	}

	now := s.now()
	session := Session{
		TokenHash: HashToken(token),
		UserID:    user.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	if err := s.sessions.CreateSession(ctx, &session); err != nil {
		return nil, err
	}

	return &LoginResult{Token: token, User: *user, ExpiresAt: session.ExpiresAt}, nil
}

func (s *Service) Authenticate(ctx context.Context, token string) (*User, error) {
	if token == "" {
		return nil, ErrUnauthorized
	}

	hash := HashToken(token)
	session, err := s.sessions.GetSession(ctx, hash)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}

	if session.Expired(s.now()) {
		if err := s.sessions.DeleteSession(ctx, hash); err != nil {
			return nil, err
		}
		return nil, ErrUnauthorized
	}

	user, err := s.users.GetUserByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}
	return user, nil
}

func (s *Service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.DeleteSession(ctx, HashToken(token))
}

func (s *Service) GetUser(ctx context.Context, id string) (*User, error) {
	return s.users.GetUserByID(ctx, id)
}

func (s *Service) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*User, error) {
	user, err := s.users.GetUserByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Username != nil {
		username := strings.TrimSpace(*input.Username)
		if username != user.Username {
			existing, err := s.users.GetUserByUsername(ctx, username)
			switch {
			case err == nil && existing.ID != user.ID:
				return nil, validation.Wrap(ErrUsernameTaken, "username", "is already taken")
			case err != nil && !errors.Is(err, ErrUserNotFound):
				return nil, err
			}
		}
		user.Username = username
	}
	if input.Email != nil {
		user.Email = strings.TrimSpace(*input.Email)
	}

	if err := validation.Struct(user); err != nil {
		return nil, err
	}

	user.UpdatedAt = s.now()
	if err := s.users.UpdateUser(ctx, user); err != nil {
		if errors.Is(err, ErrUsernameTaken) {
			return nil, validation.Wrap(err, "username", "is already taken")
		}
		return nil, err
	}
	return user, nil
}

func (s *Service) ChangePassword(ctx context.Context, input ChangePasswordInput) error {
	if err := checkPassword("new_password", input.NewPassword); err != nil {
		return err
	}

	user, err := s.users.GetUserByID(ctx, input.UserID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.CurrentPassword)); err != nil {
		return validation.Wrap(ErrInvalidCredentials, "current_password", "is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), s.hashCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	user.PasswordHash = string(hash)
	user.UpdatedAt = s.now()
	if err := s.users.UpdateUser(ctx, user); err != nil {
		return err
	}

	keep := ""
	if input.KeepToken != "" {
		keep = HashToken(input.KeepToken)
	}
	_, err = s.sessions.DeleteUserSessionsExcept(ctx, user.ID, keep)
	return err
}

// EnsureAdmin creates the account when no user has that username. An
// existing account is left untouched, password included.
func (s *Service) EnsureAdmin(ctx context.Context, username, password, email string) (bool, error) {
	username = strings.TrimSpace(username)

	_, err := s.users.GetUserByUsername(ctx, username)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, ErrUserNotFound) {
		return false, err
	}

	if err := checkPassword("password", password); err != nil {
		return false, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	if err != nil {
		return false, fmt.Errorf("hash password: %w", err)
	}

	now := s.now()
	user := User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
		Email:        strings.TrimSpace(email),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := validation.Struct(user); err != nil {
		return false, err
	}
	if err := s.users.CreateUser(ctx, &user); err != nil {
		if errors.Is(err, ErrUsernameTaken) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *Service) PurgeExpiredSessions(ctx context.Context) (int64, error) {
	return s.sessions.DeleteExpiredSessions(ctx, s.now())
}

func checkPassword(field, password string) error {
	switch {
	case len(password) < minPasswordBytes:
		return validation.Field(field, fmt.Sprintf("must be at least %d characters", minPasswordBytes))
	case len(password) > maxPasswordBytes:
		return validation.Field(field, fmt.Sprintf("must be at most %d bytes", maxPasswordBytes))
	}
	return nil
}
