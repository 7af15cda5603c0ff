// Package session stores admin sessions in Redis. Each session is a JSON
// value under session:<hash> that expires with the session; a set per user
// indexes the hashes for bulk revocation.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	accountdomain "wedding-site-go/internal/domain/account"
)

const (
	sessionKeyPrefix = "session:"
	userKeyPrefix    = "user_sessions:"
)

type RedisStore struct {
	client *redis.Client
	now    func() time.Time
}

func NewRedis(client *redis.Client) *RedisStore {
	return &RedisStore{client: client, now: time.Now}
}

// NewClient parses a redis:// URL and checks the connection.
func NewClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

func sessionKey(hash string) string { return sessionKeyPrefix + hash }

func userKey(userID string) string { return userKeyPrefix + userID }

type storedSession struct {
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (s *RedisStore) CreateSession(ctx context.Context, session *accountdomain.Session) error {
	ttl := session.ExpiresAt.Sub(s.now())
	if ttl <= 0 {
		return nil
	}

	payload, err := json.Marshal(storedSession{
		UserID:    session.UserID,
		CreatedAt: session.CreatedAt,
		ExpiresAt: session.ExpiresAt,
	})
	if err != nil {
		return err
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, sessionKey(session.TokenHash), payload, ttl)
	pipe.SAdd(ctx, userKey(session.UserID), session.TokenHash)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *RedisStore) GetSession(ctx context.Context, tokenHash string) (*accountdomain.Session, error) {
	raw, err := s.client.Get(ctx, sessionKey(tokenHash)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, accountdomain.ErrSessionNotFound
		}
		return nil, err
	}

	var stored storedSession
	if err := json.Unmarshal(raw, &stored); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &accountdomain.Session{
		TokenHash: tokenHash,
		UserID:    stored.UserID,
		CreatedAt: stored.CreatedAt,
		ExpiresAt: stored.ExpiresAt,
	}, nil
}

func (s *RedisStore) DeleteSession(ctx context.Context, tokenHash string) error {
	session, err := s.GetSession(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, accountdomain.ErrSessionNotFound) {
			return nil
		}
		return err
	}

	pipe := s.client.TxPipeline()
	pipe.Del(ctx, sessionKey(tokenHash))
	pipe.SRem(ctx, userKey(session.UserID), tokenHash)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *RedisStore) DeleteUserSessionsExcept(ctx context.Context, userID, keepHash string) (int64, error) {
	hashes, err := s.client.SMembers(ctx, userKey(userID)).Result()
	if err != nil {
		return 0, err
	}

	var stale []string
	for _, hash := range hashes {
		if hash != keepHash {
			stale = append(stale, hash)
		}
	}
	if len(stale) == 0 {
		return 0, nil
	}

	keys := make([]string, len(stale))
	members := make([]interface{}, len(stale))
	for i, hash := range stale {
		keys[i] = sessionKey(hash)
		members[i] = hash
	}

	pipe := s.client.TxPipeline()
	deleted := pipe.Del(ctx, keys...)
	pipe.SRem(ctx, userKey(userID), members...)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return deleted.Val(), nil
}

// DeleteExpiredSessions only prunes user index entries whose session key
// has already expired in Redis.
func (s *RedisStore) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	var cursor uint64
	for {
		keys, next, err := s.client.Scan(ctx, cursor, userKeyPrefix+"*", 100).Result()
		if err != nil {
			return 0, err
		}
		for _, key := range keys {
			if err := s.pruneUserIndex(ctx, key); err != nil {
				return 0, err
			}
		}
		if next == 0 {
			return 0, nil
		}
		cursor = next
	}
}

func (s *RedisStore) pruneUserIndex(ctx context.Context, key string) error {
	hashes, err := s.client.SMembers(ctx, key).Result()
	if err != nil {
		return err
	}
	for _, hash := range hashes {
		exists, err := s.client.Exists(ctx, sessionKey(hash)).Result()
		if err != nil {
			return err
		}
		if exists == 0 {
			if err := s.client.SRem(ctx, key, hash).Err(); err != nil {
				return err
			}
		}
	}
	return nil
}
