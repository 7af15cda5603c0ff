package inmemory

import (
	"context"
	"sync"
	"time"

	accountdomain "wedding-site-go/internal/domain/account"
)

// SessionStore keeps sessions in process memory. Sessions are lost on
// restart and are not shared between replicas.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]accountdomain.Session
	byUser   map[string]map[string]struct{}
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]accountdomain.Session),
		byUser:   make(map[string]map[string]struct{}),
	}
}

func (s *SessionStore) CreateSession(ctx context.Context, session *accountdomain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[session.TokenHash] = *session
	hashes, ok := s.byUser[session.UserID]
	if !ok {
		hashes = make(map[string]struct{})
		s.byUser[session.UserID] = hashes
	}
	hashes[session.TokenHash] = struct{}{}
	return nil
}

func (s *SessionStore) GetSession(ctx context.Context, tokenHash string) (*accountdomain.Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[tokenHash]
	s.mu.RUnlock()
	if !ok {
		return nil, accountdomain.ErrSessionNotFound
	}
	return &session, nil
}

func (s *SessionStore) DeleteSession(ctx context.Context, tokenHash string) error {
	s.mu.Lock()
	s.deleteLocked(tokenHash)
	s.mu.Unlock()
	return nil
}

func (s *SessionStore) DeleteUserSessionsExcept(ctx context.Context, userID, keepHash string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var removed int64
	for hash := range s.byUser[userID] {
		if hash == keepHash {
			continue
		}
		s.deleteLocked(hash)
		removed++
	}
	return removed, nil
}

func (s *SessionStore) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var removed int64
	for hash, session := range s.sessions {
		if session.Expired(now) {
			s.deleteLocked(hash)
			removed++
		}
	}
	return removed, nil
}

func (s *SessionStore) deleteLocked(tokenHash string) {
	session, ok := s.sessions[tokenHash]
	if !ok {
		return
	}
	delete(s.sessions, tokenHash)
	if hashes, ok := s.byUser[session.UserID]; ok {
		delete(hashes, tokenHash)
		if len(hashes) == 0 {
			delete(s.byUser, session.UserID)
		}
	}
}
