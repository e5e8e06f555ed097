package session

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrNoSession is returned when a session id does not resolve to a logged-in
// user, either because it never existed or because it expired.
var ErrNoSession = errors.New("session not found")

// Store maps an opaque session id to the owning user id. Sessions expire
// after an inactivity window; reading a session re-arms its expiry.
type Store interface {
	Get(ctx context.Context, sid string) (int64, error)
	Set(ctx context.Context, sid string, userID int64) error
	Delete(ctx context.Context, sid string) error
}

// MemoryStore keeps sessions in process memory. Used by tests and as a
// fallback wiring target; it honors the same inactivity-expiry contract as
// the Redis store.
type MemoryStore struct {
	mu  sync.Mutex
	ttl time.Duration
	m   map[string]memorySession
}

type memorySession struct {
	userID    int64
	expiresAt time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{ttl: ttl, m: make(map[string]memorySession)}
}

func (s *MemoryStore) Get(_ context.Context, sid string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.m[sid]
	if !ok {
		return 0, ErrNoSession
	}
	if s.ttl > 0 && time.Now().After(entry.expiresAt) {
		delete(s.m, sid)
		return 0, ErrNoSession
	}

	entry.expiresAt = time.Now().Add(s.ttl)
	s.m[sid] = entry
	return entry.userID, nil
}

func (s *MemoryStore) Set(_ context.Context, sid string, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[sid] = memorySession{userID: userID, expiresAt: time.Now().Add(s.ttl)}
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, sid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, sid)
	return nil
}
