package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// entry stores a user id and its absolute expiration timestamp.
type entry struct {
	userID    string
	expiresAt time.Time // zero means no expiration
}

// MemoryStore is a map-backed session store guarded by a RWMutex.
// Expired entries are skipped on read and removed by PurgeExpired, which
// RunJanitor calls periodically.
type MemoryStore struct {
	mu    sync.RWMutex
	ttl   time.Duration
	items map[string]entry
}

// NewMemoryStore builds a store whose sessions live for ttl (ttl <= 0 means forever).
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:   ttl,
		items: make(map[string]entry),
	}
}

// now is a small indirection to allow test stubbing.
var now = time.Now

func (s *MemoryStore) Create(_ context.Context, userID string) (string, error) {
	id := uuid.NewString()

	var exp time.Time
	if s.ttl > 0 {
		exp = now().Add(s.ttl)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[id] = entry{userID: userID, expiresAt: exp}
	return id, nil
}

func (s *MemoryStore) Get(_ context.Context, sessionID string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.items[sessionID]
	if !ok || e.expired(now()) {
		return "", ErrNotFound
	}
	return e.userID, nil
}

func (s *MemoryStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.items[sessionID]
	if !ok {
		return ErrNotFound
	}
	delete(s.items, sessionID)
	if e.expired(now()) {
		return ErrNotFound
	}
	return nil
}

// Len returns the number of live sessions.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ts := now()
	count := 0
	for _, e := range s.items {
		if !e.expired(ts) {
			count++
		}
	}
	return count
}

// PurgeExpired removes expired sessions.
func (s *MemoryStore) PurgeExpired() {
	s.mu.Lock()
	defer s.mu.Unlock()
	ts := now()
	for k, e := range s.items {
		if e.expired(ts) {
			delete(s.items, k)
		}
	}
}

// RunJanitor calls PurgeExpired every interval until ctx is cancelled.
func (s *MemoryStore) RunJanitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.PurgeExpired()
		}
	}
}

func (e entry) expired(ts time.Time) bool {
	return !e.expiresAt.IsZero() && ts.After(e.expiresAt)
}

var _ Store = (*MemoryStore)(nil)
