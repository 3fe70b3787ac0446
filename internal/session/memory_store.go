package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	apperrors "roastery/internal/errors"
)

type memoryEntry struct {
	userID    uint
	expiresAt time.Time
}

// MemoryStore is a mutex-guarded in-process session store. It backs tests
// and single-instance deployments that run without Redis.
type MemoryStore struct {
	mu       sync.RWMutex
	ttl      time.Duration
	sessions map[string]memoryEntry
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an in-memory session store.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:      ttl,
		sessions: make(map[string]memoryEntry),
	}
}

func (s *MemoryStore) Create(ctx context.Context, userID uint) (string, error) {
	token := uuid.New().String()
	s.mu.Lock()
	s.sessions[token] = memoryEntry{userID: userID, expiresAt: time.Now().Add(s.ttl)}
	s.mu.Unlock()
	return token, nil
}

func (s *MemoryStore) Resolve(ctx context.Context, token string) (uint, error) {
	s.mu.RLock()
	entry, ok := s.sessions[token]
	s.mu.RUnlock()
	if !ok || time.Now().After(entry.expiresAt) {
		return 0, apperrors.ErrUnauthenticated
	}
	return entry.userID, nil
}

func (s *MemoryStore) Invalidate(ctx context.Context, token string) error {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
	return nil
}
