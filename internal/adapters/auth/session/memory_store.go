package session

import (
	"context"
	"sync"
	"time"
)

type memEntry struct {
	userID    int64
	expiresAt time.Time
}

// MemoryStore es el store por defecto: se pierde al reiniciar el proceso.
type MemoryStore struct {
	mu   sync.RWMutex
	byID map[string]memEntry
	now  func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byID: make(map[string]memEntry),
		now:  time.Now,
	}
}

func (s *MemoryStore) Save(_ context.Context, sessionID string, userID int64, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.byID[sessionID] = memEntry{userID: userID, expiresAt: s.now().Add(ttl)}
	s.purgeLocked()
	return nil
}

func (s *MemoryStore) Lookup(_ context.Context, sessionID string) (int64, error) {
	s.mu.RLock()
	e, ok := s.byID[sessionID]
	s.mu.RUnlock()

	if !ok || !s.now().Before(e.expiresAt) {
		return 0, ErrSessionNotFound
	}
	return e.userID, nil
}

func (s *MemoryStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.byID, sessionID)
	return nil
}

// purgeLocked borra las vencidas. Se llama con el lock tomado, en cada Save.
func (s *MemoryStore) purgeLocked() {
	now := s.now()
	for id, e := range s.byID {
		if !now.Before(e.expiresAt) {
			delete(s.byID, id)
		}
	}
}
