package database

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"frota_backoffice/internal/usecase/interfaces"
)

var _ interfaces.SessionStore = (*MemorySessionStore)(nil)

// MemorySessionStore is the SessionStore used when no REDIS_URL is
// configured, and by tests. Expiry is checked lazily on read.
type MemorySessionStore struct {
	mu   sync.RWMutex
	data map[string]sessionEntry
}

type sessionEntry struct {
	raw       []byte
	expiresAt time.Time
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{data: make(map[string]sessionEntry)}
}

func (s *MemorySessionStore) SetJSON(_ context.Context, key string, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	var exp time.Time
	if ttl > 0 {
		exp = time.Now().Add(ttl)
	}
	s.mu.Lock()
	s.data[key] = sessionEntry{raw: raw, expiresAt: exp}
	s.mu.Unlock()
	return nil
}

func (s *MemorySessionStore) GetJSON(_ context.Context, key string, dest any) error {
	s.mu.RLock()
	entry, ok := s.data[key]
	s.mu.RUnlock()
	if !ok {
		return ErrSessionKeyNotFound
	}
	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.data, key)
		s.mu.Unlock()
		return ErrSessionKeyNotFound
	}
	return json.Unmarshal(entry.raw, dest)
}

func (s *MemorySessionStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.data, key)
	s.mu.Unlock()
	return nil
}
