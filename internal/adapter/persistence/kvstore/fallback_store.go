package kvstore

import (
	"context"
	"log"
	"sync"

	"frota_backoffice/internal/usecase/interfaces"
)

var _ interfaces.Store = (*FallbackStore)(nil)

// FallbackStore wraps a primary Store with a local in-memory mirror. Every
// successful read and write keeps the mirror current; when the primary
// fails, reads and writes silently continue against the mirror so the
// back-office keeps working ("saved locally"). Failures are logged once per
// key until the primary recovers.
//
// Writes that land only in the mirror are not replayed later. Last writer
// wins on the primary, same as everywhere else in this storage model.
type FallbackStore struct {
	primary interfaces.Store
	mirror  *MemoryStore

	mu       sync.Mutex
	degraded map[string]bool
}

func NewFallbackStore(primary interfaces.Store) *FallbackStore {
	return &FallbackStore{
		primary:  primary,
		mirror:   NewMemoryStore(),
		degraded: make(map[string]bool),
	}
}

func (s *FallbackStore) Get(ctx context.Context, key string) ([]byte, error) {
	v, err := s.primary.Get(ctx, key)
	if err != nil {
		s.noteFailure(key, "get", err)
		return s.mirror.Get(ctx, key)
	}
	s.noteRecovery(key)
	if v != nil {
		_ = s.mirror.Put(ctx, key, v)
	}
	return v, nil
}

func (s *FallbackStore) Put(ctx context.Context, key string, value []byte) error {
	_ = s.mirror.Put(ctx, key, value)
	if err := s.primary.Put(ctx, key, value); err != nil {
		s.noteFailure(key, "put", err)
		return nil
	}
	s.noteRecovery(key)
	return nil
}

func (s *FallbackStore) Delete(ctx context.Context, key string) error {
	_ = s.mirror.Delete(ctx, key)
	if err := s.primary.Delete(ctx, key); err != nil {
		s.noteFailure(key, "delete", err)
		return nil
	}
	s.noteRecovery(key)
	return nil
}

func (s *FallbackStore) noteFailure(key, op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.degraded[key] {
		log.Printf("[kvstore] primary %s failed for %q, serving local copy: %v", op, key, err)
		s.degraded[key] = true
	}
}

func (s *FallbackStore) noteRecovery(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.degraded[key] {
		log.Printf("[kvstore] primary recovered for %q", key)
		s.degraded[key] = false
	}
}
