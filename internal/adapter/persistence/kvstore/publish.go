package kvstore

import (
	"context"
	"sync"

	"frota_backoffice/internal/usecase/interfaces"
)

// Subscriber is called after a key has been written. The badge/notification
// refreshers subscribe here instead of patching the storage layer.
type Subscriber func(key string)

var _ interfaces.Store = (*PublishingStore)(nil)

// PublishingStore decorates a Store with an explicit publish step after
// every successful Put or Delete.
type PublishingStore struct {
	interfaces.Store

	mu   sync.RWMutex
	subs []Subscriber
}

func NewPublishingStore(inner interfaces.Store) *PublishingStore {
	return &PublishingStore{Store: inner}
}

func (s *PublishingStore) Subscribe(fn Subscriber) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

func (s *PublishingStore) Put(ctx context.Context, key string, value []byte) error {
	if err := s.Store.Put(ctx, key, value); err != nil {
		return err
	}
	s.publish(key)
	return nil
}

func (s *PublishingStore) Delete(ctx context.Context, key string) error {
	if err := s.Store.Delete(ctx, key); err != nil {
		return err
	}
	s.publish(key)
	return nil
}

func (s *PublishingStore) publish(key string) {
	s.mu.RLock()
	subs := make([]Subscriber, len(s.subs))
	copy(subs, s.subs)
	s.mu.RUnlock()
	for _, fn := range subs {
		fn(key)
	}
}
