package kvstore

import (
	"context"
	"encoding/json"

	"frota_backoffice/internal/usecase/interfaces"
)

// GetScalar reads a singleton value (settings objects, counters). Absent or
// malformed content yields (zero, false); storage never fails upward.
func GetScalar[T any](ctx context.Context, s interfaces.Store, key string) (T, bool) {
	var out T
	raw, err := s.Get(ctx, key)
	if err != nil || len(raw) == 0 {
		return out, false
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, false
	}
	return out, true
}

// PutScalar overwrites a singleton value.
func PutScalar[T any](ctx context.Context, s interfaces.Store, key string, value T) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.Put(ctx, key, raw)
}
