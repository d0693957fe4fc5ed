package interfaces

import (
	"context"
	"time"
)

//go:generate mockgen -source=store_interface.go -destination=mocks/store_mock.go -package=mock_interfaces

// Store is the string-keyed blob storage every collection lives in. A key
// maps to the full JSON value of one collection (or one settings object);
// Put always overwrites the whole value, there are no partial updates.
//
// Implementations must treat an absent key as (nil, nil). Callers are
// expected to fail soft on malformed content: the layer above never
// distinguishes "absent" from "corrupt" from "empty".
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// SessionStore keeps short-lived values (the logged-in user) separate from
// durable collections, the way sessionStorage is separate from localStorage.
type SessionStore interface {
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	GetJSON(ctx context.Context, key string, dest any) error
	Delete(ctx context.Context, key string) error
}
