package database

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"frota_backoffice/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

// ErrSessionKeyNotFound is returned when a session value is absent or
// already expired.
var ErrSessionKeyNotFound = errors.New("session key not found")

var _ interfaces.SessionStore = (*RedisSessionStore)(nil)

// RedisSessionStore keeps session-scoped values in Redis with a TTL, so a
// login expires without any cleanup code of our own.
type RedisSessionStore struct {
	client *redis.Client
}

// NewRedisSessionStore connects and pings; REDIS_URL example:
// redis://:password@localhost:6379/0
func NewRedisSessionStore(redisURL string) (*RedisSessionStore, error) {
	options, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(options)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return &RedisSessionStore{client: client}, nil
}

func (s *RedisSessionStore) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, data, ttl).Err()
}

func (s *RedisSessionStore) GetJSON(ctx context.Context, key string, dest any) error {
	val, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrSessionKeyNotFound
		}
		return err
	}
	return json.Unmarshal([]byte(val), dest)
}

func (s *RedisSessionStore) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}

func (s *RedisSessionStore) Close() error {
	return s.client.Close()
}
