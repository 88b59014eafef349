package prefs

import (
	"context"
	"sync"

	"github.com/redis/go-redis/v9"
)

// Preference keys
const (
	KeyTheme       = "theme"
	KeyDisplayName = "display_name"
)

// Store persists app-level preferences (theme, desk display name). The
// adapter is injected so nothing holds hidden global state.
type Store interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string) error
}

// MemoryStore keeps preferences for the life of the process.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (s *MemoryStore) Get(ctx context.Context, key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

func (s *MemoryStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

// RedisStore persists preferences across restarts.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, bool) {
	v, err := s.client.Get(ctx, "prefs:"+key).Result()
	if err != nil {
		return "", false
	}
	return v, true
}

func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	// Preferences never expire on their own
	return s.client.Set(ctx, "prefs:"+key, value, 0).Err()
}
