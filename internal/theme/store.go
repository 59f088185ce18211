package theme

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const themeKey = "site:theme"

// Store persists the theme record in Redis.
type Store struct {
	redis *redis.Client
}

// NewStore creates a theme store.
func NewStore(redisClient *redis.Client) *Store {
	return &Store{redis: redisClient}
}

// Get retrieves the stored theme, returning the default when none is set.
func (s *Store) Get(ctx context.Context) (*Theme, error) {
	data, err := s.redis.Get(ctx, themeKey).Bytes()
	if err == redis.Nil {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("theme: get: %w", err)
	}

	var t Theme
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("theme: unmarshal: %w", err)
	}
	t.normalize()
	return &t, nil
}

// Set saves the theme record.
func (s *Store) Set(ctx context.Context, t *Theme) error {
	t.normalize()
	t.LastUpdated = time.Now().UTC()

	data, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("theme: marshal: %w", err)
	}
	if err := s.redis.Set(ctx, themeKey, data, 0).Err(); err != nil {
		return fmt.Errorf("theme: set: %w", err)
	}
	return nil
}
