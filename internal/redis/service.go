package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Wang-Yi-Zhang/My-Daily-Note/pkg/logger"
)

// Service wraps the optional Redis backend used for rate-limit counters and
// catalog caching. A nil *Service is valid and disables both features.
type Service struct {
	client *redis.Client
}

// NewService connects to Redis. Returns nil when the connection fails so
// callers can degrade to in-process fallbacks.
func NewService(addr, password string, db int) *Service {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		logger.Log.Warn().Err(err).Str("addr", addr).Msg("Failed to connect to Redis, continuing without it")
		return nil
	}

	logger.Log.Info().Str("addr", addr).Msg("Successfully connected to Redis")
	return &Service{client: client}
}

// IncrWindow increments a fixed-window counter and returns the new count.
// The key expires at the end of the window, opened on the first hit.
func (s *Service) IncrWindow(ctx context.Context, key string, window time.Duration) (int64, error) {
	if s == nil || s.client == nil {
		return 0, fmt.Errorf("redis client not initialized")
	}

	pipe := s.client.Pipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, window)

	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return incr.Val(), nil
}

// SetCatalog caches a catalog payload as JSON with a TTL.
func (s *Service) SetCatalog(ctx context.Context, name string, value interface{}, ttl time.Duration) error {
	if s == nil || s.client == nil {
		return fmt.Errorf("redis client not initialized")
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	key := fmt.Sprintf("catalog:%s", name)
	if err := s.client.Set(ctx, key, data, ttl).Err(); err != nil {
		logger.Log.Warn().Err(err).Str("catalog", name).Msg("Failed to cache catalog")
		return err
	}
	return nil
}

// GetCatalog reads a cached catalog into dest. Returns false on cache miss.
func (s *Service) GetCatalog(ctx context.Context, name string, dest interface{}) (bool, error) {
	if s == nil || s.client == nil {
		return false, nil
	}

	key := fmt.Sprintf("catalog:%s", name)
	data, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, err
	}

	if err := json.Unmarshal([]byte(data), dest); err != nil {
		logger.Log.Warn().Err(err).Str("catalog", name).Msg("Failed to unmarshal cached catalog")
		return false, nil
	}
	return true, nil
}

// Close closes the Redis connection.
func (s *Service) Close() error {
	if s == nil || s.client == nil {
		return nil
	}
	return s.client.Close()
}
