package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/gearted/gearted-backend/internal/logger"
	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned by Get when the key is not cached.
var ErrCacheMiss = errors.New("cache miss")

// ResponseCacheRepository stores serialized HTTP responses in Redis.
type ResponseCacheRepository struct {
	client *redis.Client
}

// NewResponseCacheRepository creates a new repository instance
func NewResponseCacheRepository(client *redis.Client) *ResponseCacheRepository {
	return &ResponseCacheRepository{client: client}
}

// Get returns the cached body stored under key.
func (r *ResponseCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		logger.Log.Infow("cache get", "key", key, "result", "miss")
		return nil, ErrCacheMiss
	}

	logger.Log.Infow("cache get",
		"key", key,
		"size", len(val),
		"error", err,
	)
	if err != nil {
		return nil, err
	}
	return val, nil
}

// Set stores body under key for ttl.
func (r *ResponseCacheRepository) Set(ctx context.Context, key string, body []byte, ttl time.Duration) error {
	err := r.client.Set(ctx, key, body, ttl).Err()

	logger.Log.Infow("cache set",
		"key", key,
		"ttl", ttl,
		"size", len(body),
		"error", err,
	)

	return err
}

// DeletePrefix removes every key starting with prefix and returns how many were removed.
func (r *ResponseCacheRepository) DeletePrefix(ctx context.Context, prefix string) (int64, error) {
	var (
		cursor  uint64
		removed int64
	)

	for {
		keys, next, err := r.client.Scan(ctx, cursor, prefix+"*", 100).Result()
		if err != nil {
			logger.Log.Infow("cache delete prefix", "prefix", prefix, "removed", removed, "error", err)
			return removed, err
		}
		if len(keys) > 0 {
			n, err := r.client.Del(ctx, keys...).Result()
			removed += n
			if err != nil {
				logger.Log.Infow("cache delete prefix", "prefix", prefix, "removed", removed, "error", err)
				return removed, err
			}
		}
		if next == 0 {
			break
		}
		cursor = next
	}

	logger.Log.Infow("cache delete prefix", "prefix", prefix, "removed", removed, "error", nil)
	return removed, nil
}
