package prefstore

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis stores the preference as a plain string key in Redis.
type Redis struct {
	client redis.UniversalClient
	key    string
	ttl    time.Duration
}

// RedisOption configures the Redis store.
type RedisOption func(*Redis)

// WithRedisKey overrides the Redis key the preference is stored under.
// Default: "locale:preference".
func WithRedisKey(key string) RedisOption {
	return func(r *Redis) {
		if key != "" {
			r.key = key
		}
	}
}

// WithRedisTTL sets an expiry on the stored preference.
// Default: 0 (no expiry).
func WithRedisTTL(ttl time.Duration) RedisOption {
	return func(r *Redis) {
		r.ttl = ttl
	}
}

// NewRedis creates a Redis-backed preference store.
func NewRedis(client redis.UniversalClient, opts ...RedisOption) *Redis {
	r := &Redis{
		client: client,
		key:    "locale:preference",
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Read returns the stored code or ErrNotFound.
func (r *Redis) Read(ctx context.Context) (string, error) {
	code, err := r.client.Get(ctx, r.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNotFound
		}
		return "", err
	}
	return code, nil
}

// Write stores the code.
func (r *Redis) Write(ctx context.Context, code string) error {
	return r.client.Set(ctx, r.key, code, r.ttl).Err()
}

// Clear removes the stored code.
func (r *Redis) Clear(ctx context.Context) error {
	return r.client.Del(ctx, r.key).Err()
}

var _ Store = (*Redis)(nil)
