// Package adapters はlastsearchフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/MeckMan2025/Meckman-Finance/internal/feature/lastsearch/usecase"
)

// LastSearchRedis implements usecase.Repository using Redis.
type LastSearchRedis struct {
	client *redis.Client
	prefix string
}

var _ usecase.Repository = (*LastSearchRedis)(nil)

// NewLastSearchRedis creates a new LastSearchRedis instance.
// If prefix is empty, it uses "lastsearch".
func NewLastSearchRedis(client *redis.Client, prefix string) *LastSearchRedis {
	if prefix == "" {
		prefix = "lastsearch"
	}
	return &LastSearchRedis{client: client, prefix: prefix}
}

// key returns the Redis key for the single entry.
func (r *LastSearchRedis) key() string {
	return r.prefix + ":symbol"
}

// Get retrieves the last-searched symbol.
func (r *LastSearchRedis) Get(ctx context.Context) (string, error) {
	val, err := r.client.Get(ctx, r.key()).Result()
	if err != nil {
		if err == redis.Nil {
			return "", usecase.ErrNotFound
		}
		return "", err
	}
	return val, nil
}

// Set overwrites the last-searched symbol. The entry never expires.
func (r *LastSearchRedis) Set(ctx context.Context, symbol string) error {
	return r.client.Set(ctx, r.key(), symbol, 0).Err()
}
