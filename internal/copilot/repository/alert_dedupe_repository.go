package repository

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"

	redisPkg "golang-stock-copilot/pkg/redis"
)

// AlertDedupeRepository claims a notification key for a time window.
// Acquire reports true only for the first caller inside the window.
type AlertDedupeRepository interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
}

type redisAlertDedupeRepository struct {
	client *redisPkg.Client
}

func NewRedisAlertDedupeRepository(client *redisPkg.Client) AlertDedupeRepository {
	return &redisAlertDedupeRepository{client: client}
}

func (r *redisAlertDedupeRepository) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return r.client.SetNX(ctx, key, time.Now().Unix(), ttl).Result()
}

type inMemoryAlertDedupeRepository struct {
	inmemoryCache *cache.Cache
}

// NewInMemoryAlertDedupeRepository is used when Redis is disabled.
func NewInMemoryAlertDedupeRepository() AlertDedupeRepository {
	return &inMemoryAlertDedupeRepository{inmemoryCache: cache.New(time.Hour, 10*time.Minute)}
}

func (r *inMemoryAlertDedupeRepository) Acquire(_ context.Context, key string, ttl time.Duration) (bool, error) {
	return r.inmemoryCache.Add(key, struct{}{}, ttl) == nil, nil
}
