package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redis_v9 "github.com/redis/go-redis/v9"
)

// CacheRepository is a thin JSON struct cache over Redis, also used for the
// lease locks that keep background refreshes single-flight across instances.
type CacheRepository struct {
	client *redis_v9.Client
}

func NewCacheRepository(client *redis_v9.Client) *CacheRepository {
	return &CacheRepository{client: client}
}

func (c *CacheRepository) SaveStruct(ctx context.Context, key string, model any, ttl time.Duration) error {
	val, err := json.Marshal(model)
	if err != nil {
		return fmt.Errorf("error saving struct to cache: %w", err)
	}
	if err := c.client.Set(ctx, key, val, ttl).Err(); err != nil {
		return fmt.Errorf("error saving struct to cache: %w", err)
	}
	return nil
}

func (c *CacheRepository) GetStruct(ctx context.Context, key string, model any) error {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, model)
}

func (c *CacheRepository) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}

// AcquireLock takes a lease with SetNX. Returns false when another holder
// owns the lease. The TTL bounds how long a crashed holder can block others.
func (c *CacheRepository) AcquireLock(ctx context.Context, key, holder string, ttl time.Duration) (bool, error) {
	ok, err := c.client.SetNX(ctx, key, holder, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("error acquiring lock %s: %w", key, err)
	}
	return ok, nil
}

// ReleaseLock frees the lease only when still held by holder, so an expired
// lease taken over by another instance is never released by the old owner.
func (c *CacheRepository) ReleaseLock(ctx context.Context, key, holder string) error {
	const script = `
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
else
	return 0
end`
	return c.client.Eval(ctx, script, []string{key}, holder).Err()
}
