// File: services/cache/slots.go
package slotCache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Lookup is the outcome of a cache read. Generation is the provider's cache
// generation observed before the read and must be handed back to Set, so a
// list computed before an invalidation can never be served after it.
type Lookup struct {
	Slots      []string
	Hit        bool
	Generation int64
}

// SlotCache keeps computed customer slot lists for a short while. Any change
// to a provider's schedule or bookings must invalidate that provider's keys.
type SlotCache interface {
	Get(ctx context.Context, providerID, date string, granularity int) (Lookup, error)
	Set(ctx context.Context, providerID, date string, granularity int, generation int64, slots []string) error
	InvalidateProvider(ctx context.Context, providerID string) error
}

// RedisSlotCache stores each provider's slot lists under a generation
// counter. Invalidation bumps the counter; entries of older generations are
// never read again and expire with their TTL.
type RedisSlotCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSlotCache returns a cache backed by client. A nil client gives a
// cache that always misses, for tools and tests that run without Redis.
func NewRedisSlotCache(client *redis.Client, ttl time.Duration) *RedisSlotCache {
	return &RedisSlotCache{client: client, ttl: ttl}
}

const (
	cacheKeyPrefix      = "slots:"
	generationKeyPrefix = "slots-gen:"
)

func generationKey(providerID string) string {
	return generationKeyPrefix + providerID
}

func slotKey(providerID string, generation int64, date string, granularity int) string {
	return fmt.Sprintf("%s%s:%d:%s:%d", cacheKeyPrefix, providerID, generation, date, granularity)
}

func (c *RedisSlotCache) generation(ctx context.Context, providerID string) (int64, error) {
	gen, err := c.client.Get(ctx, generationKey(providerID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read slot cache generation: %w", err)
	}
	return gen, nil
}

func (c *RedisSlotCache) Get(ctx context.Context, providerID, date string, granularity int) (Lookup, error) {
	if c.client == nil {
		return Lookup{}, nil
	}
	gen, err := c.generation(ctx, providerID)
	if err != nil {
		return Lookup{}, err
	}
	lookup := Lookup{Generation: gen}

	val, err := c.client.Get(ctx, slotKey(providerID, gen, date, granularity)).Result()
	if errors.Is(err, redis.Nil) {
		return lookup, nil
	}
	if err != nil {
		return Lookup{}, fmt.Errorf("failed to read slot cache: %w", err)
	}

	var slots []string
	if err := json.Unmarshal([]byte(val), &slots); err != nil {
		return lookup, nil // corrupt entry, recompute
	}
	lookup.Slots = slots
	lookup.Hit = true
	return lookup, nil
}

func (c *RedisSlotCache) Set(ctx context.Context, providerID, date string, granularity int, generation int64, slots []string) error {
	if c.client == nil || c.ttl <= 0 {
		return nil
	}
	data, err := json.Marshal(slots)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, slotKey(providerID, generation, date, granularity), data, c.ttl).Err()
}

func (c *RedisSlotCache) InvalidateProvider(ctx context.Context, providerID string) error {
	if c.client == nil {
		return nil
	}
	if err := c.client.Incr(ctx, generationKey(providerID)).Err(); err != nil {
		return fmt.Errorf("failed to bump slot cache generation: %w", err)
	}
	return nil
}
