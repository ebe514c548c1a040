package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ZmnRobin/pc-builder/internal/domain"
)

const defaultTTL = 10 * time.Minute

type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Cache{client: client, ttl: ttl}
}

// buildKey identifies a recommendation by everything that affects it:
// purpose, budget and the (sorted) brand preferences.
func buildKey(req domain.BuildRequest) string {
	return fmt.Sprintf("build:%s:%d:%s:%s",
		req.Purpose, req.Budget, brandsKey(req.PreferBrands), brandsKey(req.AvoidBrands))
}

func brandsKey(brands []string) string {
	if len(brands) == 0 {
		return "-"
	}
	sorted := make([]string, len(brands))
	for i, b := range brands {
		sorted[i] = strings.ToLower(b)
	}
	sort.Strings(sorted)
	return strings.Join(sorted, ",")
}

// GetBuild returns a cached build, or (nil, false) on a miss.
func (c *Cache) GetBuild(ctx context.Context, req domain.BuildRequest) (*domain.Build, bool, error) {
	key := buildKey(req)
	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache get %s: %w", key, err)
	}

	var build domain.Build
	if err := json.Unmarshal([]byte(val), &build); err != nil {
		return nil, false, fmt.Errorf("unmarshal cached build %s: %w", key, err)
	}
	return &build, true, nil
}

// SetBuild stores a build under its request key.
func (c *Cache) SetBuild(ctx context.Context, req domain.BuildRequest, build *domain.Build) error {
	key := buildKey(req)
	val, err := json.Marshal(build)
	if err != nil {
		return fmt.Errorf("marshal build %s: %w", key, err)
	}
	if err := c.client.Set(ctx, key, val, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}
	return nil
}

// InvalidateBuilds drops every cached recommendation; called when a new
// catalog snapshot is published so no build outlives the prices it was
// computed from.
func (c *Cache) InvalidateBuilds(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, "build:*", 100).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("cache delete %s: %w", iter.Val(), err)
		}
	}
	return iter.Err()
}

// Ping connectivity
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
