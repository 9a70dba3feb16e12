package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"estate-service/internal/model"
)

const featuredKey = "properties:featured"

// FeaturedCache keeps the home-page featured listings in redis so browsing
// does not hit Postgres on every visit. Entries expire after a short TTL and
// are dropped eagerly whenever a promotion changes the catalog.
type FeaturedCache struct {
	cli *redis.Client
	ttl time.Duration
}

func NewFeaturedCache(cli *redis.Client) *FeaturedCache {
	return &FeaturedCache{cli: cli, ttl: 5 * time.Minute}
}

// Get returns the cached listings, or ok=false on a miss or any redis error.
func (c *FeaturedCache) Get(ctx context.Context) ([]model.Property, bool) {
	raw, err := c.cli.Get(ctx, featuredKey).Bytes()
	if err != nil {
		return nil, false
	}
	var list []model.Property
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, false
	}
	return list, true
}

func (c *FeaturedCache) Set(ctx context.Context, list []model.Property) error {
	raw, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return c.cli.Set(ctx, featuredKey, raw, c.ttl).Err()
}

func (c *FeaturedCache) Invalidate(ctx context.Context) error {
	return c.cli.Del(ctx, featuredKey).Err()
}
