package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"shopadmin-service/internal/domain/display"
)

const feedKey = "storefront:home_feed"

// FeedCache caches the assembled storefront home feed in Redis. A cache miss
// is reported as (nil, nil); callers rebuild and Set.
type FeedCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewFeedCache(client *redis.Client, ttl time.Duration) *FeedCache {
	return &FeedCache{client: client, ttl: ttl}
}

func (c *FeedCache) Get(ctx context.Context) (*display.HomeFeed, error) {
	payload, err := c.client.Get(ctx, feedKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read feed cache: %w", err)
	}

	var feed display.HomeFeed
	if err := json.Unmarshal(payload, &feed); err != nil {
		return nil, fmt.Errorf("failed to decode cached feed: %w", err)
	}

	return &feed, nil
}

func (c *FeedCache) Set(ctx context.Context, feed *display.HomeFeed) error {
	payload, err := json.Marshal(feed)
	if err != nil {
		return fmt.Errorf("failed to encode feed: %w", err)
	}

	if err := c.client.Set(ctx, feedKey, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write feed cache: %w", err)
	}

	return nil
}

// Invalidate drops the cached feed; called after any display write.
func (c *FeedCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, feedKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate feed cache: %w", err)
	}

	return nil
}
