package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const statsKey = "dashboard:stats"

// DashboardCache is a read-through cache for the dashboard stats
// payload. A nil *DashboardCache is a no-op, so callers never branch on
// whether caching is configured.
type DashboardCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewDashboardCache(client *redis.Client, ttl time.Duration) *DashboardCache {
	return &DashboardCache{Client: client, TTL: ttl}
}

func (c *DashboardCache) Get(ctx context.Context, out any) (bool, error) {
	if c == nil {
		return false, nil
	}
	raw, err := c.Client.Get(ctx, statsKey).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, err
	}
	return true, nil
}

func (c *DashboardCache) Set(ctx context.Context, stats any) error {
	if c == nil {
		return nil
	}
	raw, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, statsKey, raw, c.TTL).Err()
}

// Invalidate drops the cached stats. Called on every order write.
func (c *DashboardCache) Invalidate(ctx context.Context) error {
	if c == nil {
		return nil
	}
	return c.Client.Del(ctx, statsKey).Err()
}
