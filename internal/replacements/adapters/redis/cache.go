package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"replacement-metrics-service/internal/replacements/core/domain"
	"replacement-metrics-service/internal/replacements/core/ports"

	goredis "github.com/go-redis/redis/v8"
)

const DashboardKey = "replacements:dashboard"

type Options struct {
	Addr     string
	Password string
	DB       int
}

func NewClient(opt Options) *goredis.Client {
	return goredis.NewClient(&goredis.Options{
		Addr:     opt.Addr,
		Password: opt.Password,
		DB:       opt.DB,
	})
}

// DashboardCache keeps the last built dashboard as JSON.
type DashboardCache struct {
	client *goredis.Client
	ttl    time.Duration
}

func NewDashboardCache(client *goredis.Client, ttl time.Duration) *DashboardCache {
	return &DashboardCache{client: client, ttl: ttl}
}

var _ ports.DashboardCachePort = (*DashboardCache)(nil)

func (c *DashboardCache) GetDashboard(ctx context.Context) (*domain.Dashboard, error) {
	b, err := c.client.Get(ctx, DashboardKey).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, ports.ErrCacheMiss
	}
	if err != nil {
		return nil, err
	}

	var d domain.Dashboard
	if err := json.Unmarshal(b, &d); err != nil {
		return nil, fmt.Errorf("decode cached dashboard: %w", err)
	}
	return &d, nil
}

func (c *DashboardCache) SetDashboard(ctx context.Context, d *domain.Dashboard) error {
	b, err := json.Marshal(d)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, DashboardKey, b, c.ttl).Err()
}

func (c *DashboardCache) InvalidateDashboard(ctx context.Context) error {
	return c.client.Del(ctx, DashboardKey).Err()
}
