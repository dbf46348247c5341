package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cozinhapro/backoffice/internal/config"
	"github.com/cozinhapro/backoffice/internal/domain"
	"github.com/redis/go-redis/v9"
)

const dashboardKeyPrefix = "dashboard:stats"

// DashboardCache stores computed dashboard snapshots per restaurant so
// repeated loads within the TTL skip the database entirely.
type DashboardCache interface {
	Get(ctx context.Context, restaurantID int64) (*domain.DashboardSnapshot, bool, error)
	Set(ctx context.Context, restaurantID int64, snapshot *domain.DashboardSnapshot) error
	Invalidate(ctx context.Context, restaurantID int64) error
}

type redisDashboardCache struct {
	client *redis.Client
	ttl    time.Duration
}

type noopDashboardCache struct{}

func NewDashboardCache(cfg config.CacheConfig) (DashboardCache, error) {
	if !cfg.Enabled {
		return &noopDashboardCache{}, nil
	}

	client, ttl, err := newRedisClient(cfg)
	if err != nil {
		return nil, err
	}

	return &redisDashboardCache{
		client: client,
		ttl:    ttl,
	}, nil
}

func NewNoopDashboardCache() DashboardCache {
	return &noopDashboardCache{}
}

func (c *redisDashboardCache) Get(ctx context.Context, restaurantID int64) (*domain.DashboardSnapshot, bool, error) {
	payload, err := c.client.Get(ctx, dashboardKey(restaurantID)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get failed: %w", err)
	}

	var snapshot domain.DashboardSnapshot
	if err := json.Unmarshal(payload, &snapshot); err != nil {
		return nil, false, fmt.Errorf("decode dashboard snapshot cache: %w", err)
	}

	return &snapshot, true, nil
}

func (c *redisDashboardCache) Set(ctx context.Context, restaurantID int64, snapshot *domain.DashboardSnapshot) error {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("encode dashboard snapshot cache: %w", err)
	}

	if err := c.client.Set(ctx, dashboardKey(restaurantID), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}

	return nil
}

func (c *redisDashboardCache) Invalidate(ctx context.Context, restaurantID int64) error {
	if err := c.client.Del(ctx, dashboardKey(restaurantID)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

func (n *noopDashboardCache) Get(ctx context.Context, restaurantID int64) (*domain.DashboardSnapshot, bool, error) {
	return nil, false, nil
}

func (n *noopDashboardCache) Set(ctx context.Context, restaurantID int64, snapshot *domain.DashboardSnapshot) error {
	return nil
}

func (n *noopDashboardCache) Invalidate(ctx context.Context, restaurantID int64) error {
	return nil
}

func dashboardKey(restaurantID int64) string {
	return fmt.Sprintf("%s:%d", dashboardKeyPrefix, restaurantID)
}
