// internal/service/dashboard_service.go
package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/cozinhapro/backoffice/internal/cache"
	"github.com/cozinhapro/backoffice/internal/domain"
	"github.com/cozinhapro/backoffice/internal/reports"
	"github.com/cozinhapro/backoffice/internal/repository"
	"github.com/cozinhapro/backoffice/internal/stats"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// consumptionWindow bounds how much history a refresh pulls. The trend
// chart only ever shows the last 30 days, so older rows never matter.
const consumptionWindow = 30 * 24 * time.Hour

type tenantDashboard struct {
	mu         sync.Mutex
	generation uint64
	latest     *domain.DashboardSnapshot
}

// DashboardService computes per-restaurant dashboard snapshots. Fetches
// for the same restaurant are serialized through a generation counter so
// a slow refresh finishing late cannot replace a newer snapshot, and the
// last good snapshot is kept as a fallback when a refresh fails.
type DashboardService struct {
	repo  repository.InventoryRepository
	cache cache.DashboardCache

	mu      sync.Mutex
	tenants map[int64]*tenantDashboard
}

func NewDashboardService(repo repository.InventoryRepository, dashCache cache.DashboardCache) *DashboardService {
	if dashCache == nil {
		dashCache = cache.NewNoopDashboardCache()
	}
	return &DashboardService{
		repo:    repo,
		cache:   dashCache,
		tenants: make(map[int64]*tenantDashboard),
	}
}

func (s *DashboardService) tenant(restaurantID int64) *tenantDashboard {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tenants[restaurantID]
	if !ok {
		t = &tenantDashboard{}
		s.tenants[restaurantID] = t
	}
	return t
}

// GetSnapshot returns the dashboard snapshot for a restaurant, from cache
// when fresh enough. On a refresh error the previous snapshot is returned
// alongside the error so callers can keep showing stale data.
func (s *DashboardService) GetSnapshot(ctx context.Context, restaurantID int64) (*domain.DashboardSnapshot, error) {
	if cached, ok, err := s.cache.Get(ctx, restaurantID); err != nil {
		log.Warn().Err(err).Int64("restaurant_id", restaurantID).Msg("dashboard cache read failed")
	} else if ok {
		return cached, nil
	}

	return s.Refresh(ctx, restaurantID)
}

// Refresh recomputes the snapshot from the store, bypassing the cache.
func (s *DashboardService) Refresh(ctx context.Context, restaurantID int64) (*domain.DashboardSnapshot, error) {
	t := s.tenant(restaurantID)

	t.mu.Lock()
	t.generation++
	generation := t.generation
	stale := t.latest
	t.mu.Unlock()

	now := time.Now()
	snapshot, err := s.compute(ctx, restaurantID, now)
	if err != nil {
		log.Error().Err(err).Int64("restaurant_id", restaurantID).Msg("dashboard refresh failed, keeping stale snapshot")
		return stale, fmt.Errorf("failed to refresh dashboard: %w", err)
	}

	t.mu.Lock()
	if generation < t.generation && t.latest != nil {
		// A newer refresh finished first; hand back its result instead.
		snapshot = t.latest
		t.mu.Unlock()
		return snapshot, nil
	}
	t.latest = snapshot
	t.mu.Unlock()

	if err := s.cache.Set(ctx, restaurantID, snapshot); err != nil {
		log.Warn().Err(err).Int64("restaurant_id", restaurantID).Msg("dashboard cache write failed")
	}

	return snapshot, nil
}

// Invalidate drops the cached snapshot, forcing the next read to refresh.
func (s *DashboardService) Invalidate(ctx context.Context, restaurantID int64) error {
	return s.cache.Invalidate(ctx, restaurantID)
}

func (s *DashboardService) compute(ctx context.Context, restaurantID int64, now time.Time) (*domain.DashboardSnapshot, error) {
	var (
		items       []domain.InventoryItem
		consumption []domain.ConsumptionRecord
		alerts      []domain.Alert
		suggestions []domain.RestockSuggestion
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = s.repo.GetItems(gctx, restaurantID)
		return err
	})
	g.Go(func() error {
		var err error
		consumption, err = s.repo.GetConsumption(gctx, restaurantID, now.Add(-consumptionWindow))
		return err
	})
	g.Go(func() error {
		var err error
		alerts, err = s.repo.GetAlerts(gctx, restaurantID)
		return err
	})
	g.Go(func() error {
		var err error
		suggestions, err = s.repo.GetRestockSuggestions(gctx, restaurantID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &domain.DashboardSnapshot{
		Stats:       stats.Compute(items, consumption, alerts, now),
		Reports:     reports.Build(items, consumption, suggestions, now),
		RefreshedAt: now,
	}, nil
}
