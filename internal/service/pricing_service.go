// internal/service/pricing_service.go
package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/cozinhapro/backoffice/internal/domain"
	"github.com/cozinhapro/backoffice/internal/pricing"
	"github.com/cozinhapro/backoffice/internal/repository"
	"github.com/rs/zerolog/log"
)

type tenantPricing struct {
	mu         sync.Mutex
	generation uint64
	book       *pricing.Book
	loaded     bool
}

// PricingService keeps one in-memory pricing book per restaurant, built
// from the current inventory snapshot. Manual price changes live only in
// the book; a reload rebuilds everything from costs.
type PricingService struct {
	repo repository.InventoryRepository

	mu      sync.Mutex
	tenants map[int64]*tenantPricing
}

func NewPricingService(repo repository.InventoryRepository) *PricingService {
	return &PricingService{
		repo:    repo,
		tenants: make(map[int64]*tenantPricing),
	}
}

func (s *PricingService) tenant(restaurantID int64) *tenantPricing {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tenants[restaurantID]
	if !ok {
		t = &tenantPricing{book: pricing.NewBook()}
		s.tenants[restaurantID] = t
	}
	return t
}

// book returns the restaurant's pricing book, loading it from inventory
// on first use.
func (s *PricingService) book(ctx context.Context, restaurantID int64) (*pricing.Book, error) {
	t := s.tenant(restaurantID)

	t.mu.Lock()
	loaded := t.loaded
	t.mu.Unlock()
	if loaded {
		return t.book, nil
	}

	return t.book, s.reload(ctx, restaurantID, t)
}

// Reload rebuilds the restaurant's pricing book from the current
// inventory, discarding any manual overrides.
func (s *PricingService) Reload(ctx context.Context, restaurantID int64) error {
	return s.reload(ctx, restaurantID, s.tenant(restaurantID))
}

func (s *PricingService) reload(ctx context.Context, restaurantID int64, t *tenantPricing) error {
	t.mu.Lock()
	t.generation++
	generation := t.generation
	t.mu.Unlock()

	items, err := s.repo.GetItems(ctx, restaurantID)
	if err != nil {
		return fmt.Errorf("failed to load items for pricing: %w", err)
	}

	if !t.book.Load(items, generation) {
		log.Debug().Int64("restaurant_id", restaurantID).Msg("pricing reload superseded by a newer one")
		return nil
	}

	t.mu.Lock()
	t.loaded = true
	t.mu.Unlock()
	return nil
}

// GetItems returns the current pricing rows.
func (s *PricingService) GetItems(ctx context.Context, restaurantID int64) ([]domain.ItemPricing, error) {
	book, err := s.book(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	return book.Items(), nil
}

// GetSummary aggregates the pricing book for the summary header.
func (s *PricingService) GetSummary(ctx context.Context, restaurantID int64) (domain.PricingSummary, error) {
	book, err := s.book(ctx, restaurantID)
	if err != nil {
		return domain.PricingSummary{}, err
	}
	return book.Summary(), nil
}

// UpdatePrice records a manual sale price for one item. The override is a
// preview only and disappears on the next reload.
func (s *PricingService) UpdatePrice(ctx context.Context, restaurantID, itemID int64, price float64) (domain.ItemPricing, error) {
	book, err := s.book(ctx, restaurantID)
	if err != nil {
		return domain.ItemPricing{}, err
	}
	return book.UpdatePrice(itemID, price)
}

// RecalculateAll reprices every item at the given markup multiplier and
// reports how many items were touched.
func (s *PricingService) RecalculateAll(ctx context.Context, restaurantID int64, markup float64) (int, error) {
	book, err := s.book(ctx, restaurantID)
	if err != nil {
		return 0, err
	}
	return book.RecalculateAll(markup), nil
}

// RecalculateForProfitTarget converts a desired profit margin into its
// markup and reprices everything with it.
func (s *PricingService) RecalculateForProfitTarget(ctx context.Context, restaurantID int64, profitPercent float64) (int, float64, error) {
	markup, err := pricing.MarkupForProfitTarget(profitPercent)
	if err != nil {
		return 0, 0, err
	}

	book, err := s.book(ctx, restaurantID)
	if err != nil {
		return 0, 0, err
	}
	return book.RecalculateAll(markup), markup, nil
}

// ApplyToCategory reprices only the items in the named category.
func (s *PricingService) ApplyToCategory(ctx context.Context, restaurantID int64, category string, markup float64) (int, error) {
	book, err := s.book(ctx, restaurantID)
	if err != nil {
		return 0, err
	}
	return book.ApplyToCategory(category, markup), nil
}
