// internal/repository/inventory_repository.go
package repository

import (
	"context"
	"time"

	"github.com/cozinhapro/backoffice/internal/domain"
)

// InventoryRepository serves the point reads the dashboard, pricing and
// supplier screens are built from. Every read is scoped to one restaurant.
type InventoryRepository interface {
	GetItems(ctx context.Context, restaurantID int64) ([]domain.InventoryItem, error)
	GetConsumption(ctx context.Context, restaurantID int64, since time.Time) ([]domain.ConsumptionRecord, error)
	GetAlerts(ctx context.Context, restaurantID int64) ([]domain.Alert, error)
	GetRestockSuggestions(ctx context.Context, restaurantID int64) ([]domain.RestockSuggestion, error)

	// UpsertItems is used by the CSV importer; the API itself never
	// writes inventory.
	UpsertItems(ctx context.Context, restaurantID int64, items []domain.InventoryItem) (int, error)
}
