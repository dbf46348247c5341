// internal/service/supplier_service.go
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/cozinhapro/backoffice/internal/domain"
	"github.com/cozinhapro/backoffice/internal/pricing"
	"github.com/cozinhapro/backoffice/internal/repository"
)

// SupplierService derives supplier and purchase views from inventory
// rows. There is no suppliers table: a supplier exists because some item
// names it, and a purchase is an item priced at its recorded unit cost.
type SupplierService struct {
	repo repository.InventoryRepository
}

func NewSupplierService(repo repository.InventoryRepository) *SupplierService {
	return &SupplierService{repo: repo}
}

// GetSuppliers lists the distinct suppliers in first-seen order, each with
// the products it supplies.
func (s *SupplierService) GetSuppliers(ctx context.Context, restaurantID int64) ([]domain.Supplier, error) {
	items, err := s.repo.GetItems(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load items for suppliers: %w", err)
	}

	suppliers := make([]domain.Supplier, 0)
	index := make(map[string]int)
	for _, item := range items {
		if item.Supplier == nil || *item.Supplier == "" {
			continue
		}
		name := *item.Supplier
		idx, ok := index[name]
		if !ok {
			idx = len(suppliers)
			index[name] = idx
			suppliers = append(suppliers, domain.Supplier{
				ID:   fmt.Sprintf("supplier-%d", idx+1),
				Name: name,
			})
		}
		suppliers[idx].Products = append(suppliers[idx].Products, item.Name)
	}
	return suppliers, nil
}

// GetPurchases lists the derived purchase history: one entry per item
// that has both a supplier and a recorded cost.
func (s *SupplierService) GetPurchases(ctx context.Context, restaurantID int64) ([]domain.Purchase, error) {
	items, err := s.repo.GetItems(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load items for purchases: %w", err)
	}
	return derivePurchases(items, ""), nil
}

// GetPurchasesBySupplier filters the derived purchases to one supplier,
// matched case-insensitively.
func (s *SupplierService) GetPurchasesBySupplier(ctx context.Context, restaurantID int64, supplier string) ([]domain.Purchase, error) {
	items, err := s.repo.GetItems(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load items for purchases: %w", err)
	}
	return derivePurchases(items, supplier), nil
}

// TotalSpent sums the derived purchase costs, optionally for one supplier.
func (s *SupplierService) TotalSpent(ctx context.Context, restaurantID int64, supplier string) (float64, error) {
	purchases, err := s.GetPurchasesBySupplier(ctx, restaurantID, supplier)
	if err != nil {
		return 0, err
	}
	total := 0.0
	for _, p := range purchases {
		total += p.TotalCost
	}
	return pricing.Round2(total), nil
}

func derivePurchases(items []domain.InventoryItem, supplier string) []domain.Purchase {
	purchases := make([]domain.Purchase, 0)
	for _, item := range items {
		if item.Supplier == nil || *item.Supplier == "" || item.CostPerUnit == nil {
			continue
		}
		if supplier != "" && !strings.EqualFold(*item.Supplier, supplier) {
			continue
		}
		purchases = append(purchases, domain.Purchase{
			ID:           fmt.Sprintf("purchase-%d", item.ID),
			SupplierName: *item.Supplier,
			ItemName:     item.Name,
			Quantity:     item.CurrentQuantity,
			UnitCost:     *item.CostPerUnit,
			TotalCost:    pricing.Round2(item.CurrentQuantity * *item.CostPerUnit),
			PurchaseDate: item.UpdatedAt,
		})
	}
	return purchases
}
