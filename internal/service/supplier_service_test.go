package service

import (
	"context"
	"testing"

	"github.com/cozinhapro/backoffice/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func supplierTestItems() []domain.InventoryItem {
	return []domain.InventoryItem{
		{ID: 1, Name: "Picanha", Supplier: strPtr("Friboi"), CostPerUnit: floatPtr(50), CurrentQuantity: 4},
		{ID: 2, Name: "Alface", Supplier: strPtr("Horta Local"), CostPerUnit: floatPtr(3), CurrentQuantity: 10},
		{ID: 3, Name: "Costela", Supplier: strPtr("Friboi"), CostPerUnit: floatPtr(30), CurrentQuantity: 2},
		// No supplier; invisible to the supplier views.
		{ID: 4, Name: "Sal", CostPerUnit: floatPtr(2), CurrentQuantity: 5},
		// Supplier but no cost; listed as a supplier product, never a purchase.
		{ID: 5, Name: "Tomate", Supplier: strPtr("Horta Local"), CurrentQuantity: 8},
	}
}

func TestGetSuppliersDerivation(t *testing.T) {
	repo := new(mockInventoryRepository)
	repo.On("GetItems", mock.Anything, int64(1)).Return(supplierTestItems(), nil)

	svc := NewSupplierService(repo)
	suppliers, err := svc.GetSuppliers(context.Background(), 1)

	assert.NoError(t, err)
	assert.Len(t, suppliers, 2)
	assert.Equal(t, "Friboi", suppliers[0].Name)
	assert.Equal(t, []string{"Picanha", "Costela"}, suppliers[0].Products)
	assert.Equal(t, "Horta Local", suppliers[1].Name)
	assert.Equal(t, []string{"Alface", "Tomate"}, suppliers[1].Products)
}

func TestGetPurchasesRequiresSupplierAndCost(t *testing.T) {
	repo := new(mockInventoryRepository)
	repo.On("GetItems", mock.Anything, int64(1)).Return(supplierTestItems(), nil)

	svc := NewSupplierService(repo)
	purchases, err := svc.GetPurchases(context.Background(), 1)

	assert.NoError(t, err)
	assert.Len(t, purchases, 3)
	assert.Equal(t, "Picanha", purchases[0].ItemName)
	assert.Equal(t, 200.0, purchases[0].TotalCost)
}

func TestGetPurchasesBySupplierCaseInsensitive(t *testing.T) {
	repo := new(mockInventoryRepository)
	repo.On("GetItems", mock.Anything, int64(1)).Return(supplierTestItems(), nil)

	svc := NewSupplierService(repo)
	purchases, err := svc.GetPurchasesBySupplier(context.Background(), 1, "friboi")

	assert.NoError(t, err)
	assert.Len(t, purchases, 2)
	for _, p := range purchases {
		assert.Equal(t, "Friboi", p.SupplierName)
	}
}

func TestTotalSpent(t *testing.T) {
	repo := new(mockInventoryRepository)
	repo.On("GetItems", mock.Anything, int64(1)).Return(supplierTestItems(), nil)

	svc := NewSupplierService(repo)

	total, err := svc.TotalSpent(context.Background(), 1, "")
	assert.NoError(t, err)
	// 4x50 + 10x3 + 2x30
	assert.Equal(t, 290.0, total)

	friboi, err := svc.TotalSpent(context.Background(), 1, "Friboi")
	assert.NoError(t, err)
	assert.Equal(t, 260.0, friboi)
}

func TestGetSuppliersEmptyInventory(t *testing.T) {
	repo := new(mockInventoryRepository)
	repo.On("GetItems", mock.Anything, int64(1)).Return([]domain.InventoryItem{}, nil)

	svc := NewSupplierService(repo)
	suppliers, err := svc.GetSuppliers(context.Background(), 1)

	assert.NoError(t, err)
	assert.Empty(t, suppliers)
}
