package service

import (
	"context"
	"errors"
	"testing"

	"github.com/cozinhapro/backoffice/internal/domain"
	"github.com/cozinhapro/backoffice/internal/pricing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func pricingTestItems() []domain.InventoryItem {
	return []domain.InventoryItem{
		{ID: 1, Name: "Picanha", CategoryName: strPtr("Carnes"), CostPerUnit: floatPtr(10)},
		{ID: 2, Name: "Alface", CategoryName: strPtr("Hortifruti"), CostPerUnit: floatPtr(4)},
	}
}

func TestGetItemsLoadsBookLazily(t *testing.T) {
	repo := new(mockInventoryRepository)
	repo.On("GetItems", mock.Anything, int64(1)).Return(pricingTestItems(), nil).Once()

	svc := NewPricingService(repo)

	items, err := svc.GetItems(context.Background(), 1)
	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, 25.0, items[0].SuggestedPrice)

	// Second read serves the in-memory book without refetching.
	items, err = svc.GetItems(context.Background(), 1)
	assert.NoError(t, err)
	assert.Len(t, items, 2)
	repo.AssertExpectations(t)
}

func TestUpdatePriceIsPreviewOnly(t *testing.T) {
	repo := new(mockInventoryRepository)
	repo.On("GetItems", mock.Anything, int64(1)).Return(pricingTestItems(), nil)

	svc := NewPricingService(repo)

	updated, err := svc.UpdatePrice(context.Background(), 1, 1, 30)
	assert.NoError(t, err)
	assert.Equal(t, 30.0, *updated.CurrentPrice)

	// A reload rebuilds from costs and drops the override.
	assert.NoError(t, svc.Reload(context.Background(), 1))
	items, err := svc.GetItems(context.Background(), 1)
	assert.NoError(t, err)
	assert.Nil(t, items[0].CurrentPrice)
}

func TestRecalculateForProfitTarget(t *testing.T) {
	repo := new(mockInventoryRepository)
	repo.On("GetItems", mock.Anything, int64(1)).Return(pricingTestItems(), nil)

	svc := NewPricingService(repo)

	updated, markup, err := svc.RecalculateForProfitTarget(context.Background(), 1, 50)
	assert.NoError(t, err)
	assert.Equal(t, 2, updated)
	assert.Equal(t, 2.0, markup)

	items, err := svc.GetItems(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, 20.0, items[0].SuggestedPrice)
	assert.Equal(t, 50.0, items[0].ProfitMargin)
}

func TestRecalculateForProfitTargetRejectsInvalid(t *testing.T) {
	repo := new(mockInventoryRepository)
	svc := NewPricingService(repo)

	_, _, err := svc.RecalculateForProfitTarget(context.Background(), 1, 100)
	assert.ErrorIs(t, err, pricing.ErrInvalidProfitTarget)
	// The repository must not be hit for an invalid target.
	repo.AssertNotCalled(t, "GetItems")
}

func TestApplyToCategory(t *testing.T) {
	repo := new(mockInventoryRepository)
	repo.On("GetItems", mock.Anything, int64(1)).Return(pricingTestItems(), nil)

	svc := NewPricingService(repo)

	touched, err := svc.ApplyToCategory(context.Background(), 1, "Carnes", 3)
	assert.NoError(t, err)
	assert.Equal(t, 1, touched)

	items, err := svc.GetItems(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, 30.0, items[0].SuggestedPrice)
	assert.Equal(t, 10.0, items[1].SuggestedPrice)
}

func TestPricingBooksAreTenantScoped(t *testing.T) {
	repo := new(mockInventoryRepository)
	repo.On("GetItems", mock.Anything, int64(1)).Return(pricingTestItems(), nil)
	repo.On("GetItems", mock.Anything, int64(2)).Return([]domain.InventoryItem{}, nil)

	svc := NewPricingService(repo)

	one, err := svc.GetItems(context.Background(), 1)
	assert.NoError(t, err)
	two, err := svc.GetItems(context.Background(), 2)
	assert.NoError(t, err)

	assert.Len(t, one, 2)
	assert.Empty(t, two)
}

func TestReloadPropagatesFetchError(t *testing.T) {
	repo := new(mockInventoryRepository)
	repo.On("GetItems", mock.Anything, int64(1)).Return(nil, errors.New("connection reset"))

	svc := NewPricingService(repo)
	err := svc.Reload(context.Background(), 1)
	assert.Error(t, err)
}
