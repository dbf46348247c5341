package service

import (
	"context"
	"time"

	"github.com/cozinhapro/backoffice/internal/domain"
	"github.com/stretchr/testify/mock"
)

type mockInventoryRepository struct {
	mock.Mock
}

func (m *mockInventoryRepository) GetItems(ctx context.Context, restaurantID int64) ([]domain.InventoryItem, error) {
	args := m.Called(ctx, restaurantID)
	if items, ok := args.Get(0).([]domain.InventoryItem); ok {
		return items, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockInventoryRepository) GetConsumption(ctx context.Context, restaurantID int64, since time.Time) ([]domain.ConsumptionRecord, error) {
	args := m.Called(ctx, restaurantID, since)
	if records, ok := args.Get(0).([]domain.ConsumptionRecord); ok {
		return records, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockInventoryRepository) GetAlerts(ctx context.Context, restaurantID int64) ([]domain.Alert, error) {
	args := m.Called(ctx, restaurantID)
	if alerts, ok := args.Get(0).([]domain.Alert); ok {
		return alerts, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockInventoryRepository) GetRestockSuggestions(ctx context.Context, restaurantID int64) ([]domain.RestockSuggestion, error) {
	args := m.Called(ctx, restaurantID)
	if suggestions, ok := args.Get(0).([]domain.RestockSuggestion); ok {
		return suggestions, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockInventoryRepository) UpsertItems(ctx context.Context, restaurantID int64, items []domain.InventoryItem) (int, error) {
	args := m.Called(ctx, restaurantID, items)
	return args.Int(0), args.Error(1)
}

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }
