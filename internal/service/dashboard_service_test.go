package service

import (
	"context"
	"errors"
	"testing"

	"github.com/cozinhapro/backoffice/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func dashboardTestItems() []domain.InventoryItem {
	return []domain.InventoryItem{
		{ID: 1, Name: "Arroz", CurrentQuantity: 10, MinQuantity: 2, CostPerUnit: floatPtr(4)},
		{ID: 2, Name: "Feijao", CurrentQuantity: 1, MinQuantity: 5, CostPerUnit: floatPtr(8)},
	}
}

func stubHappyRepo(repo *mockInventoryRepository) {
	repo.On("GetItems", mock.Anything, int64(1)).Return(dashboardTestItems(), nil)
	repo.On("GetConsumption", mock.Anything, int64(1), mock.Anything).Return([]domain.ConsumptionRecord{}, nil)
	repo.On("GetAlerts", mock.Anything, int64(1)).Return([]domain.Alert{}, nil)
	repo.On("GetRestockSuggestions", mock.Anything, int64(1)).Return([]domain.RestockSuggestion{}, nil)
}

func TestGetSnapshotComputesStats(t *testing.T) {
	repo := new(mockInventoryRepository)
	stubHappyRepo(repo)

	svc := NewDashboardService(repo, nil)
	snapshot, err := svc.GetSnapshot(context.Background(), 1)

	assert.NoError(t, err)
	assert.NotNil(t, snapshot)
	assert.Equal(t, 2, snapshot.Stats.TotalItems)
	assert.Equal(t, 1, snapshot.Stats.LowStockItems)
	assert.Equal(t, 48.0, snapshot.Stats.TotalValue)
	assert.False(t, snapshot.RefreshedAt.IsZero())
	repo.AssertExpectations(t)
}

func TestRefreshKeepsStaleSnapshotOnError(t *testing.T) {
	repo := new(mockInventoryRepository)
	repo.On("GetItems", mock.Anything, int64(1)).Return(dashboardTestItems(), nil).Once()
	repo.On("GetConsumption", mock.Anything, int64(1), mock.Anything).Return([]domain.ConsumptionRecord{}, nil).Once()
	repo.On("GetAlerts", mock.Anything, int64(1)).Return([]domain.Alert{}, nil).Once()
	repo.On("GetRestockSuggestions", mock.Anything, int64(1)).Return([]domain.RestockSuggestion{}, nil).Once()

	svc := NewDashboardService(repo, nil)
	first, err := svc.Refresh(context.Background(), 1)
	assert.NoError(t, err)
	assert.NotNil(t, first)

	// Second refresh fails entirely; the previous snapshot must survive.
	dbErr := errors.New("connection reset")
	repo.On("GetItems", mock.Anything, int64(1)).Return(nil, dbErr)
	repo.On("GetConsumption", mock.Anything, int64(1), mock.Anything).Return(nil, dbErr)
	repo.On("GetAlerts", mock.Anything, int64(1)).Return(nil, dbErr)
	repo.On("GetRestockSuggestions", mock.Anything, int64(1)).Return(nil, dbErr)

	second, err := svc.Refresh(context.Background(), 1)
	assert.Error(t, err)
	assert.Equal(t, first, second)
}

func TestRefreshErrorWithNoPriorSnapshot(t *testing.T) {
	repo := new(mockInventoryRepository)
	dbErr := errors.New("connection refused")
	repo.On("GetItems", mock.Anything, int64(1)).Return(nil, dbErr)
	repo.On("GetConsumption", mock.Anything, int64(1), mock.Anything).Return(nil, dbErr)
	repo.On("GetAlerts", mock.Anything, int64(1)).Return(nil, dbErr)
	repo.On("GetRestockSuggestions", mock.Anything, int64(1)).Return(nil, dbErr)

	svc := NewDashboardService(repo, nil)
	snapshot, err := svc.Refresh(context.Background(), 1)

	assert.Error(t, err)
	assert.Nil(t, snapshot)
}

func TestSnapshotsAreTenantScoped(t *testing.T) {
	repo := new(mockInventoryRepository)
	stubHappyRepo(repo)
	repo.On("GetItems", mock.Anything, int64(2)).Return([]domain.InventoryItem{}, nil)
	repo.On("GetConsumption", mock.Anything, int64(2), mock.Anything).Return([]domain.ConsumptionRecord{}, nil)
	repo.On("GetAlerts", mock.Anything, int64(2)).Return([]domain.Alert{}, nil)
	repo.On("GetRestockSuggestions", mock.Anything, int64(2)).Return([]domain.RestockSuggestion{}, nil)

	svc := NewDashboardService(repo, nil)

	one, err := svc.Refresh(context.Background(), 1)
	assert.NoError(t, err)
	two, err := svc.Refresh(context.Background(), 2)
	assert.NoError(t, err)

	assert.Equal(t, 2, one.Stats.TotalItems)
	assert.Equal(t, 0, two.Stats.TotalItems)
}
