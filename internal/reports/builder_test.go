package reports

import (
	"fmt"
	"testing"
	"time"

	"github.com/cozinhapro/backoffice/internal/domain"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string        { return &s }
func floatPtr(f float64) *float64    { return &f }
func timePtr(t time.Time) *time.Time { return &t }

func testNow() time.Time {
	return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
}

func TestPerformanceReportEfficiency(t *testing.T) {
	now := testNow()
	items := []domain.InventoryItem{
		{ID: 1, Name: "Arroz", CurrentQuantity: 10},
		{ID: 2, Name: "Feijao", CurrentQuantity: 4},
		{ID: 3, Name: "Oleo", CurrentQuantity: 0},
	}
	consumption := []domain.ConsumptionRecord{
		{ItemID: 1, QuantityConsumed: 5, ConsumptionDate: now},
		{ItemID: 2, QuantityConsumed: 40, ConsumptionDate: now},
		{ItemID: 3, QuantityConsumed: 2, ConsumptionDate: now},
	}

	rows := Build(items, consumption, nil, now).PerformanceReport

	assert.Len(t, rows, 3)
	assert.Equal(t, 50, rows[0].Efficiency)
	// Consumption far above stock caps at 100.
	assert.Equal(t, 100, rows[1].Efficiency)
	// Zero stock yields zero, not a division by zero.
	assert.Equal(t, 0, rows[2].Efficiency)
	for _, row := range rows {
		assert.Equal(t, 0.0, row.Restocked)
	}
}

func TestPerformanceReportLimit(t *testing.T) {
	items := make([]domain.InventoryItem, 0, 15)
	for i := 0; i < 15; i++ {
		items = append(items, domain.InventoryItem{ID: int64(i + 1), Name: fmt.Sprintf("Item %d", i+1), CurrentQuantity: 1})
	}

	rows := Build(items, nil, nil, testNow()).PerformanceReport

	assert.Len(t, rows, 10)
	assert.Equal(t, "Item 1", rows[0].Item)
	assert.Equal(t, "Item 10", rows[9].Item)
}

func TestConsumptionHistoryLimitAndOrder(t *testing.T) {
	now := testNow()
	consumption := make([]domain.ConsumptionRecord, 0, 60)
	for i := 0; i < 60; i++ {
		consumption = append(consumption, domain.ConsumptionRecord{
			ItemID:           int64(i + 1),
			ItemName:         strPtr(fmt.Sprintf("Item %d", i+1)),
			ConsumptionDate:  now.Add(-time.Duration(i) * time.Hour),
			QuantityConsumed: 2,
			ItemCostPerUnit:  floatPtr(1.5),
		})
	}

	entries := Build(nil, consumption, nil, now).ConsumptionHistory

	assert.Len(t, entries, 50)
	// Source order is preserved, not re-sorted.
	assert.Equal(t, "Item 1", entries[0].Item)
	assert.Equal(t, "Item 50", entries[49].Item)
	assert.Equal(t, 3.0, entries[0].Cost)
}

func TestConsumptionHistoryMissingJoin(t *testing.T) {
	now := testNow()
	consumption := []domain.ConsumptionRecord{
		{ItemID: 1, ConsumptionDate: now, QuantityConsumed: 2},
	}

	entries := Build(nil, consumption, nil, now).ConsumptionHistory

	assert.Equal(t, domain.UnknownItemLabel, entries[0].Item)
	assert.Equal(t, 0.0, entries[0].Cost)
}

func TestWasteAnalysisPercentage(t *testing.T) {
	now := testNow()
	items := []domain.InventoryItem{
		{ID: 1, Name: "Queijo", CurrentQuantity: 10, CostPerUnit: floatPtr(5), ExpiryDate: timePtr(now.Add(-24 * time.Hour))},
		{ID: 2, Name: "Arroz", CurrentQuantity: 50, CostPerUnit: floatPtr(3)},
	}

	rows := Build(items, nil, nil, now).WasteAnalysis

	assert.Len(t, rows, 1)
	assert.Equal(t, "Queijo", rows[0].Item)
	assert.Equal(t, 50.0, rows[0].Cost)
	// 50 out of 200 total inventory value.
	assert.Equal(t, 25, rows[0].Percentage)
}

func TestWasteAnalysisNoExpired(t *testing.T) {
	now := testNow()
	items := []domain.InventoryItem{
		{ID: 1, Name: "Arroz", CurrentQuantity: 5, CostPerUnit: floatPtr(2), ExpiryDate: timePtr(now.Add(24 * time.Hour))},
	}

	rows := Build(items, nil, nil, now).WasteAnalysis

	assert.Empty(t, rows)
}

func TestRestockPriorities(t *testing.T) {
	suggestions := []domain.RestockSuggestion{
		{ItemID: 1, ItemName: strPtr("Tomate"), SuggestedQuantity: 10, DaysUntilStockout: floatPtr(3)},
		{ItemID: 2, ItemName: strPtr("Cebola"), SuggestedQuantity: 8, DaysUntilStockout: floatPtr(4)},
		{ItemID: 3, ItemName: strPtr("Alho"), SuggestedQuantity: 5, DaysUntilStockout: floatPtr(8)},
		// Missing projection is treated as urgent.
		{ItemID: 4, ItemName: strPtr("Sal"), SuggestedQuantity: 2},
	}

	recs := Build(nil, nil, suggestions, testNow()).RestockRecommendations

	assert.Len(t, recs, 4)
	assert.Equal(t, domain.PriorityHigh, recs[0].Priority)
	assert.Equal(t, domain.PriorityMedium, recs[1].Priority)
	assert.Equal(t, domain.PriorityLow, recs[2].Priority)
	assert.Equal(t, domain.PriorityHigh, recs[3].Priority)
}

func TestRestockRecommendationFields(t *testing.T) {
	suggestions := []domain.RestockSuggestion{
		{ItemID: 1, ItemName: strPtr("Tomate"), ItemQuantity: floatPtr(2), SuggestedQuantity: 10, DaysUntilStockout: floatPtr(1)},
		{ItemID: 2, SuggestedQuantity: 4, DaysUntilStockout: floatPtr(9)},
	}

	recs := Build(nil, nil, suggestions, testNow()).RestockRecommendations

	assert.Equal(t, "Tomate", recs[0].Item)
	assert.Equal(t, 2.0, recs[0].Current)
	assert.Equal(t, 10.0, recs[0].Suggested)
	assert.Equal(t, domain.UnknownItemLabel, recs[1].Item)
	assert.Equal(t, 0.0, recs[1].Current)
}
