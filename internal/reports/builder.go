// internal/reports/builder.go
package reports

import (
	"math"
	"time"

	"github.com/cozinhapro/backoffice/internal/domain"
)

const (
	performanceItemLimit   = 10
	consumptionHistoryMax  = 50
	highPriorityCutoffDays = 3
	mediumPriorityCutoff   = 7
)

// Build reduces the raw row sets into the tabular reports. Like the stats
// aggregator it is total: missing joins fall back to placeholder labels and
// zero values, and no ratio can divide by zero.
func Build(items []domain.InventoryItem, consumption []domain.ConsumptionRecord, suggestions []domain.RestockSuggestion, now time.Time) domain.ReportData {
	return domain.ReportData{
		PerformanceReport:      performanceReport(items, consumption),
		ConsumptionHistory:     consumptionHistory(consumption),
		WasteAnalysis:          wasteAnalysis(items, now),
		RestockRecommendations: restockRecommendations(suggestions),
	}
}

// performanceReport covers the first 10 items in fetch order. Efficiency is
// consumed quantity over current stock, capped at 100. Restocked stays 0
// until a restock history source exists.
func performanceReport(items []domain.InventoryItem, consumption []domain.ConsumptionRecord) []domain.PerformanceRow {
	limit := len(items)
	if limit > performanceItemLimit {
		limit = performanceItemLimit
	}

	rows := make([]domain.PerformanceRow, 0, limit)
	for _, item := range items[:limit] {
		consumed := 0.0
		for _, rec := range consumption {
			if rec.ItemID == item.ID {
				consumed += rec.QuantityConsumed
			}
		}

		efficiency := 0
		if item.CurrentQuantity > 0 {
			efficiency = int(math.Round(math.Min(100, consumed/item.CurrentQuantity*100)))
		}

		rows = append(rows, domain.PerformanceRow{
			Item:       item.Name,
			Consumed:   consumed,
			Restocked:  0,
			Efficiency: efficiency,
		})
	}
	return rows
}

// consumptionHistory annotates the first 50 rows with their cost, keeping
// the fetch layer's ordering.
func consumptionHistory(consumption []domain.ConsumptionRecord) []domain.ConsumptionEntry {
	limit := len(consumption)
	if limit > consumptionHistoryMax {
		limit = consumptionHistoryMax
	}

	entries := make([]domain.ConsumptionEntry, 0, limit)
	for _, rec := range consumption[:limit] {
		entries = append(entries, domain.ConsumptionEntry{
			Date:     rec.ConsumptionDate.Format("2006-01-02"),
			Item:     rec.ItemNameLabel(),
			Quantity: rec.QuantityConsumed,
			Cost:     rec.Cost(),
		})
	}
	return entries
}

// wasteAnalysis lists expired items with their sunk cost as a share of the
// whole inventory value, not just the expired portion.
func wasteAnalysis(items []domain.InventoryItem, now time.Time) []domain.WasteRow {
	totalValue := 0.0
	for _, item := range items {
		totalValue += item.StockValue()
	}

	rows := make([]domain.WasteRow, 0)
	for _, item := range items {
		if !item.IsExpired(now) {
			continue
		}
		cost := item.StockValue()
		percentage := 0
		if totalValue > 0 {
			percentage = int(math.Round(cost / totalValue * 100))
		}
		rows = append(rows, domain.WasteRow{
			Item:       item.Name,
			Expired:    item.CurrentQuantity,
			Cost:       cost,
			Percentage: percentage,
		})
	}
	return rows
}

// restockRecommendations buckets suggestions by days until stockout. A
// missing days_until_stockout counts as 0 and therefore lands in the high
// bucket: an item we cannot project for is treated as urgent, not ignored.
func restockRecommendations(suggestions []domain.RestockSuggestion) []domain.RestockRecommendation {
	recs := make([]domain.RestockRecommendation, 0, len(suggestions))
	for _, s := range suggestions {
		days := 0.0
		if s.DaysUntilStockout != nil {
			days = *s.DaysUntilStockout
		}

		priority := domain.PriorityLow
		switch {
		case days <= highPriorityCutoffDays:
			priority = domain.PriorityHigh
		case days <= mediumPriorityCutoff:
			priority = domain.PriorityMedium
		}

		name := domain.UnknownItemLabel
		if s.ItemName != nil && *s.ItemName != "" {
			name = *s.ItemName
		}
		current := 0.0
		if s.ItemQuantity != nil {
			current = *s.ItemQuantity
		}

		recs = append(recs, domain.RestockRecommendation{
			Item:      name,
			Current:   current,
			Suggested: s.SuggestedQuantity,
			Priority:  priority,
		})
	}
	return recs
}
