// internal/stats/aggregator.go
package stats

import (
	"math"
	"sort"
	"time"

	"github.com/cozinhapro/backoffice/internal/domain"
)

const (
	topConsumingWindow = 7 * 24 * time.Hour
	topConsumingLimit  = 5
	trendTailDays      = 30
)

// Compute reduces the raw row sets into DashboardStats. It is total: empty
// or partially-null input produces zero values, never an error, and every
// ratio with a zero denominator yields 0.
//
// The consumption rows are expected to already be bounded to the trend
// window by the fetch layer; Compute only takes the 30-entry tail of the
// date-bucketed series.
func Compute(items []domain.InventoryItem, consumption []domain.ConsumptionRecord, alerts []domain.Alert, now time.Time) domain.DashboardStats {
	totalValue := 0.0
	lowStock := 0
	expired := 0
	for _, item := range items {
		totalValue += item.StockValue()
		if item.IsLowStock() {
			lowStock++
		}
		if item.IsExpired(now) {
			expired++
		}
	}

	return domain.DashboardStats{
		TotalItems:           len(items),
		LowStockItems:        lowStock,
		ExpiredItems:         expired,
		TotalValue:           totalValue,
		TopConsumingItems:    topConsuming(consumption, now),
		MonthlyConsumption:   consumptionTrend(consumption),
		CategoryDistribution: categoryDistribution(items, totalValue),
		AlertsSummary:        summarizeAlerts(alerts),
	}
}

// topConsuming groups the last 7 days of consumption by item name and
// returns the five largest totals. The sort is stable so items consumed
// equally keep their first-seen order.
func topConsuming(consumption []domain.ConsumptionRecord, now time.Time) []domain.TopConsumingItem {
	cutoff := now.Add(-topConsumingWindow)

	totals := make(map[string]int)
	ranked := make([]domain.TopConsumingItem, 0)
	for _, rec := range consumption {
		if rec.ConsumptionDate.Before(cutoff) {
			continue
		}
		name := rec.ItemNameLabel()
		idx, ok := totals[name]
		if !ok {
			totals[name] = len(ranked)
			ranked = append(ranked, domain.TopConsumingItem{
				Name: name,
				Unit: rec.ItemUnitLabel(),
			})
			idx = len(ranked) - 1
		}
		ranked[idx].Quantity += rec.QuantityConsumed
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Quantity > ranked[j].Quantity
	})
	if len(ranked) > topConsumingLimit {
		ranked = ranked[:topConsumingLimit]
	}
	return ranked
}

// consumptionTrend buckets consumption cost by day, ascending, keeping the
// most recent 30 buckets.
func consumptionTrend(consumption []domain.ConsumptionRecord) []domain.ConsumptionPoint {
	daily := make(map[string]float64)
	for _, rec := range consumption {
		day := rec.ConsumptionDate.Format("2006-01-02")
		daily[day] += rec.Cost()
	}

	points := make([]domain.ConsumptionPoint, 0, len(daily))
	for day, value := range daily {
		points = append(points, domain.ConsumptionPoint{Date: day, Value: value})
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Date < points[j].Date
	})
	if len(points) > trendTailDays {
		points = points[len(points)-trendTailDays:]
	}
	return points
}

// categoryDistribution sums stock value per category label, preserving the
// order categories first appear in the item list. Percentages are 0 across
// the board when the inventory is worthless.
func categoryDistribution(items []domain.InventoryItem, totalValue float64) []domain.CategoryShare {
	index := make(map[string]int)
	shares := make([]domain.CategoryShare, 0)
	for _, item := range items {
		label := item.CategoryLabel()
		idx, ok := index[label]
		if !ok {
			index[label] = len(shares)
			shares = append(shares, domain.CategoryShare{Name: label})
			idx = len(shares) - 1
		}
		shares[idx].Value += item.StockValue()
	}

	for i := range shares {
		if totalValue > 0 {
			shares[i].Percentage = int(math.Round(shares[i].Value / totalValue * 100))
		}
	}
	return shares
}

func summarizeAlerts(alerts []domain.Alert) domain.AlertsSummary {
	summary := domain.AlertsSummary{
		Total:  len(alerts),
		ByType: make(map[string]int),
	}
	for _, alert := range alerts {
		summary.ByType[alert.AlertType]++
		if !alert.IsRead {
			summary.Unread++
		}
	}
	return summary
}
