// internal/domain/dashboard.go
package domain

import "time"

// TopConsumingItem is one row of the 7-day top consumers list.
type TopConsumingItem struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// ConsumptionPoint is one day of the consumption-cost trend series.
type ConsumptionPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// CategoryShare is one slice of the category value distribution.
type CategoryShare struct {
	Name       string  `json:"name"`
	Value      float64 `json:"value"`
	Percentage int     `json:"percentage"`
}

// AlertsSummary counts alerts overall, unread, and per type tag.
type AlertsSummary struct {
	Total  int            `json:"total"`
	Unread int            `json:"unread"`
	ByType map[string]int `json:"by_type"`
}

// DashboardStats aggregates the inventory snapshot for the dashboard cards
// and charts. Derived and ephemeral: recomputed from raw rows on every
// refresh, never stored.
type DashboardStats struct {
	TotalItems           int                `json:"total_items"`
	LowStockItems        int                `json:"low_stock_items"`
	ExpiredItems         int                `json:"expired_items"`
	TotalValue           float64            `json:"total_value"`
	TopConsumingItems    []TopConsumingItem `json:"top_consuming_items"`
	MonthlyConsumption   []ConsumptionPoint `json:"monthly_consumption"`
	CategoryDistribution []CategoryShare    `json:"category_distribution"`
	AlertsSummary        AlertsSummary      `json:"alerts_summary"`
}

// PerformanceRow compares consumption against the current stock level.
// Restocked is always 0: there is no restock history table to source it
// from, and the column is kept so the report shape stays stable.
type PerformanceRow struct {
	Item       string  `json:"item"`
	Consumed   float64 `json:"consumed"`
	Restocked  float64 `json:"restocked"`
	Efficiency int     `json:"efficiency"`
}

// ConsumptionEntry is a cost-annotated consumption log line.
type ConsumptionEntry struct {
	Date     string  `json:"date"`
	Item     string  `json:"item"`
	Quantity float64 `json:"quantity"`
	Cost     float64 `json:"cost"`
}

// WasteRow is an expired item with its sunk cost and share of the whole
// inventory value.
type WasteRow struct {
	Item       string  `json:"item"`
	Expired    float64 `json:"expired"`
	Cost       float64 `json:"cost"`
	Percentage int     `json:"percentage"`
}

// Priority buckets restock urgency by days until stockout.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// RestockRecommendation is a prioritized restock suggestion row.
type RestockRecommendation struct {
	Item      string   `json:"item"`
	Current   float64  `json:"current"`
	Suggested float64  `json:"suggested"`
	Priority  Priority `json:"priority"`
}

// ReportData bundles the tabular reports built from the same raw rows as
// DashboardStats.
type ReportData struct {
	PerformanceReport      []PerformanceRow        `json:"performance_report"`
	ConsumptionHistory     []ConsumptionEntry      `json:"consumption_history"`
	WasteAnalysis          []WasteRow              `json:"waste_analysis"`
	RestockRecommendations []RestockRecommendation `json:"restock_recommendations"`
}

// DashboardSnapshot is the unit the dashboard service hands out and keeps
// as the stale fallback when a refresh fails.
type DashboardSnapshot struct {
	Stats       DashboardStats `json:"stats"`
	Reports     ReportData     `json:"reports"`
	RefreshedAt time.Time      `json:"refreshed_at"`
}
