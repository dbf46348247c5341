// internal/domain/pricing.go
package domain

import "time"

// ItemPricing is the pricing view of one inventory item. Derived at load
// time and mutable only in memory: a price override set through the API
// lives until the next reload and is never written back to the store.
type ItemPricing struct {
	ItemID           int64     `json:"item_id"`
	ItemName         string    `json:"item_name"`
	CurrentCost      float64   `json:"current_cost"`
	SuggestedPrice   float64   `json:"suggested_price"`
	CurrentPrice     *float64  `json:"current_price,omitempty"`
	ProfitMargin     float64   `json:"profit_margin"`
	MarkupPercentage float64   `json:"markup_percentage"`
	Category         string    `json:"category"`
	Supplier         string    `json:"supplier"`
	LastUpdated      time.Time `json:"last_updated"`
}

// PricingSummary aggregates the pricing table for the dashboard header.
type PricingSummary struct {
	TotalItems            int     `json:"total_items"`
	ItemsNeedingUpdate    int     `json:"items_needing_update"`
	AverageMargin         float64 `json:"average_margin"`
	TotalPotentialRevenue float64 `json:"total_potential_revenue"`
	CostInflationTrend    float64 `json:"cost_inflation_trend"`
}
