// internal/domain/models.go
package domain

import "time"

// Placeholder labels used when an optional join or field is absent.
const (
	UncategorizedLabel   = "Sem Categoria"
	UnknownItemLabel     = "Unknown"
	UnknownSupplierLabel = "N/A"
)

// Category groups inventory items for distribution charts and pricing rules.
type Category struct {
	ID           int64     `json:"id" db:"id"`
	RestaurantID int64     `json:"restaurant_id" db:"restaurant_id"`
	Name         string    `json:"name" db:"name"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// InventoryItem is a per-request snapshot row from inventory_items, joined
// with its category name when the item has one. The optional joins and
// numeric fields are pointers; the accessor methods apply the defined
// fallbacks so aggregation code never branches on nil.
type InventoryItem struct {
	ID              int64      `json:"id" db:"id"`
	RestaurantID    int64      `json:"restaurant_id" db:"restaurant_id"`
	Name            string     `json:"name" db:"name"`
	Unit            string     `json:"unit" db:"unit"`
	CategoryName    *string    `json:"category_name" db:"category_name"`
	CurrentQuantity float64    `json:"current_quantity" db:"current_quantity"`
	MinQuantity     float64    `json:"min_quantity" db:"min_quantity"`
	CostPerUnit     *float64   `json:"cost_per_unit" db:"cost_per_unit"`
	ExpiryDate      *time.Time `json:"expiry_date" db:"expiry_date"`
	Supplier        *string    `json:"supplier" db:"supplier"`
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at" db:"updated_at"`
}

// UnitCost returns the cost per unit, 0 when unknown.
func (i InventoryItem) UnitCost() float64 {
	if i.CostPerUnit == nil {
		return 0
	}
	return *i.CostPerUnit
}

// StockValue is current_quantity x cost_per_unit with missing cost as 0.
func (i InventoryItem) StockValue() float64 {
	return i.CurrentQuantity * i.UnitCost()
}

// CategoryLabel resolves the joined category name or the placeholder.
func (i InventoryItem) CategoryLabel() string {
	if i.CategoryName == nil || *i.CategoryName == "" {
		return UncategorizedLabel
	}
	return *i.CategoryName
}

// SupplierLabel resolves the supplier name or the placeholder.
func (i InventoryItem) SupplierLabel() string {
	if i.Supplier == nil || *i.Supplier == "" {
		return UnknownSupplierLabel
	}
	return *i.Supplier
}

// IsLowStock reports whether the item sits at or below its reorder threshold.
func (i InventoryItem) IsLowStock() bool {
	return i.CurrentQuantity <= i.MinQuantity
}

// IsExpired reports whether the item's expiry date has passed.
func (i InventoryItem) IsExpired(now time.Time) bool {
	return i.ExpiryDate != nil && i.ExpiryDate.Before(now)
}

// ConsumptionRecord is an append-only consumption log row, optionally joined
// with the consumed item's name, unit and cost.
type ConsumptionRecord struct {
	ID               int64     `json:"id" db:"id"`
	RestaurantID     int64     `json:"restaurant_id" db:"restaurant_id"`
	ItemID           int64     `json:"item_id" db:"item_id"`
	ConsumptionDate  time.Time `json:"consumption_date" db:"consumption_date"`
	QuantityConsumed float64   `json:"quantity_consumed" db:"quantity_consumed"`
	ItemName         *string   `json:"item_name" db:"item_name"`
	ItemUnit         *string   `json:"item_unit" db:"item_unit"`
	ItemCostPerUnit  *float64  `json:"item_cost_per_unit" db:"item_cost_per_unit"`
}

// ItemNameLabel resolves the joined item name or the placeholder.
func (c ConsumptionRecord) ItemNameLabel() string {
	if c.ItemName == nil || *c.ItemName == "" {
		return UnknownItemLabel
	}
	return *c.ItemName
}

// ItemUnitLabel resolves the joined unit, empty when unknown.
func (c ConsumptionRecord) ItemUnitLabel() string {
	if c.ItemUnit == nil {
		return ""
	}
	return *c.ItemUnit
}

// Cost is quantity_consumed x the joined cost_per_unit, 0 when unknown.
func (c ConsumptionRecord) Cost() float64 {
	if c.ItemCostPerUnit == nil {
		return 0
	}
	return c.QuantityConsumed * *c.ItemCostPerUnit
}

// Alert is generated externally (expiry scans, stock watchers) and only
// summarized here.
type Alert struct {
	ID           int64     `json:"id" db:"id"`
	RestaurantID int64     `json:"restaurant_id" db:"restaurant_id"`
	ItemID       int64     `json:"item_id" db:"item_id"`
	AlertType    string    `json:"alert_type" db:"alert_type"`
	IsRead       bool      `json:"is_read" db:"is_read"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// RestockSuggestion is computed externally, optionally joined with the
// linked item's name and current quantity.
type RestockSuggestion struct {
	ID                  int64    `json:"id" db:"id"`
	RestaurantID        int64    `json:"restaurant_id" db:"restaurant_id"`
	ItemID              int64    `json:"item_id" db:"item_id"`
	SuggestedQuantity   float64  `json:"suggested_quantity" db:"suggested_quantity"`
	DaysUntilStockout   *float64 `json:"days_until_stockout" db:"days_until_stockout"`
	AvgDailyConsumption float64  `json:"avg_daily_consumption" db:"avg_daily_consumption"`
	ItemName            *string  `json:"item_name" db:"item_name"`
	ItemQuantity        *float64 `json:"item_current_quantity" db:"item_current_quantity"`
}

// Restaurant is the tenant row, including branding customization fields.
type Restaurant struct {
	ID             int64     `json:"id" db:"id"`
	Name           string    `json:"name" db:"name"`
	Email          *string   `json:"email" db:"email"`
	Phone          *string   `json:"phone" db:"phone"`
	Address        *string   `json:"address" db:"address"`
	Description    *string   `json:"description" db:"description"`
	LogoURL        *string   `json:"logo_url" db:"logo_url"`
	PrimaryColor   string    `json:"primary_color" db:"primary_color"`
	SecondaryColor string    `json:"secondary_color" db:"secondary_color"`
	FontFamily     string    `json:"font_family" db:"font_family"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

// RestaurantMember links a user to a restaurant with a role. Authentication
// itself is handled upstream; the service only reads memberships.
type RestaurantMember struct {
	ID           int64     `json:"id" db:"id"`
	UserID       string    `json:"user_id" db:"user_id"`
	RestaurantID int64     `json:"restaurant_id" db:"restaurant_id"`
	Role         string    `json:"role" db:"role"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// BrandingUpdate carries the mutable customization fields. Nil fields are
// left untouched.
type BrandingUpdate struct {
	PrimaryColor   *string `json:"primary_color"`
	SecondaryColor *string `json:"secondary_color"`
	FontFamily     *string `json:"font_family"`
}

// Supplier is derived from the distinct supplier names on inventory items;
// there is no suppliers table.
type Supplier struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Products []string `json:"products"`
}

// Purchase is derived purchase history: one entry per supplied inventory
// item, priced at its recorded unit cost.
type Purchase struct {
	ID           string    `json:"id"`
	SupplierName string    `json:"supplier_name"`
	ItemName     string    `json:"item_name"`
	Quantity     float64   `json:"quantity"`
	UnitCost     float64   `json:"unit_cost"`
	TotalCost    float64   `json:"total_cost"`
	PurchaseDate time.Time `json:"purchase_date"`
}
