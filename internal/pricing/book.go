// internal/pricing/book.go
package pricing

import (
	"errors"
	"sync"

	"github.com/cozinhapro/backoffice/internal/domain"
)

// ErrItemNotFound is returned for price operations on unknown item ids.
var ErrItemNotFound = errors.New("pricing: item not found")

// Book holds the in-memory pricing state for one restaurant. Loading a
// fresh inventory snapshot rebuilds it from scratch, which discards any
// manual price overrides: overrides are previews, never persisted.
//
// Loads carry a generation number so a slow fetch that completes after a
// newer one cannot clobber the newer state.
type Book struct {
	mu         sync.RWMutex
	generation uint64
	items      []domain.ItemPricing
	index      map[int64]int
}

func NewBook() *Book {
	return &Book{index: make(map[int64]int)}
}

// Load replaces the book's contents with pricing derived from the given
// inventory snapshot at the default markup. A load with a generation at or
// below the current one is ignored and Load returns false.
func (b *Book) Load(items []domain.InventoryItem, generation uint64) bool {
	priced := make([]domain.ItemPricing, 0, len(items))
	index := make(map[int64]int, len(items))
	for _, item := range items {
		cost := item.UnitCost()
		quote := PriceItem(cost, DefaultMarkup)
		index[item.ID] = len(priced)
		priced = append(priced, domain.ItemPricing{
			ItemID:           item.ID,
			ItemName:         item.Name,
			CurrentCost:      cost,
			SuggestedPrice:   quote.SuggestedPrice,
			ProfitMargin:     quote.ProfitMargin,
			MarkupPercentage: quote.MarkupPercentage,
			Category:         item.CategoryLabel(),
			Supplier:         item.SupplierLabel(),
			LastUpdated:      item.UpdatedAt,
		})
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if generation <= b.generation && b.generation != 0 {
		return false
	}
	b.generation = generation
	b.items = priced
	b.index = index
	return true
}

// Items returns a copy of the current pricing rows.
func (b *Book) Items() []domain.ItemPricing {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]domain.ItemPricing, len(b.items))
	copy(out, b.items)
	return out
}

// Len reports the number of priced items.
func (b *Book) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.items)
}

// UpdatePrice records a manual sale-price override and recomputes the
// margin against it. The suggested price is left as is.
func (b *Book) UpdatePrice(itemID int64, price float64) (domain.ItemPricing, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	idx, ok := b.index[itemID]
	if !ok {
		return domain.ItemPricing{}, ErrItemNotFound
	}

	item := &b.items[idx]
	override := price
	item.CurrentPrice = &override
	item.ProfitMargin = MarginForPrice(item.CurrentCost, price)
	return *item, nil
}

// RecalculateAll reapplies the pricing formula to every item with the
// given markup. Applying the same markup twice is a no-op the second time.
func (b *Book) RecalculateAll(markup float64) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.items {
		b.reprice(&b.items[i], markup)
	}
	return len(b.items)
}

// ApplyToCategory reapplies the formula only to items whose category
// matches exactly, and reports how many were touched.
func (b *Book) ApplyToCategory(category string, markup float64) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	touched := 0
	for i := range b.items {
		if b.items[i].Category != category {
			continue
		}
		b.reprice(&b.items[i], markup)
		touched++
	}
	return touched
}

// reprice must be called with b.mu held.
func (b *Book) reprice(item *domain.ItemPricing, markup float64) {
	quote := Reprice(item.CurrentCost, markup)
	item.SuggestedPrice = quote.SuggestedPrice
	item.ProfitMargin = quote.ProfitMargin
	item.MarkupPercentage = quote.MarkupPercentage
}

// Summary aggregates the book for the pricing dashboard header. The cost
// inflation trend is a fixed placeholder until purchase cost history is
// tracked.
func (b *Book) Summary() domain.PricingSummary {
	b.mu.RLock()
	defer b.mu.RUnlock()

	summary := domain.PricingSummary{
		TotalItems:         len(b.items),
		CostInflationTrend: 2.5,
	}

	marginSum := 0.0
	revenue := 0.0
	for _, item := range b.items {
		if item.ProfitMargin < 20 || item.MarkupPercentage < 50 {
			summary.ItemsNeedingUpdate++
		}
		marginSum += item.ProfitMargin
		revenue += item.SuggestedPrice
	}

	if len(b.items) > 0 {
		summary.AverageMargin = Round2(marginSum / float64(len(b.items)))
	}
	summary.TotalPotentialRevenue = Round2(revenue)
	return summary
}
