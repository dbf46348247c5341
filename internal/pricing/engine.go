// internal/pricing/engine.go
package pricing

import (
	"errors"
	"math"
)

// DefaultMarkup is the 150% baseline applied when pricing is first
// computed from inventory costs.
const DefaultMarkup = 2.5

// ErrInvalidProfitTarget is returned for profit targets outside (0, 100).
// At 100% the implied markup divides by zero; the engine rejects instead
// of clamping.
var ErrInvalidProfitTarget = errors.New("pricing: profit target must be above 0 and below 100 percent")

// Round2 rounds to cents, half away from zero. Every money figure the
// engine produces goes through it so the rounding mode stays uniform.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// Quote is the output of pricing a single item.
type Quote struct {
	SuggestedPrice   float64
	ProfitMargin     float64
	MarkupPercentage float64
}

// PriceItem prices an item at cost x markup. The margin is profit as a
// share of the sale price, not of cost. The markup percentage is derived
// from the resulting price, the form used when pricing is first computed.
func PriceItem(cost, markup float64) Quote {
	price := Round2(cost * markup)
	q := Quote{SuggestedPrice: price}
	if price > 0 {
		q.ProfitMargin = Round2((price - cost) / price * 100)
	}
	if cost > 0 {
		q.MarkupPercentage = (price/cost - 1) * 100
	}
	return q
}

// Reprice prices an item with an explicitly applied markup and reports
// that markup directly as the percentage. Used by the bulk recalculation
// paths, where the applied multiplier is the source of truth rather than
// the price/cost ratio.
func Reprice(cost, markup float64) Quote {
	price := Round2(cost * markup)
	q := Quote{
		SuggestedPrice:   price,
		MarkupPercentage: (markup - 1) * 100,
	}
	if price > 0 {
		q.ProfitMargin = Round2((price - cost) / price * 100)
	}
	return q
}

// MarginForPrice recomputes the profit margin for an arbitrary sale price,
// e.g. a manual override. 0 when the price is not positive.
func MarginForPrice(cost, price float64) float64 {
	if price <= 0 {
		return 0
	}
	return Round2((price - cost) / price * 100)
}

// MarkupForProfitTarget inverts a desired profit margin P into the markup
// multiplier 1/(1-P/100). P=25 gives 1.3333..., P=50 gives 2.0.
func MarkupForProfitTarget(profitPercent float64) (float64, error) {
	if profitPercent <= 0 || profitPercent >= 100 {
		return 0, ErrInvalidProfitTarget
	}
	return 1 / (1 - profitPercent/100), nil
}
