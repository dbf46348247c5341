package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriceItemDefaultMarkup(t *testing.T) {
	q := PriceItem(10, DefaultMarkup)

	assert.Equal(t, 25.0, q.SuggestedPrice)
	assert.Equal(t, 60.0, q.ProfitMargin)
	assert.Equal(t, 150.0, q.MarkupPercentage)
}

func TestPriceItemZeroCost(t *testing.T) {
	q := PriceItem(0, DefaultMarkup)

	assert.Equal(t, 0.0, q.SuggestedPrice)
	assert.Equal(t, 0.0, q.ProfitMargin)
	assert.Equal(t, 0.0, q.MarkupPercentage)
}

func TestRepriceReportsAppliedMarkup(t *testing.T) {
	q := Reprice(10, 2)

	assert.Equal(t, 20.0, q.SuggestedPrice)
	assert.Equal(t, 50.0, q.ProfitMargin)
	assert.Equal(t, 100.0, q.MarkupPercentage)
}

func TestRepriceZeroCost(t *testing.T) {
	q := Reprice(0, 2)

	assert.Equal(t, 0.0, q.SuggestedPrice)
	assert.Equal(t, 0.0, q.ProfitMargin)
	// The applied multiplier is reported even when the price collapses.
	assert.Equal(t, 100.0, q.MarkupPercentage)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 10.55, Round2(10.554))
	assert.Equal(t, 10.56, Round2(10.556))
	// Exact halves round away from zero in both directions.
	assert.Equal(t, 10.13, Round2(10.125))
	assert.Equal(t, -10.13, Round2(-10.125))
	assert.Equal(t, 0.0, Round2(0))
}

func TestMarginForPrice(t *testing.T) {
	assert.Equal(t, 60.0, MarginForPrice(10, 25))
	assert.Equal(t, 0.0, MarginForPrice(10, 0))
	assert.Equal(t, 0.0, MarginForPrice(10, -5))
	// Selling below cost yields a negative margin.
	assert.Equal(t, -100.0, MarginForPrice(10, 5))
}

func TestMarkupForProfitTarget(t *testing.T) {
	markup, err := MarkupForProfitTarget(25)
	assert.NoError(t, err)
	assert.InDelta(t, 1.3333, markup, 0.0001)

	markup, err = MarkupForProfitTarget(50)
	assert.NoError(t, err)
	assert.Equal(t, 2.0, markup)
}

func TestMarkupForProfitTargetRoundTrip(t *testing.T) {
	markup, err := MarkupForProfitTarget(25)
	assert.NoError(t, err)

	q := Reprice(20, markup)
	assert.InDelta(t, 26.67, q.SuggestedPrice, 0.01)
	assert.InDelta(t, 25, q.ProfitMargin, 0.1)
}

func TestMarkupForProfitTargetRejectsBounds(t *testing.T) {
	for _, target := range []float64{0, -10, 100, 150} {
		_, err := MarkupForProfitTarget(target)
		assert.ErrorIs(t, err, ErrInvalidProfitTarget)
	}
}
