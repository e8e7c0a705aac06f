package pricing_test

import (
	"testing"

	"github.com/shophub/storefront/internal/pricing"
	"github.com/stretchr/testify/assert"
)

func defaultConfig() pricing.Config {
	return pricing.NewConfig(100, 10, 0.08)
}

func TestCompute_FreeShippingThreshold(t *testing.T) {
	tests := []struct {
		name         string
		items        []pricing.LineItem
		wantSubtotal float64
		wantShipping float64
	}{
		{
			name:         "exactly at threshold ships free",
			items:        []pricing.LineItem{{Price: 100.00, Quantity: 1}},
			wantSubtotal: 100.00,
			wantShipping: 0.00,
		},
		{
			name:         "one cent below threshold pays flat fee",
			items:        []pricing.LineItem{{Price: 99.99, Quantity: 1}},
			wantSubtotal: 99.99,
			wantShipping: 10.00,
		},
		{
			name:         "above threshold ships free",
			items:        []pricing.LineItem{{Price: 59.99, Quantity: 2}},
			wantSubtotal: 119.98,
			wantShipping: 0.00,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			totals := pricing.Compute(defaultConfig(), tt.items)

			assert.Equal(t, tt.wantSubtotal, totals.Subtotal)
			assert.Equal(t, tt.wantShipping, totals.Shipping)
		})
	}
}

func TestCompute_EndToEndScenario(t *testing.T) {
	// two pairs of running shoes: free shipping, 8% tax on 239.98
	totals := pricing.Compute(defaultConfig(), []pricing.LineItem{{Price: 119.99, Quantity: 2}})

	assert.Equal(t, 239.98, totals.Subtotal)
	assert.Equal(t, 0.00, totals.Shipping)
	assert.Equal(t, 19.20, totals.Tax)
	assert.Equal(t, 259.18, totals.Total)
}

func TestCompute_TotalIsSumOfRoundedComponents(t *testing.T) {
	totals := pricing.Compute(defaultConfig(), []pricing.LineItem{{Price: 34.99, Quantity: 1}})

	// tax 2.7992 rounds to 2.80; total must equal the displayed components
	assert.Equal(t, 34.99, totals.Subtotal)
	assert.Equal(t, 10.00, totals.Shipping)
	assert.Equal(t, 2.80, totals.Tax)
	assert.Equal(t, 47.79, totals.Total)
}

func TestCompute_RoundsHalfAwayFromZero(t *testing.T) {
	// 10% of 0.25 is an exact half cent and must round up, not to even
	cfg := pricing.NewConfig(100, 10, 0.10)

	totals := pricing.Compute(cfg, []pricing.LineItem{{Price: 0.25, Quantity: 1}})

	assert.Equal(t, 0.03, totals.Tax)
}

func TestCompute_EmptyItemsYieldZeroes(t *testing.T) {
	totals := pricing.Compute(defaultConfig(), nil)

	assert.Equal(t, pricing.Totals{}, totals)
}

func TestCompute_Idempotent(t *testing.T) {
	items := []pricing.LineItem{
		{Price: 129.99, Quantity: 1},
		{Price: 24.99, Quantity: 3},
	}

	first := pricing.Compute(defaultConfig(), items)
	second := pricing.Compute(defaultConfig(), items)

	assert.Equal(t, first, second)
}

func TestCompute_SubtotalMatchesLineItems(t *testing.T) {
	items := []pricing.LineItem{
		{Price: 19.99, Quantity: 2},
		{Price: 45.99, Quantity: 1},
		{Price: 29.99, Quantity: 4},
	}

	totals := pricing.Compute(defaultConfig(), items)

	assert.Equal(t, 205.93, totals.Subtotal)
	assert.Equal(t, 0.00, totals.Shipping)
	assert.Equal(t, 16.47, totals.Tax) // 205.93 * 0.08 = 16.4744
	assert.Equal(t, 222.40, totals.Total)
}
