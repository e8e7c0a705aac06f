// Package pricing computes checkout totals. All arithmetic runs on
// decimal values so cents stay exact; floats only appear at the API edge.
package pricing

import (
	"github.com/shopspring/decimal"
)

type Config struct {
	FreeShippingThreshold decimal.Decimal
	ShippingFee           decimal.Decimal
	TaxRate               decimal.Decimal
}

func NewConfig(freeShippingThreshold, shippingFee, taxRate float64) Config {
	return Config{
		FreeShippingThreshold: decimal.NewFromFloat(freeShippingThreshold),
		ShippingFee:           decimal.NewFromFloat(shippingFee),
		TaxRate:               decimal.NewFromFloat(taxRate),
	}
}

type LineItem struct {
	Price    float64
	Quantity int
}

type Totals struct {
	Subtotal float64
	Shipping float64
	Tax      float64
	Total    float64
}

// Compute derives totals from the given line items. Subtotal, shipping and
// tax are each rounded to cents (half away from zero); the total is the sum
// of the rounded components, so it always matches what the line components
// display. An empty item list yields all zeroes.
func Compute(cfg Config, items []LineItem) Totals {

	subtotal := decimal.Zero

	for _, item := range items {
		lineTotal := decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(item.Quantity)))
		subtotal = subtotal.Add(lineTotal)
	}

	shipping := cfg.ShippingFee
	if subtotal.GreaterThanOrEqual(cfg.FreeShippingThreshold) || subtotal.IsZero() {
		shipping = decimal.Zero
	}

	tax := subtotal.Mul(cfg.TaxRate)

	subtotal = subtotal.Round(2)
	shipping = shipping.Round(2)
	tax = tax.Round(2)
	total := subtotal.Add(shipping).Add(tax)

	return Totals{
		Subtotal: subtotal.InexactFloat64(),
		Shipping: shipping.InexactFloat64(),
		Tax:      tax.InexactFloat64(),
		Total:    total.InexactFloat64(),
	}
}
