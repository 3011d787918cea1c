package models

import "github.com/shopspring/decimal"

func init() {
	// Money fields are rendered as JSON numbers, which is what the charts
	// and tables of the dashboard expect.
	decimal.MarshalJSONWithoutQuotes = true
}

// nonNegative clamps money and counts that must never go below zero.
func nonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
