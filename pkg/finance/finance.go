package finance

import "math"

// Breakdown holds the monetary fields derived from a prescription's entered
// amounts. These values are always recomputed from subtotal, discount percent
// and amount paid; they are never stored on their own.
type Breakdown struct {
	DiscountAmount float64 `json:"discount_amount"`
	NetTotal       float64 `json:"net_total"`
	BalanceDue     float64 `json:"balance_due"`
}

// Compute derives discount amount, net total and balance due. Chained values
// stay unrounded inside the computation; each output is rounded to 2 decimal
// places for display. Non-finite inputs are treated as 0.
func Compute(subtotal, discountPercent, amountPaid float64) Breakdown {
	subtotal = sanitize(subtotal)
	discountPercent = sanitize(discountPercent)
	amountPaid = sanitize(amountPaid)

	discount := subtotal * discountPercent / 100
	net := subtotal - discount

	return Breakdown{
		DiscountAmount: Round2(discount),
		NetTotal:       Round2(net),
		BalanceDue:     Round2(net - amountPaid),
	}
}

// Round2 rounds a monetary value to 2 decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
