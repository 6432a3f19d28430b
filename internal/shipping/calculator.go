// Package shipping computes the shipping charge for an order from the
// administrator-configured rate parameters.
package shipping

import "github.com/shopspring/decimal"

// Rates holds the shipping parameters resolved from the config store.
// AdditionalRatio is a percentage applied per unit beyond the first.
type Rates struct {
	BaseCost        decimal.Decimal
	AdditionalRatio decimal.Decimal
}

// Cost returns the shipping charge for totalQuantity units.
//
// Zero units cost nothing, one unit costs the base rate, and each unit
// beyond the first compounds the running cost by AdditionalRatio percent of
// itself. The result is rounded half-up to two decimal places once at the
// end, not per iteration.
func Cost(totalQuantity int, rates Rates) decimal.Decimal {
	if totalQuantity <= 0 {
		return decimal.Zero
	}

	cost := rates.BaseCost
	if totalQuantity == 1 {
		return cost.Round(2)
	}

	factor := decimal.NewFromInt(1).Add(rates.AdditionalRatio.Div(decimal.NewFromInt(100)))
	for i := 2; i <= totalQuantity; i++ {
		cost = cost.Mul(factor)
	}

	return cost.Round(2)
}
