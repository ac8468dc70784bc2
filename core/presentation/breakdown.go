// Package presentation derives display values from a calculation result.
// Nothing here is stored; every value is recomputed from the result snapshot.
package presentation

import (
	"github.com/shopspring/decimal"

	"voice-cost/core/types"
	"voice-cost/internal/errors"
)

// Display precision
const (
	PerMinutePlaces int32 = 4
	TotalPlaces     int32 = 2
)

// Breakdown is the result block shown after a calculation
type Breakdown struct {
	// BaseCostPerMinute is TotalCost / TotalMinutes / (1 + Margin/100)
	BaseCostPerMinute decimal.Decimal `json:"base_cost_per_minute"`

	// MarginalCostPerMinute is TotalCost / TotalMinutes
	MarginalCostPerMinute decimal.Decimal `json:"marginal_cost_per_minute"`

	// TotalCost is the calculated total
	TotalCost decimal.Decimal `json:"total_cost"`

	// Currency of all amounts
	Currency types.Currency `json:"currency"`
}

// Derive builds the breakdown from a stored result. It uses the minutes and
// margin captured in the result, never live form values.
func Derive(r *types.Result) (*Breakdown, error) {
	if r == nil {
		return nil, errors.Input("no calculation result available")
	}
	if r.TotalMinutes.IsZero() {
		return nil, errors.Input("total minutes must not be zero").
			WithContext("total_minutes", r.TotalMinutes.String())
	}

	multiplier := types.MarginMultiplier(r.Margin)
	if multiplier.IsZero() {
		return nil, errors.Input("margin of -100% leaves no base cost").
			WithContext("margin", r.Margin.String())
	}

	marginal := r.TotalCost.Div(r.TotalMinutes)

	return &Breakdown{
		BaseCostPerMinute:     marginal.Div(multiplier),
		MarginalCostPerMinute: marginal,
		TotalCost:             r.TotalCost,
		Currency:              r.Currency,
	}, nil
}

// Formatted is a breakdown rendered to fixed decimal places
type Formatted struct {
	BaseCostPerMinute     string `json:"base_cost_per_minute"`
	MarginalCostPerMinute string `json:"marginal_cost_per_minute"`
	TotalCost             string `json:"total_cost"`
}

// Format renders per-minute values to 4 places and the total to 2 places
func (b *Breakdown) Format() Formatted {
	return Formatted{
		BaseCostPerMinute:     b.BaseCostPerMinute.StringFixed(PerMinutePlaces),
		MarginalCostPerMinute: b.MarginalCostPerMinute.StringFixed(PerMinutePlaces),
		TotalCost:             b.TotalCost.StringFixed(TotalPlaces),
	}
}

// Money renders an amount with the currency symbol and fixed places
func Money(c types.Currency, amount decimal.Decimal, places int32) string {
	if amount.IsNegative() {
		return "-" + c.Symbol() + amount.Neg().StringFixed(places)
	}
	return c.Symbol() + amount.StringFixed(places)
}
