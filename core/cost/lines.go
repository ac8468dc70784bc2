package cost

import (
	"fmt"

	"github.com/shopspring/decimal"

	"voice-cost/core/types"
)

// Line is the share of a result attributable to one technology
type Line struct {
	Technology types.Technology `json:"technology"`

	// Quantity is the number of minutes priced
	Quantity decimal.Decimal `json:"quantity"`

	// BaseAmount is CostPerMinute * Quantity
	BaseAmount decimal.Decimal `json:"base_amount"`

	// Amount is BaseAmount with margin applied
	Amount decimal.Decimal `json:"amount"`

	// Formula describes how Amount was derived
	Formula string `json:"formula"`
}

// Lines splits a result into one line per selected technology.
// The amounts sum exactly to r.TotalCost.
func Lines(r *types.Result) []Line {
	if r == nil {
		return nil
	}

	multiplier := types.MarginMultiplier(r.Margin)
	lines := make([]Line, 0, len(r.Technologies))
	for _, t := range r.Technologies {
		baseAmount := t.CostPerMinute.Mul(r.TotalMinutes)
		lines = append(lines, Line{
			Technology: t,
			Quantity:   r.TotalMinutes,
			BaseAmount: baseAmount,
			Amount:     baseAmount.Mul(multiplier),
			Formula: fmt.Sprintf("%s/min * %s min * (1 + %s%%)",
				t.CostPerMinute, r.TotalMinutes, r.Margin),
		})
	}
	return lines
}
