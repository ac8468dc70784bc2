// Package cost turns a technology selection, a volume and a margin
// into a priced result.
package cost

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"voice-cost/core/types"
	"voice-cost/internal/errors"
	"voice-cost/internal/logging"
)

// Calculate prices totalMinutes of usage over the selected technologies
// and applies margin percent on top.
//
// It fails only when nothing is selected. Out-of-range minutes or margin
// are not rejected here; they produce zero or negative totals.
func Calculate(technologies []types.Technology, totalMinutes, margin decimal.Decimal) (*types.Result, error) {
	var selected []types.Technology
	for _, t := range technologies {
		if t.Selected {
			selected = append(selected, t)
		}
	}

	if len(selected) == 0 {
		return nil, errors.NoSelection()
	}

	base := decimal.Zero
	for _, t := range selected {
		base = base.Add(t.CostPerMinute)
	}

	totalBase := base.Mul(totalMinutes)
	final := totalBase.Mul(types.MarginMultiplier(margin))

	logging.Debug("cost calculated",
		zap.Int("technologies", len(selected)),
		zap.Stringer("base_cost_per_minute", base),
		zap.Stringer("total_minutes", totalMinutes),
		zap.Stringer("margin", margin),
		zap.Stringer("total_cost", final),
	)

	return &types.Result{
		Technologies:      selected,
		TotalMinutes:      totalMinutes,
		Margin:            margin,
		BaseCostPerMinute: base,
		TotalBaseCost:     totalBase,
		TotalCost:         final,
		Currency:          types.CurrencyUSD,
	}, nil
}
