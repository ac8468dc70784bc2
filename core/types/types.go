// Package types defines core domain types shared across all layers.
// This package contains NO business logic - only type definitions
// and the small helpers needed to copy them safely.
package types

import "github.com/shopspring/decimal"

// Hundred is the percent divisor used by every margin computation
var Hundred = decimal.NewFromInt(100)

// MarginMultiplier returns 1 + margin/100
func MarginMultiplier(margin decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(1).Add(margin.Div(Hundred))
}
