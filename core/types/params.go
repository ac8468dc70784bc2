// Package types - Calculation parameters
package types

import "github.com/shopspring/decimal"

// Params are the numeric inputs of the form
type Params struct {
	// CallDuration is the average call duration in minutes.
	// It is collected and reported but does not enter the cost formula.
	CallDuration decimal.Decimal `json:"call_duration"`

	// TotalMinutes is the usage volume to price
	TotalMinutes decimal.Decimal `json:"total_minutes"`

	// Margin is the percentage markup in [0, 100]
	Margin decimal.Decimal `json:"margin"`
}

// DefaultParams returns the values the form starts with
func DefaultParams() Params {
	return Params{
		CallDuration: decimal.NewFromInt(5),
		TotalMinutes: decimal.NewFromInt(1000),
		Margin:       decimal.NewFromInt(20),
	}
}

// Equal reports whether both parameter sets hold the same values
func (p Params) Equal(other Params) bool {
	return p.CallDuration.Equal(other.CallDuration) &&
		p.TotalMinutes.Equal(other.TotalMinutes) &&
		p.Margin.Equal(other.Margin)
}
