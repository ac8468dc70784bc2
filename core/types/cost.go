// Package types - Cost result types
package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// Currency represents a currency code
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
)

// String returns the string representation
func (c Currency) String() string {
	return string(c)
}

// Symbol returns the display prefix for amounts
func (c Currency) Symbol() string {
	switch c {
	case CurrencyEUR:
		return "€"
	case CurrencyGBP:
		return "£"
	default:
		return "$"
	}
}

// Result is the snapshot taken by a successful calculation.
// It carries the parameters it was computed from so that the
// presented breakdown never mixes in later edits.
type Result struct {
	// QuoteID identifies this calculation in exported documents
	QuoteID string `json:"quote_id,omitempty"`

	// CalculatedAt is when the calculation ran
	CalculatedAt time.Time `json:"calculated_at"`

	// Technologies are the selected technologies at calculation time
	Technologies []Technology `json:"technologies"`

	// CallDuration is informational only
	CallDuration decimal.Decimal `json:"call_duration"`

	// TotalMinutes is the volume that was priced
	TotalMinutes decimal.Decimal `json:"total_minutes"`

	// Margin is the markup percentage that was applied
	Margin decimal.Decimal `json:"margin"`

	// BaseCostPerMinute is the sum of selected per-minute costs
	BaseCostPerMinute decimal.Decimal `json:"base_cost_per_minute"`

	// TotalBaseCost is BaseCostPerMinute * TotalMinutes
	TotalBaseCost decimal.Decimal `json:"total_base_cost"`

	// TotalCost is TotalBaseCost * (1 + Margin/100)
	TotalCost decimal.Decimal `json:"total_cost"`

	// Currency is the cost currency
	Currency Currency `json:"currency"`
}

// Params returns the parameters the result was computed from
func (r *Result) Params() Params {
	return Params{
		CallDuration: r.CallDuration,
		TotalMinutes: r.TotalMinutes,
		Margin:       r.Margin,
	}
}

// Clone returns a deep copy
func (r *Result) Clone() *Result {
	if r == nil {
		return nil
	}
	c := *r
	c.Technologies = CloneTechnologies(r.Technologies)
	return &c
}
