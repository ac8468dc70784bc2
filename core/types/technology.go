// Package types - Technology types
package types

import "github.com/shopspring/decimal"

// TechnologyID is the short unique key of a technology
type TechnologyID string

// String returns the string representation
func (id TechnologyID) String() string {
	return string(id)
}

// Technology is a third-party service contributing a fixed per-minute cost
type Technology struct {
	// ID uniquely identifies the technology within the catalog
	ID TechnologyID `json:"id"`

	// Name is the display label
	Name string `json:"name"`

	// Selected is toggled by the user
	Selected bool `json:"selected"`

	// CostPerMinute is fixed at catalog definition time
	CostPerMinute decimal.Decimal `json:"cost_per_minute"`
}

// CloneTechnologies returns a copy of the slice. Technology holds only
// values, so a shallow copy is a full copy.
func CloneTechnologies(in []Technology) []Technology {
	if in == nil {
		return nil
	}
	out := make([]Technology, len(in))
	copy(out, in)
	return out
}
