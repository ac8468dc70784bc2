// Package catalog - Technology catalog
// Defines the fixed, ordered list of technologies a quote can be built from.
package catalog

import (
	"github.com/shopspring/decimal"

	"voice-cost/core/types"
)

// Well-known technology IDs
const (
	Vapi      types.TechnologyID = "vapi"
	Synthflow types.TechnologyID = "synthflow"
	Twilio    types.TechnologyID = "twilio"
	CalCom    types.TechnologyID = "calcom"
	MakeCom   types.TechnologyID = "makecom"
)

// Catalog is an ordered, read-only list of technologies
type Catalog struct {
	entries []types.Technology
	index   map[types.TechnologyID]int
}

// New creates a catalog from entries, in the given order.
// Entries are copied; later changes to the argument have no effect.
func New(entries []types.Technology) *Catalog {
	c := &Catalog{
		entries: types.CloneTechnologies(entries),
		index:   make(map[types.TechnologyID]int, len(entries)),
	}
	for i, e := range c.entries {
		if _, seen := c.index[e.ID]; !seen {
			c.index[e.ID] = i
		}
	}
	return c
}

// Default returns the built-in catalog with nothing selected
func Default() *Catalog {
	c := New([]types.Technology{
		{ID: Vapi, Name: "Vapi", CostPerMinute: decimal.RequireFromString("0.05")},
		{ID: Synthflow, Name: "Synthflow", CostPerMinute: decimal.RequireFromString("0.03")},
		{ID: Twilio, Name: "Twilio", CostPerMinute: decimal.RequireFromString("0.02")},
		{ID: CalCom, Name: "Cal.com", CostPerMinute: decimal.RequireFromString("0.01")},
		{ID: MakeCom, Name: "Make.com", CostPerMinute: decimal.RequireFromString("0.02")},
	})
	c.MustValidate()
	return c
}

// Technologies returns a copy of all entries in catalog order
func (c *Catalog) Technologies() []types.Technology {
	return types.CloneTechnologies(c.entries)
}

// Get returns the entry for id
func (c *Catalog) Get(id types.TechnologyID) (types.Technology, bool) {
	i, ok := c.index[id]
	if !ok {
		return types.Technology{}, false
	}
	return c.entries[i], true
}

// Has reports whether id is in the catalog
func (c *Catalog) Has(id types.TechnologyID) bool {
	_, ok := c.index[id]
	return ok
}

// IDs returns the technology IDs in catalog order
func (c *Catalog) IDs() []types.TechnologyID {
	ids := make([]types.TechnologyID, len(c.entries))
	for i, e := range c.entries {
		ids[i] = e.ID
	}
	return ids
}

// Len returns the number of entries
func (c *Catalog) Len() int {
	return len(c.entries)
}
