// Package scenario loads quote scenarios from HCL files:
//
//	call_duration = 5
//	total_minutes = 1000
//	margin        = 20
//	technologies  = ["vapi", "twilio"]
//
// Every attribute is optional.
package scenario

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/shopspring/decimal"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"voice-cost/core/catalog"
	"voice-cost/core/types"
	"voice-cost/internal/errors"
)

// Scenario is a decoded scenario file. Nil parameters were not set.
type Scenario struct {
	CallDuration *decimal.Decimal
	TotalMinutes *decimal.Decimal
	Margin       *decimal.Decimal
	Technologies []string
}

// file is the HCL shape of a scenario. Numbers stay cty values so they
// reach decimal without a float64 round trip.
type file struct {
	CallDuration cty.Value `hcl:"call_duration,optional"`
	TotalMinutes cty.Value `hcl:"total_minutes,optional"`
	Margin       cty.Value `hcl:"margin,optional"`
	Technologies []string  `hcl:"technologies,optional"`
}

// LoadFile reads and decodes a scenario file
func LoadFile(path string) (*Scenario, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(errors.TypeInput, err, "read scenario %s", path)
	}
	return Parse(src, path)
}

// Parse decodes scenario source. filename is used in diagnostics only.
func Parse(src []byte, filename string) (*Scenario, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.Parsing("parse scenario", diagError(diags))
	}

	var raw file
	if diags := gohcl.DecodeBody(f.Body, nil, &raw); diags.HasErrors() {
		return nil, errors.Parsing("decode scenario", diagError(diags))
	}

	s := &Scenario{Technologies: raw.Technologies}
	for _, attr := range []struct {
		name string
		val  cty.Value
		dst  **decimal.Decimal
	}{
		{"call_duration", raw.CallDuration, &s.CallDuration},
		{"total_minutes", raw.TotalMinutes, &s.TotalMinutes},
		{"margin", raw.Margin, &s.Margin},
	} {
		d, err := toDecimal(attr.val)
		if err != nil {
			return nil, errors.Parsing("decode scenario", err).WithContext("attribute", attr.name)
		}
		*attr.dst = d
	}
	return s, nil
}

// toDecimal converts an HCL number exactly. A null value yields nil.
func toDecimal(v cty.Value) (*decimal.Decimal, error) {
	if v.IsNull() {
		return nil, nil
	}
	n, err := convert.Convert(v, cty.Number)
	if err != nil {
		return nil, err
	}
	if n.IsNull() || !n.IsKnown() {
		return nil, fmt.Errorf("a number is required")
	}
	d, err := decimal.NewFromString(n.AsBigFloat().Text('f', -1))
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Params overlays the scenario onto base
func (s *Scenario) Params(base types.Params) types.Params {
	p := base
	if s.CallDuration != nil {
		p.CallDuration = *s.CallDuration
	}
	if s.TotalMinutes != nil {
		p.TotalMinutes = *s.TotalMinutes
	}
	if s.Margin != nil {
		p.Margin = *s.Margin
	}
	return p
}

// TechnologyIDs resolves the technologies list against c
func (s *Scenario) TechnologyIDs(c *catalog.Catalog) ([]types.TechnologyID, error) {
	ids := make([]types.TechnologyID, 0, len(s.Technologies))
	for _, raw := range s.Technologies {
		id := types.TechnologyID(raw)
		if !c.Has(id) {
			return nil, errors.NotFound("technology", raw).WithContext("field", "technologies")
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func diagError(diags hcl.Diagnostics) error {
	if len(diags) == 1 {
		return diags[0]
	}
	return fmt.Errorf("%s (and %d more)", diags[0].Error(), len(diags)-1)
}
